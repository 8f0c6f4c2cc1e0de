package api

import (
	"github.com/datallboy/mvnsync/internal/api/controllers"
	"github.com/datallboy/mvnsync/internal/app"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
)

func RegisterRoutes(e *echo.Echo, app *app.Context) {

	// Middleware: Request Logger
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c *echo.Context, v middleware.RequestLoggerValues) error {
			app.Logger.Info("%s %s | %d | %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))

	runsCtrl := &controllers.RunsController{App: app}

	e.GET("/health", runsCtrl.Health)

	g := e.Group("/api")
	g.GET("/runs", runsCtrl.List)
	g.GET("/runs/:id", runsCtrl.Get)
	g.GET("/instruments/:instrument/dirs", runsCtrl.Dirs)
}

// NewServer builds the echo instance serving run history.
func NewServer(app *app.Context) *echo.Echo {
	e := echo.New()
	RegisterRoutes(e, app)
	return e
}
