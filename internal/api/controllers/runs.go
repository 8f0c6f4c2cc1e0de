package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/datallboy/mvnsync/internal/app"
	"github.com/datallboy/mvnsync/internal/domain"
	"github.com/labstack/echo/v5"
)

const maxRunsLimit = 200

type RunsController struct {
	App *app.Context
}

// Health reports liveness and whether run history is available
func (ctrl *RunsController) Health(c *echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		History: ctrl.App.Store != nil,
	})
}

// List returns the most recent runs, newest first
func (ctrl *RunsController) List(c *echo.Context) error {
	if ctrl.App.Store == nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "run history is disabled"})
	}

	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
		}
		limit = min(n, maxRunsLimit)
	}

	runs, err := ctrl.App.Store.ListRuns(c.Request().Context(), limit)
	if err != nil {
		ctrl.App.Logger.Error("Failed to list runs: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list runs"})
	}

	return c.JSON(http.StatusOK, RunListResponse{Runs: runs})
}

// Get returns one run with all of its events
func (ctrl *RunsController) Get(c *echo.Context) error {
	if ctrl.App.Store == nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "run history is disabled"})
	}

	id := c.Param("id")
	ctx := c.Request().Context()

	run, err := ctrl.App.Store.GetRun(ctx, id)
	if errors.Is(err, domain.ErrRunNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "run not found"})
	}
	if err != nil {
		ctrl.App.Logger.Error("Failed to load run %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load run"})
	}

	events, err := ctrl.App.Store.GetEvents(ctx, id)
	if err != nil {
		ctrl.App.Logger.Error("Failed to load events for run %s: %v", id, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load events"})
	}

	return c.JSON(http.StatusOK, RunDetailResponse{Run: run, Events: events})
}

// Dirs shows which subdirectories a sync of the instrument would walk
func (ctrl *RunsController) Dirs(c *echo.Context) error {
	instrument := c.Param("instrument")

	return c.JSON(http.StatusOK, DirsResponse{
		Instrument: instrument,
		BaseURL:    ctrl.App.Config.Remote.ResolvedBaseURL(),
		Dirs:       ctrl.App.Resolver.TargetDirs(instrument),
	})
}
