package app

import (
	"context"

	"github.com/datallboy/mvnsync/internal/domain"
	"github.com/datallboy/mvnsync/internal/infra/config"
	"github.com/datallboy/mvnsync/internal/infra/logger"
)

// Lister reads one remote directory. Implemented by listing.Client.
type Lister interface {
	List(ctx context.Context, dirURL string) domain.Listing
}

// Downloader brings one file to a local path. Implemented by downloader.Service.
type Downloader interface {
	Download(ctx context.Context, url, dest string, dryRun bool) domain.Outcome
}

type Resolver interface {
	TargetDirs(instrument string) []string
	Targets(instrument string, months []domain.Month) []domain.Target
}

// Store keeps the run history. It is never read to decide what to download.
type Store interface {
	CreateRun(ctx context.Context, run *domain.Run) error
	AppendEvent(ctx context.Context, event *domain.Event) error
	FinishRun(ctx context.Context, run *domain.Run) error
	ListRuns(ctx context.Context, limit int) ([]*domain.Run, error)
	GetRun(ctx context.Context, id string) (*domain.Run, error)
	GetEvents(ctx context.Context, runID string) ([]*domain.Event, error)
	Close() error
}

// Context holds the configuration and the shared components of mvnsync.
// Store is nil when history is disabled.
type Context struct {
	Config *config.Config
	Logger *logger.Logger

	Resolver   Resolver
	Lister     Lister
	Downloader Downloader
	Store      Store
}

// NewContext initializes the base environment.
func NewContext(cfg *config.Config, log *logger.Logger) *Context {
	return &Context{
		Config: cfg,
		Logger: log,
	}
}
