package fetcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/datallboy/mvnsync/internal/infra/config"
)

// ErrFetchFailed wraps every failed transfer so callers can tell it apart from setup errors.
var ErrFetchFailed = errors.New("fetch failed")

// Fetcher copies a remote URL to a local path. The parent directory of dest
// already exists when Fetch is called.
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}

// New builds the fetcher selected by download.tool.
func New(cfg config.DownloadConfig, userAgent string) (Fetcher, error) {
	switch cfg.Tool {
	case config.ToolBuiltin:
		return NewHTTP(userAgent), nil
	case config.ToolWget, "":
		return NewCLIWget(cfg.WgetPath)
	default:
		return nil, fmt.Errorf("unknown download tool %q", cfg.Tool)
	}
}
