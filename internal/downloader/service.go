package downloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/datallboy/mvnsync/internal/domain"
	"github.com/datallboy/mvnsync/internal/fetcher"
	"github.com/datallboy/mvnsync/internal/infra/logger"
)

// Service brings one remote file to its local path.
type Service struct {
	fetcher fetcher.Fetcher
	logger  *logger.Logger
}

func NewService(f fetcher.Fetcher, l *logger.Logger) *Service {
	return &Service{fetcher: f, logger: l}
}

// Download never returns an error: every result, failures included, is an Outcome.
// An existing file at dest is always a skip, whatever dryRun says.
func (s *Service) Download(ctx context.Context, url, dest string, dryRun bool) domain.Outcome {
	out := domain.Outcome{URL: url, Path: dest}

	if Exists(dest) {
		out.Kind = domain.OutcomeSkipped
		return out
	}

	if dryRun {
		out.Kind = domain.OutcomeDryRun
		return out
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		out.Kind = domain.OutcomeFailed
		out.Err = fmt.Errorf("failed to create directory: %w", err)
		return out
	}

	s.logger.Debug("Fetching %s -> %s", url, dest)

	if err := s.fetcher.Fetch(ctx, url, dest); err != nil {
		// wget -O creates dest before the transfer starts; a leftover would be skipped next run
		if rmErr := os.Remove(dest); rmErr != nil && !os.IsNotExist(rmErr) {
			s.logger.Warn("Could not remove partial file %s: %v", dest, rmErr)
		}
		out.Kind = domain.OutcomeFailed
		out.Err = err
		return out
	}

	out.Kind = domain.OutcomeDownloaded
	return out
}

// Exists reports whether something is already present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
