package engine

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/datallboy/mvnsync/internal/app"
	"github.com/datallboy/mvnsync/internal/domain"
	"github.com/segmentio/ksuid"
)

// Request names what to mirror. Start and End are inclusive YYYY-MM months.
type Request struct {
	Instrument string
	Start      string
	End        string
	DryRun     bool
}

// Syncer walks every target of a request one at a time and downloads what is
// missing locally. Nothing runs in parallel and nothing is retried.
type Syncer struct {
	app *app.Context
}

func NewSyncer(app *app.Context) *Syncer {
	return &Syncer{app: app}
}

// Sync returns an error only for a malformed request or a cancelled context.
// Listing and download failures are logged and skipped.
func (s *Syncer) Sync(ctx context.Context, req Request) (*domain.Run, error) {
	months, err := domain.GenerateMonths(req.Start, req.End)
	if err != nil {
		return nil, fmt.Errorf("invalid date range: %w", err)
	}

	targets := s.app.Resolver.Targets(req.Instrument, months)
	baseURL := s.app.Config.Remote.ResolvedBaseURL()
	root := s.app.Config.Local.Root

	run := domain.NewRun(ksuid.New().String(), req.Instrument, req.Start, req.End, req.DryRun)
	if s.app.Store != nil {
		if err := s.app.Store.CreateRun(ctx, run); err != nil {
			s.app.Logger.Warn("Could not record run: %v", err)
		}
	}

	s.app.Logger.Info("Run %s: %s %s..%s, %d directories (dry run: %t)",
		run.ID, req.Instrument, req.Start, req.End, len(targets), req.DryRun)

	var runErr error
	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		s.syncTarget(ctx, run, t, baseURL, root, req.DryRun)
	}
	if runErr == nil {
		runErr = ctx.Err()
	}

	run.Finish(runErr)
	if s.app.Store != nil {
		// The run context may already be cancelled; the final row still needs writing
		if err := s.app.Store.FinishRun(context.WithoutCancel(ctx), run); err != nil {
			s.app.Logger.Warn("Could not record run result: %v", err)
		}
	}

	s.app.Logger.Info("Run %s %s: %d checked, %d login required, %d errors, %d downloaded, %d skipped, %d dry-run, %d failed",
		run.ID, run.Status, run.Checked, run.AuthRequired, run.ListErrors,
		run.Downloaded, run.Skipped, run.Simulated, run.Failed)

	return run, runErr
}

func (s *Syncer) syncTarget(ctx context.Context, run *domain.Run, t domain.Target, baseURL, root string, dryRun bool) {
	remoteURL := t.RemoteURL(baseURL)
	localDir := t.LocalDir(root)

	s.app.Logger.Info("[CHECK] %s", remoteURL)

	listing := s.app.Lister.List(ctx, remoteURL)
	s.record(ctx, run.ListingEvent(t, listing))

	switch listing.Status {
	case domain.ListingAuth:
		s.app.Logger.Info("  [SKIP] Login required.")
		return
	case domain.ListingError:
		s.app.Logger.Info("  [ERROR] %s", listing.Message)
		return
	}

	base, err := url.Parse(remoteURL)
	if err != nil {
		// RemoteURL is built from config; List would already have failed
		s.app.Logger.Error("  [ERROR] %v", err)
		return
	}

	for i, href := range listing.Files {
		if ctx.Err() != nil {
			return
		}

		fileURL, name, err := resolveFile(base, href)
		if err != nil {
			s.app.Logger.Warn("  Ignoring link %q: %v", href, err)
			continue
		}

		dest := filepath.Join(localDir, name)
		outcome := s.app.Downloader.Download(ctx, fileURL, dest, dryRun)
		s.record(ctx, run.DownloadEvent(t, outcome))

		s.app.Logger.Info(" %s (%d/%d)", outcome.Message(), i+1, len(listing.Files))
		if outcome.Err != nil {
			s.app.Logger.Debug("  %s: %v", fileURL, outcome.Err)
		}
	}
}

func (s *Syncer) record(ctx context.Context, e *domain.Event) {
	if s.app.Store == nil {
		return
	}
	if err := s.app.Store.AppendEvent(context.WithoutCancel(ctx), e); err != nil {
		s.app.Logger.Warn("Could not record event: %v", err)
	}
}

// resolveFile resolves href against the directory URL and returns the file
// URL with the name it gets locally. Only the last path segment is kept so a
// link can never point outside the local directory.
func resolveFile(dir *url.URL, href string) (string, string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", "", err
	}

	resolved := dir.ResolveReference(ref)
	name := path.Base(resolved.Path)
	if strings.HasSuffix(resolved.Path, "/") || name == "." || name == "/" {
		return "", "", fmt.Errorf("no file name in %s", resolved)
	}

	return resolved.String(), name, nil
}
