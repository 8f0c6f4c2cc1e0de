package main

import (
	"fmt"

	"github.com/datallboy/mvnsync/internal/app"
	"github.com/datallboy/mvnsync/internal/catalog"
	"github.com/datallboy/mvnsync/internal/downloader"
	"github.com/datallboy/mvnsync/internal/fetcher"
	"github.com/datallboy/mvnsync/internal/infra/config"
	"github.com/datallboy/mvnsync/internal/infra/logger"
	"github.com/datallboy/mvnsync/internal/listing"
	"github.com/datallboy/mvnsync/internal/platform"
	"github.com/datallboy/mvnsync/internal/store"
)

type components struct {
	store   bool
	fetcher bool
}

// buildApp wires the application context. Components not asked for stay nil.
func buildApp(cfg *config.Config, want components) (*app.Context, error) {
	log, err := logger.New(cfg.Log.Path, logger.ParseLevel(cfg.Log.Level), cfg.Log.IncludeStdout)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", cfg.Log.Path, err)
	}

	a := app.NewContext(cfg, log)
	a.Resolver = catalog.NewResolver(cfg.Instruments)
	a.Lister = listing.NewClient(listing.OptionsFromConfig(cfg.Remote))

	var f fetcher.Fetcher
	if want.fetcher {
		if err := platform.ValidateDownloadTool(cfg.Download); err != nil {
			closeApp(a)
			return nil, err
		}

		f, err = fetcher.New(cfg.Download, cfg.Remote.UserAgent)
		if err != nil {
			closeApp(a)
			return nil, err
		}
	}
	// A dry run never reaches the fetcher
	a.Downloader = downloader.NewService(f, log)

	if want.store && cfg.Store.Enabled {
		s, err := store.Open(cfg.Store)
		if err != nil {
			closeApp(a)
			return nil, fmt.Errorf("failed to open run history: %w", err)
		}
		a.Store = s
	}

	return a, nil
}

func closeApp(a *app.Context) {
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			a.Logger.Warn("Failed to close run history: %v", err)
		}
	}
	a.Logger.Close()
}
