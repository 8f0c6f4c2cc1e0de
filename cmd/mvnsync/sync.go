package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/datallboy/mvnsync/internal/engine"
	"github.com/spf13/cobra"
)

func newSyncCmd(opts *globalOptions) *cobra.Command {
	var req engine.Request
	var tool string
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Download every missing file for an instrument and month range",
		Example: `  mvnsync sync -i swe --start 2014-10 --end 2026-01
  mvnsync sync -i mag --start 2020-11 --end 2021-02 --dry-run --mirror lasp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if tool != "" {
				cfg.Download.Tool = tool
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			a, err := buildApp(cfg, components{store: !noHistory, fetcher: !req.DryRun})
			if err != nil {
				return err
			}
			defer closeApp(a)

			// Ctrl+C stops after the current file
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, err = engine.NewSyncer(a).Sync(ctx, req)
			if errors.Is(err, context.Canceled) {
				a.Logger.Warn("Interrupted")
				return nil
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&req.Instrument, "instrument", "i", "", "instrument identifier, e.g. swe, mag, sta")
	f.StringVar(&req.Start, "start", "", "first month, YYYY-MM")
	f.StringVar(&req.End, "end", "", "last month, YYYY-MM")
	f.BoolVarP(&req.DryRun, "dry-run", "n", false, "report what would be downloaded without writing anything")
	f.StringVar(&tool, "tool", "", "download tool: wget or builtin")
	f.BoolVar(&noHistory, "no-history", false, "do not record this run in the history store")

	cmd.MarkFlagRequired("instrument")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}
