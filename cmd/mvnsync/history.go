package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/datallboy/mvnsync/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd(opts *globalOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recent sync runs, or the events of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if !cfg.Store.Enabled {
				return errors.New("run history is disabled (store.enabled: false)")
			}
			cfg.Log.IncludeStdout = false

			a, err := buildApp(cfg, components{store: true})
			if err != nil {
				return err
			}
			defer closeApp(a)

			ctx := context.Background()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()

			if len(args) == 1 {
				run, err := a.Store.GetRun(ctx, args[0])
				if err != nil {
					return err
				}
				events, err := a.Store.GetEvents(ctx, run.ID)
				if err != nil {
					return err
				}
				printRuns(w, []*domain.Run{run})
				fmt.Fprintln(w)
				printEvents(w, events)
				return nil
			}

			runs, err := a.Store.ListRuns(ctx, limit)
			if err != nil {
				return err
			}
			printRuns(w, runs)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs to show")
	return cmd
}

func printRuns(w io.Writer, runs []*domain.Run) {
	fmt.Fprintln(w, "ID\tINSTRUMENT\tRANGE\tSTATUS\tSTARTED\tCHECKED\tOK\tSKIP\tDRY\tFAIL\tAUTH\tERR")
	for _, r := range runs {
		status := string(r.Status)
		if r.DryRun {
			status += " (dry)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s..%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			r.ID, r.Instrument, r.Start, r.End, status,
			r.StartedAt.Local().Format(time.DateTime),
			r.Checked, r.Downloaded, r.Skipped, r.Simulated, r.Failed, r.AuthRequired, r.ListErrors)
	}
}

func printEvents(w io.Writer, events []*domain.Event) {
	fmt.Fprintln(w, "SEQ\tSUBDIR\tMONTH\tSTATUS\tDETAIL")
	for _, e := range events {
		detail := e.URL
		if e.Kind == domain.EventDownload {
			detail = e.Message
		} else if e.Message != "" {
			detail = e.URL + " " + e.Message
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", e.Seq, e.Subdir, e.Month, e.Status, detail)
	}
}
