package main

import (
	"fmt"

	"github.com/datallboy/mvnsync/internal/domain"
	"github.com/spf13/cobra"
)

func newDirsCmd(opts *globalOptions) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "dirs <instrument>",
		Short: "Print the subdirectories synced for an instrument",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			cfg.Log.IncludeStdout = false

			a, err := buildApp(cfg, components{})
			if err != nil {
				return err
			}
			defer closeApp(a)

			out := cmd.OutOrStdout()
			instrument := args[0]

			if month == "" {
				for _, d := range a.Resolver.TargetDirs(instrument) {
					fmt.Fprintln(out, d)
				}
				return nil
			}

			m, err := domain.ParseMonth(month)
			if err != nil {
				return err
			}

			// Show both sides of each target for the month
			for _, t := range a.Resolver.Targets(instrument, []domain.Month{m}) {
				fmt.Fprintf(out, "%s\n  -> %s\n", t.RemoteURL(cfg.Remote.ResolvedBaseURL()), t.LocalDir(cfg.Local.Root))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "also print remote and local paths for this YYYY-MM")
	return cmd
}
