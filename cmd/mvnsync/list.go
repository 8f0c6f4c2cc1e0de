package main

import (
	"context"
	"fmt"

	"github.com/datallboy/mvnsync/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <instrument> <subdir> <YYYY-MM>",
		Short: "Print the data files a mirror lists for one directory",
		Example: `  mvnsync list swe l2 2015-01
  mvnsync list mag l2/sav/1sec 2020-11 --mirror lasp`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := domain.ParseMonth(args[2])
			if err != nil {
				return err
			}

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

			target := domain.Target{Instrument: args[0], Subdir: args[1], Month: month}
			url := target.RemoteURL(cfg.Remote.ResolvedBaseURL())

			listing := a.Lister.List(context.Background(), url)
			out := cmd.OutOrStdout()

			switch listing.Status {
			case domain.ListingAuth:
				fmt.Fprintf(out, "%s: login required\n", url)
			case domain.ListingError:
				return fmt.Errorf("%s: %s", url, listing.Message)
			default:
				fmt.Fprintf(out, "%s: %d files\n", url, len(listing.Files))
				for _, f := range listing.Files {
					fmt.Fprintln(out, f)
				}
			}
			return nil
		},
	}
}
