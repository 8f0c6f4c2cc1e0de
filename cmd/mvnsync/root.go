package main

import (
	"github.com/datallboy/mvnsync/internal/infra/config"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	mirror     string
	baseURL    string
	root       string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "mvnsync",
		Short: "Mirror MAVEN science data directories onto local storage",
		Long: `mvnsync walks <base_url>/<instrument>/<subdir>/<year>/<month>/ on a MAVEN
science data mirror for a range of months and downloads every data file that
is not already present under <root>/<instrument>/<subdir>/<year>/<month>/.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file (default mvnsync.yaml if present)")
	pf.StringVar(&opts.mirror, "mirror", "", "remote mirror: berkeley or lasp")
	pf.StringVar(&opts.baseURL, "base-url", "", "remote base URL, overrides --mirror")
	pf.StringVar(&opts.root, "root", "", "local root directory")
	pf.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		newSyncCmd(opts),
		newListCmd(opts),
		newDirsCmd(opts),
		newHistoryCmd(opts),
		newServeCmd(opts),
	)

	return root
}

// load reads the config file and applies the flag overrides on top.
func (o *globalOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	if o.mirror != "" {
		cfg.Remote.Mirror = o.mirror
		cfg.Remote.BaseURL = ""
	}
	if o.baseURL != "" {
		cfg.Remote.BaseURL = o.baseURL
	}
	if o.root != "" {
		cfg.Local.Root = o.root
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
