package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const DefaultPath = "mvnsync.yaml"

// Mirrors are the known hosts of the MAVEN science data tree.
var Mirrors = map[string]string{
	"berkeley": "https://sprg.ssl.berkeley.edu/data/maven/data/sci/",
	"lasp":     "https://lasp.colorado.edu/maven/sdc/public/data/sci/",
}

var (
	defaultExtensions  = []string{".sav", ".cdf", ".asc", ".txt"}
	defaultDirs        = []string{"l2", "ql"}
	defaultInstruments = map[string][]string{
		"mag": {"l2/sav/1sec", "l2/sav/30sec", "l2/sav/full"},
		"sep": {"l2", "l3/pad/sav"},
		"euv": {"l2", "l3"},
		"sta": {"l2", "l3/cio", "l3/density", "l3/temperature"},
	}
)

const (
	ToolWget    = "wget"
	ToolBuiltin = "builtin"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var ErrConfigNotFound = errors.New("config file not found")

type Config struct {
	Remote      RemoteConfig      `mapstructure:"remote" yaml:"remote"`
	Local       LocalConfig       `mapstructure:"local" yaml:"local"`
	Download    DownloadConfig    `mapstructure:"download" yaml:"download"`
	Instruments InstrumentsConfig `mapstructure:"instruments" yaml:"instruments"`
	Log         LogConfig         `mapstructure:"log" yaml:"log"`
	Store       StoreConfig       `mapstructure:"store" yaml:"store"`

	Port string `mapstructure:"port" yaml:"port"`
}

type RemoteConfig struct {
	Mirror     string        `mapstructure:"mirror" yaml:"mirror"`
	BaseURL    string        `mapstructure:"base_url" yaml:"base_url"`
	UserAgent  string        `mapstructure:"user_agent" yaml:"user_agent"`
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Extensions []string      `mapstructure:"extensions" yaml:"extensions"`
}

type LocalConfig struct {
	Root string `mapstructure:"root" yaml:"root"`
}

type DownloadConfig struct {
	Tool     string `mapstructure:"tool" yaml:"tool"`
	WgetPath string `mapstructure:"wget_path" yaml:"wget_path"`
}

type InstrumentsConfig struct {
	DefaultDirs []string            `mapstructure:"default_dirs" yaml:"default_dirs"`
	Overrides   map[string][]string `mapstructure:"overrides" yaml:"overrides"`
}

type LogConfig struct {
	Path          string `mapstructure:"path" yaml:"path"`
	Level         string `mapstructure:"level" yaml:"level"`
	IncludeStdout bool   `mapstructure:"include_stdout" yaml:"include_stdout"`
}

type StoreConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Driver  string `mapstructure:"driver" yaml:"driver"`
	DSN     string `mapstructure:"dsn" yaml:"dsn"`
}

// Load reads the YAML config at path on top of the built-in defaults.
// An empty path looks for mvnsync.yaml, then /config/mvnsync.yaml, and falls
// back to defaults alone when neither exists. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := newViper()

	if path == "" {
		path = DefaultPath
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = ""
			// Docker images mount their config here
			if _, errEx := os.Stat("/config/" + DefaultPath); errEx == nil {
				path = "/config/" + DefaultPath
			}
		}
	} else if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	return decode(v)
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg, err := decode(newViper())
	if err != nil {
		// The defaults are static and always validate
		panic(err)
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("remote.mirror", "berkeley")
	v.SetDefault("remote.base_url", "")
	v.SetDefault("remote.user_agent", "Mozilla/5.0")
	v.SetDefault("remote.timeout", "15s")
	v.SetDefault("remote.extensions", defaultExtensions)
	v.SetDefault("local.root", "./data/maven/data/sci")
	v.SetDefault("download.tool", ToolWget)
	v.SetDefault("download.wget_path", "")
	v.SetDefault("instruments.default_dirs", defaultDirs)
	// viper only merges file keys into map defaults typed map[string]any
	overrides := make(map[string]any, len(defaultInstruments))
	for name, dirs := range defaultInstruments {
		overrides[name] = dirs
	}
	v.SetDefault("instruments.overrides", overrides)
	v.SetDefault("log.path", "mvnsync.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.include_stdout", true)
	v.SetDefault("store.enabled", true)
	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.dsn", "mvnsync.db")

	// Support Environment Variables
	v.SetEnvPrefix("MVNSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the config and fills sane values for anything left empty.
// It is called again by the CLI after flag overrides are applied.
func (c *Config) Validate() error {
	c.Remote.Mirror = strings.ToLower(strings.TrimSpace(c.Remote.Mirror))
	if c.Remote.BaseURL == "" {
		if _, ok := Mirrors[c.Remote.Mirror]; !ok {
			return fmt.Errorf("remote: unknown mirror %q (known: berkeley, lasp)", c.Remote.Mirror)
		}
	}

	if c.Remote.UserAgent == "" {
		c.Remote.UserAgent = "Mozilla/5.0"
	}

	if c.Remote.Timeout <= 0 {
		c.Remote.Timeout = 15 * time.Second
	}

	if len(c.Remote.Extensions) == 0 {
		c.Remote.Extensions = append([]string(nil), defaultExtensions...)
	}

	if c.Local.Root == "" {
		return errors.New("local: root is required")
	}

	switch c.Download.Tool {
	case "":
		c.Download.Tool = ToolWget
	case ToolWget, ToolBuiltin:
	default:
		return fmt.Errorf("download: unknown tool %q (expected %s or %s)", c.Download.Tool, ToolWget, ToolBuiltin)
	}

	if len(c.Instruments.DefaultDirs) == 0 {
		c.Instruments.DefaultDirs = append([]string(nil), defaultDirs...)
	}

	for name, dirs := range c.Instruments.Overrides {
		if len(dirs) == 0 {
			return fmt.Errorf("instruments: override for %s has no directories", name)
		}
	}

	if c.Store.Enabled {
		switch c.Store.Driver {
		case DriverSQLite, DriverPostgres:
		default:
			return fmt.Errorf("store: unknown driver %q", c.Store.Driver)
		}

		if c.Store.DSN == "" {
			return errors.New("store: dsn is required when the store is enabled")
		}
	}

	return nil
}

// ResolvedBaseURL is the remote root, always ending in a slash.
func (r RemoteConfig) ResolvedBaseURL() string {
	base := r.BaseURL
	if base == "" {
		base = Mirrors[r.Mirror]
	}
	return strings.TrimRight(base, "/") + "/"
}
