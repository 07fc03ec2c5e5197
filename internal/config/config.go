// Package config resolves filecov settings from defaults, an optional YAML
// file and command-line flags, in increasing order of precedence.
package config

import (
	"os"
	"runtime"
	"time"

	"github.com/bethropolis/filecov/internal/logger"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Flag names
const (
	FlagDir      = "dir"
	FlagFile     = "file"
	FlagMaxCols  = "max-cols"
	FlagExclude  = "exclude"
	FlagConfig   = "config"
	FlagVerbose  = "verbose"
	FlagQuiet    = "quiet"
	FlagLogLevel = "log-level"
	FlagNoColor  = "no-color"
	FlagWorkers  = "workers"
	FlagTimeout  = "timeout"

	FlagShowExcluded = "show-excluded"
	FlagNoExclude    = "no-exclude"
)

// ErrNoInputs is returned when no coverage inputs were given
var ErrNoInputs = errors.New("no coverage inputs: pass coverage files as arguments or list them under 'inputs' in the config file")

// Config holds all application configuration settings
type Config struct {
	// Coverage inputs
	Inputs       []string
	Exclude      []string
	NoExclude    bool
	ShowExcluded bool

	// Report settings
	Dir     string
	File    string
	MaxCols int

	// Logging settings
	Verbose   bool
	Quiet     bool
	LogLevel  string
	NoColor   bool
	UseColors bool

	// Processing settings
	Workers int
	Timeout time.Duration

	// ConfigFile is the YAML file that was loaded, if any
	ConfigFile string
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Workers: runtime.NumCPU(),
	}
}

// BindFlags registers the filecov flags on flags
func BindFlags(flags *pflag.FlagSet) {
	def := Default()
	flags.StringP(FlagDir, "d", "", "Directory the report file is written to (default: current directory)")
	flags.StringP(FlagFile, "f", "", "Report file name inside --dir; omit to print to stdout")
	flags.Int(FlagMaxCols, def.MaxCols, "Metric label column width (0 = default width of 15)")
	flags.StringArrayP(FlagExclude, "e", nil, "Exclude tracked files matching this gitignore-style pattern (repeatable)")
	flags.StringP(FlagConfig, "c", "", "Configuration file path (default: .filecov.yaml or $XDG_CONFIG_HOME/filecov/config.yaml)")
	flags.BoolP(FlagVerbose, "v", false, "Enable verbose logging")
	flags.BoolP(FlagQuiet, "q", false, "Only log warnings and errors")
	flags.String(FlagLogLevel, "", "Set the logging level (debug, info, warn, error, none)")
	flags.Bool(FlagNoColor, false, "Disable colored log output")
	flags.Int(FlagWorkers, def.Workers, "Max number of coverage inputs parsed at once")
	flags.Duration(FlagTimeout, 0, "Maximum time spent loading coverage inputs (e.g. '30s')")
	flags.Bool(FlagShowExcluded, false, "Log the tracked files left out by --exclude patterns")
	flags.Bool(FlagNoExclude, false, "Ignore every exclude pattern, including those from the config file")
}

// Resolve builds the effective configuration from parsed flags, positional inputs and the config file
func Resolve(flags *pflag.FlagSet, args []string) (*Config, error) {
	cfg := Default()

	explicit, err := flags.GetString(FlagConfig)
	if err != nil {
		return nil, err
	}
	path, err := FindConfigFile(explicit)
	if err != nil {
		return nil, err
	}
	if path != "" {
		file, err := LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		file.apply(cfg)
		cfg.ConfigFile = path
	}

	if err := applyFlags(flags, cfg); err != nil {
		return nil, err
	}
	if len(args) > 0 {
		cfg.Inputs = append([]string(nil), args...)
	}
	cfg.UseColors = !cfg.NoColor && isatty.IsTerminal(os.Stderr.Fd())
	return cfg, cfg.Validate()
}

// applyFlags overrides cfg with every flag set on the command line
func applyFlags(flags *pflag.FlagSet, cfg *Config) (err error) {
	set := func(name string, apply func() error) {
		if err == nil && flags.Changed(name) {
			err = apply()
		}
	}
	set(FlagDir, func() (e error) { cfg.Dir, e = flags.GetString(FlagDir); return })
	set(FlagFile, func() (e error) { cfg.File, e = flags.GetString(FlagFile); return })
	set(FlagMaxCols, func() (e error) { cfg.MaxCols, e = flags.GetInt(FlagMaxCols); return })
	set(FlagExclude, func() error {
		patterns, e := flags.GetStringArray(FlagExclude)
		cfg.Exclude = append(cfg.Exclude, patterns...)
		return e
	})
	set(FlagVerbose, func() (e error) { cfg.Verbose, e = flags.GetBool(FlagVerbose); return })
	set(FlagQuiet, func() (e error) { cfg.Quiet, e = flags.GetBool(FlagQuiet); return })
	set(FlagLogLevel, func() (e error) { cfg.LogLevel, e = flags.GetString(FlagLogLevel); return })
	set(FlagNoColor, func() (e error) { cfg.NoColor, e = flags.GetBool(FlagNoColor); return })
	set(FlagWorkers, func() (e error) { cfg.Workers, e = flags.GetInt(FlagWorkers); return })
	set(FlagTimeout, func() (e error) { cfg.Timeout, e = flags.GetDuration(FlagTimeout); return })
	set(FlagShowExcluded, func() (e error) { cfg.ShowExcluded, e = flags.GetBool(FlagShowExcluded); return })
	set(FlagNoExclude, func() (e error) { cfg.NoExclude, e = flags.GetBool(FlagNoExclude); return })
	return err
}

// Validate checks the configuration for values the report cannot use
func (c *Config) Validate() error {
	switch {
	case c.MaxCols < 0:
		return errors.Errorf("max columns must not be negative: %d", c.MaxCols)
	case c.Workers < 1:
		return errors.Errorf("workers must be at least 1: %d", c.Workers)
	case c.Timeout < 0:
		return errors.Errorf("timeout must not be negative: %s", c.Timeout)
	case len(c.Inputs) == 0:
		return ErrNoInputs
	}
	return nil
}

// Level returns the effective log level. An explicit level wins over verbose and quiet.
func (c *Config) Level() logger.LogLevel {
	switch {
	case c.LogLevel != "":
		return logger.ParseLevel(c.LogLevel)
	case c.Verbose:
		return logger.LevelDebug
	case c.Quiet:
		return logger.LevelWarn
	default:
		return logger.LevelInfo
	}
}
