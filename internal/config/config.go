// Package config loads the settings of the lox command from flags, LOX_*
// environment variables and an optional config file.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/lox/parser"
)

// Keys understood by the configuration.
const (
	KeyColor     = "color"
	KeyLogLevel  = "log-level"
	KeyMaxErrors = "max-errors"
	KeyMaxDepth  = "max-depth"
	KeyOutput    = "output"
)

// EnvPrefix is prepended to every key to form its environment variable, with
// dashes replaced by underscores: LOX_MAX_ERRORS.
const EnvPrefix = "LOX"

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds the resolved settings.
type Config struct {
	Color     string
	LogLevel  string
	MaxErrors int
	MaxDepth  int
	Output    string
}

// New returns a viper instance with defaults set and environment lookup
// enabled.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyColor, ColorAuto)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyMaxErrors, 0)
	v.SetDefault(KeyMaxDepth, parser.DefaultMaxDepth)
	v.SetDefault(KeyOutput, OutputText)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path, if one is given, and returns the
// validated configuration.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	cfg := &Config{
		Color:     strings.ToLower(v.GetString(KeyColor)),
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
		MaxErrors: v.GetInt(KeyMaxErrors),
		MaxDepth:  v.GetInt(KeyMaxDepth),
		Output:    strings.ToLower(v.GetString(KeyOutput)),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs *multierror.Error
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = multierror.Append(errs, fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("invalid log level %q", c.LogLevel))
	}
	if c.MaxErrors < 0 {
		errs = multierror.Append(errs, fmt.Errorf("max-errors must not be negative, got %d", c.MaxErrors))
	}
	if c.MaxDepth < 1 {
		errs = multierror.Append(errs, fmt.Errorf("max-depth must be positive, got %d", c.MaxDepth))
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		errs = multierror.Append(errs, fmt.Errorf("unknown output format: %s", c.Output))
	}
	return errs.ErrorOrNil()
}

// Level returns the configured log level. An empty setting disables
// logging.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	if level == zerolog.NoLevel {
		return zerolog.Disabled
	}
	return level
}

// UseColor reports whether output written to w should be colored. In auto
// mode only terminals get color.
func (c *Config) UseColor(w io.Writer) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ParserOptions returns the parser options implied by the configuration.
func (c *Config) ParserOptions() []parser.Option {
	return []parser.Option{
		parser.WithMaxDepth(c.MaxDepth),
		parser.WithMaxErrors(c.MaxErrors),
	}
}
