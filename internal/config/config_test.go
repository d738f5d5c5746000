package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/lox/parser"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.Nil(t, err)
	assert.Equal(t, &Config{
		Color:     ColorAuto,
		LogLevel:  "warn",
		MaxErrors: 0,
		MaxDepth:  parser.DefaultMaxDepth,
		Output:    OutputText,
	}, cfg)
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
}

func TestEnvironment(t *testing.T) {
	t.Setenv("LOX_MAX_ERRORS", "3")
	t.Setenv("LOX_LOG_LEVEL", "DEBUG")
	t.Setenv("LOX_OUTPUT", "json")

	cfg, err := Load(New(), "")
	require.Nil(t, err)
	assert.Equal(t, 3, cfg.MaxErrors)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lox.yaml")
	data := "color: never\nmax-depth: 64\nlog-level: error\n"
	require.Nil(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(New(), path)
	require.Nil(t, err)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, 64, cfg.MaxDepth)
	assert.Equal(t, zerolog.ErrorLevel, cfg.Level())
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lox.yaml")
	require.Nil(t, os.WriteFile(path, []byte("max-depth: 64\n"), 0o644))
	t.Setenv("LOX_MAX_DEPTH", "32")

	cfg, err := Load(New(), path)
	require.Nil(t, err)
	assert.Equal(t, 32, cfg.MaxDepth)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Color:     "sometimes",
		LogLevel:  "loud",
		MaxErrors: -1,
		MaxDepth:  0,
		Output:    "xml",
	}
	err := cfg.Validate()
	require.NotNil(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 5)
	assert.Contains(t, err.Error(), `invalid color mode "sometimes"`)
	assert.Contains(t, err.Error(), "unknown output format: xml")
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("LOX_COLOR", "purple")
	_, err := Load(New(), "")
	require.NotNil(t, err)
}

func TestLevelDisabled(t *testing.T) {
	cfg := &Config{LogLevel: ""}
	assert.Equal(t, zerolog.Disabled, cfg.Level())
	cfg.LogLevel = "disabled"
	assert.Equal(t, zerolog.Disabled, cfg.Level())
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, (&Config{Color: ColorAlways}).UseColor(&buf))
	assert.False(t, (&Config{Color: ColorNever}).UseColor(&buf))

	// A buffer is never a terminal.
	assert.False(t, (&Config{Color: ColorAuto}).UseColor(&buf))
}

func TestParserOptions(t *testing.T) {
	cfg := &Config{MaxDepth: 8, MaxErrors: 1}
	program, err := parser.ParseSource("((1)); print ; print ;", cfg.ParserOptions()...)
	require.NotNil(t, err)
	require.Len(t, program.Stmts, 1)
	assert.Equal(t, "((1));", program.Stmts[0].String())

	merr := err.(*multierror.Error)
	assert.Len(t, merr.Errors, 1)

	cfg = &Config{MaxDepth: 2}
	program, err = parser.ParseSource("((1));", cfg.ParserOptions()...)
	require.NotNil(t, err)
	assert.Empty(t, program.Stmts)
	assert.Contains(t, err.Error(), "maximum nesting depth exceeded")
}
