package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/lox/internal/config"
	"github.com/deepnoodle-ai/lox/parser"
)

var outputFormatsCompletion = []string{config.OutputText, config.OutputJSON}

// app carries the state shared by the subcommands of one invocation.
type app struct {
	v   *viper.Viper
	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "lox",
		Short: "Scan and parse Lox source code",
		Long: `lox scans and parses Lox source code and shows the result as tokens,
statements, reverse Polish notation or a syntax tree.

Code is read from a file argument, from --code, or from stdin. Syntax errors
are printed to stderr and make lox exit with status 65.`,
		Version:           fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file path")
	flags.StringP("code", "c", "", "code to process")
	flags.Bool("stdin", false, "read code from stdin")
	flags.String(config.KeyColor, config.ColorAuto, "color output: auto, always or never")
	flags.String(config.KeyLogLevel, "warn", "log level")
	flags.Int(config.KeyMaxErrors, 0, "stop after this many errors (0 for no limit)")
	flags.Int(config.KeyMaxDepth, parser.DefaultMaxDepth, "maximum nesting depth")
	flags.StringP(config.KeyOutput, "o", config.OutputText, "output format: text or json")
	flags.StringP("query", "q", "", "JMESPath expression applied to the JSON output")

	for _, key := range []string{
		config.KeyColor,
		config.KeyLogLevel,
		config.KeyMaxErrors,
		config.KeyMaxDepth,
		config.KeyOutput,
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}
	cmd.RegisterFlagCompletionFunc(config.KeyOutput,
		cobra.FixedCompletions(outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp))

	cmd.AddCommand(
		a.tokensCmd(),
		a.parseCmd(),
		a.rpnCmd(),
		a.astCmd(),
	)
	return cmd
}

// setup resolves the configuration and the logger before any subcommand
// runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(a.v, path)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if cfg.Color == config.ColorNever {
		color.NoColor = true
	}

	stderr := cmd.ErrOrStderr()
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: !cfg.UseColor(stderr)}).
		Level(cfg.Level()).
		With().
		Timestamp().
		Logger()
	a.log.Debug().
		Str("command", cmd.Name()).
		Str("output", cfg.Output).
		Int("max_depth", cfg.MaxDepth).
		Int("max_errors", cfg.MaxErrors).
		Msg("configuration loaded")
	return nil
}
