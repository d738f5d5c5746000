package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/lox/ast"
	"github.com/deepnoodle-ai/lox/diag"
	"github.com/deepnoodle-ai/lox/internal/lexer"
	"github.com/deepnoodle-ai/lox/parser"
	"github.com/deepnoodle-ai/lox/token"
)

// source is the code given to a command.
type source struct {
	// filename is empty unless the code was read from a file.
	filename string
	text     string
}

// readSource determines what code is to be processed. There are three
// possibilities:
// 1. --code <code>
// 2. path as args[0]
// 3. stdin, with --stdin or when neither of the above is given
func readSource(cmd *cobra.Command, args []string) (*source, error) {
	var codeFlagSet bool
	if f := cmd.Flags().Lookup("code"); f != nil && f.Changed {
		codeFlagSet = true
	}
	var stdinFlagSet bool
	if f := cmd.Flags().Lookup("stdin"); f != nil && f.Changed {
		stdinFlagSet = true
	}
	pathSupplied := len(args) > 0
	if pathSupplied && (codeFlagSet || stdinFlagSet) {
		return nil, errors.New("multiple input sources specified")
	} else if codeFlagSet && stdinFlagSet {
		return nil, errors.New("multiple input sources specified")
	}
	switch {
	case codeFlagSet:
		code, err := cmd.Flags().GetString("code")
		if err != nil {
			return nil, err
		}
		return &source{text: code}, nil
	case pathSupplied:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, err
		}
		return &source{filename: args[0], text: string(data)}, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	return &source{text: string(data)}, nil
}

// reporter returns the sink for diagnostics about src: formatted output on
// stderr, plus a debug log event for each.
func (a *app) reporter(cmd *cobra.Command, src *source) diag.Reporter {
	stderr := cmd.ErrOrStderr()
	return diag.Multi{
		diag.NewConsoleReporter(stderr,
			diag.WithColor(a.cfg.UseColor(stderr)),
			diag.WithFilename(src.filename),
			diag.WithSource(src.text)),
		diag.NewLogReporter(a.log, zerolog.DebugLevel),
	}
}

// scan returns the tokens of src. Lexical errors are reported and turn into
// a syntax error.
func (a *app) scan(cmd *cobra.Command, src *source) ([]token.Token, error) {
	tokens, err := lexer.Scan(src.text)
	if err == nil {
		return tokens, nil
	}
	r := a.reporter(cmd, src)
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		return tokens, &syntaxError{err: err}
	}
	for _, e := range merr.Errors {
		var lerr *lexer.Error
		if errors.As(e, &lerr) {
			r.Report(lerr.Token(), lerr.Message)
		}
	}
	return tokens, &syntaxError{err: err}
}

// parse scans and parses src with the configured limits.
func (a *app) parse(cmd *cobra.Command, src *source) (*ast.Program, error) {
	options := append(a.cfg.ParserOptions(), parser.WithReporter(a.reporter(cmd, src)))
	program, err := parser.ParseSource(src.text, options...)
	a.log.Debug().
		Str("file", src.filename).
		Int("lines", strings.Count(src.text, "\n")+1).
		Int("statements", len(program.Stmts)).
		Bool("ok", err == nil).
		Msg("parsed")
	if err != nil {
		return program, &syntaxError{err: err}
	}
	return program, nil
}
