package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// exitDataErr is the exit status for input that fails to scan or parse.
const exitDataErr = 65

var red = color.New(color.FgRed).SprintFunc()

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		code := exitCode(err)
		// Syntax errors have already been reported in full.
		if code != exitDataErr {
			printError(os.Stderr, err)
		}
		os.Exit(code)
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var syntaxErr *syntaxError
	if errors.As(err, &syntaxErr) {
		return exitDataErr
	}
	return 1
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, red(err.Error()))
}

// syntaxError wraps the scan and parse errors of the input. The diagnostics
// were reported as they were found.
type syntaxError struct {
	err error
}

func (e *syntaxError) Error() string {
	return e.err.Error()
}

func (e *syntaxError) Unwrap() error {
	return e.err
}
