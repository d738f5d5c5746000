package parser

import (
	goerrors "errors"
	"fmt"

	"github.com/deepnoodle-ai/lox/diag"
	"github.com/deepnoodle-ai/lox/errors"
	"github.com/deepnoodle-ai/lox/token"
)

// errStopped abandons the declarations still open once the parser has
// stopped. It is never reported.
var errStopped = goerrors.New("parser stopped")

// Reporter receives syntax errors as the parser finds them. Report is called
// exactly once per fault, before the parser skips ahead to recover. The
// sinks in package diag all satisfy it.
type Reporter = diag.Reporter

// ReporterFunc adapts an ordinary function to the Reporter interface.
type ReporterFunc func(tok token.Token, message string)

// Report calls f(tok, message).
func (f ReporterFunc) Report(tok token.Token, message string) {
	f(tok, message)
}

type discard struct{}

func (discard) Report(token.Token, string) {}

// ParseError is a syntax error found at a particular token.
type ParseError struct {
	Token   token.Token
	Message string
}

func (e *ParseError) Error() string {
	if e.Token.Type == token.EOF {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Token.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Token.Line, e.Token.Lexeme, e.Message)
}

// Line returns the 1-indexed line of the offending token.
func (e *ParseError) Line() int {
	return e.Token.Line
}

// ToFormatted converts the parser error to a FormattedError for display.
// sourceLine is the text of the line the error occurred on, if available.
func (e *ParseError) ToFormatted(filename, sourceLine string) *errors.FormattedError {
	return errors.FromToken(e.Token, "parse error", e.Message, filename, sourceLine)
}
