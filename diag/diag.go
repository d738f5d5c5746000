// Package diag provides sinks for the diagnostics reported while parsing.
//
// Every sink implements Report(token.Token, string) and can be passed to
// parser.WithReporter.
package diag

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/lox/errors"
	"github.com/deepnoodle-ai/lox/internal/lexer"
	"github.com/deepnoodle-ai/lox/token"
)

// Reporter receives one call per diagnostic. The parser accepts any
// Reporter as its sink.
type Reporter interface {
	Report(tok token.Token, message string)
}

// Diagnostic is a single reported problem.
type Diagnostic struct {
	Token   token.Token
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error at %s: %s", d.Token.Line, At(d.Token), d.Message)
}

// At describes where a diagnostic occurred: "end" for the EOF token,
// otherwise the quoted lexeme.
func At(tok token.Token) string {
	if tok.Type == token.EOF {
		return "end"
	}
	return "'" + tok.Lexeme + "'"
}

// Collector keeps diagnostics in memory, in the order they were reported.
type Collector struct {
	diagnostics []Diagnostic
}

// Report records the diagnostic.
func (c *Collector) Report(tok token.Token, message string) {
	c.diagnostics = append(c.diagnostics, Diagnostic{Token: tok, Message: message})
}

// Diagnostics returns a copy of everything reported so far.
func (c *Collector) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), c.diagnostics...)
}

// Len returns the number of diagnostics reported so far.
func (c *Collector) Len() int {
	return len(c.diagnostics)
}

// Messages returns the message of each diagnostic.
func (c *Collector) Messages() []string {
	diags := c.Diagnostics()
	msgs := make([]string, 0, len(diags))
	for _, d := range diags {
		msgs = append(msgs, d.Message)
	}
	return msgs
}

// LogReporter writes each diagnostic as a structured log event.
type LogReporter struct {
	log   zerolog.Logger
	level zerolog.Level
}

// NewLogReporter returns a reporter that logs to the given logger at the
// given level.
func NewLogReporter(log zerolog.Logger, level zerolog.Level) *LogReporter {
	return &LogReporter{log: log, level: level}
}

// Report logs the diagnostic.
func (r *LogReporter) Report(tok token.Token, message string) {
	r.log.WithLevel(r.level).
		Int("line", tok.Line).
		Str("at", At(tok)).
		Str("token", string(tok.Type)).
		Msg(message)
}

// ConsoleReporter renders each diagnostic with its source line, in the
// style of errors.Formatter.
type ConsoleReporter struct {
	w         io.Writer
	formatter *errors.Formatter
	filename  string
	source    *lexer.Lexer
}

// ConsoleOption configures a ConsoleReporter.
type ConsoleOption func(*ConsoleReporter)

// WithColor enables ANSI colors.
func WithColor(enabled bool) ConsoleOption {
	return func(r *ConsoleReporter) {
		r.formatter.UseColor = enabled
	}
}

// WithFilename sets the file name shown in locations.
func WithFilename(filename string) ConsoleOption {
	return func(r *ConsoleReporter) {
		r.filename = filename
	}
}

// WithSource sets the source text that diagnostics quote.
func WithSource(source string) ConsoleOption {
	return func(r *ConsoleReporter) {
		r.source = lexer.New(source)
	}
}

// NewConsoleReporter returns a reporter that writes formatted diagnostics
// to w.
func NewConsoleReporter(w io.Writer, options ...ConsoleOption) *ConsoleReporter {
	r := &ConsoleReporter{w: w, formatter: errors.NewFormatter(false)}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Report writes the diagnostic. Write errors are ignored.
func (r *ConsoleReporter) Report(tok token.Token, message string) {
	kind := "parse error"
	if tok.Type == token.ILLEGAL {
		kind = "syntax error"
	}
	var line string
	if r.source != nil {
		line = r.source.LineText(tok.Line)
	}
	fe := errors.FromToken(tok, kind, message, r.filename, line)
	fmt.Fprint(r.w, r.formatter.Format(fe))
}

// Multi fans each diagnostic out to several reporters, in order.
type Multi []Reporter

// Report passes the diagnostic to every reporter.
func (m Multi) Report(tok token.Token, message string) {
	for _, r := range m {
		r.Report(tok, message)
	}
}
