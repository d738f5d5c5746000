// Package errors renders diagnostics with their source context.
package errors

import (
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/lox/token"
)

// SourceLocation represents a position in source code.
type SourceLocation struct {
	Filename string
	Line     int // 1-based line number
}

// String returns a formatted string representation of the source location.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d", s.Filename, s.Line)
	}
	return fmt.Sprintf("line %d", s.Line)
}

// FromToken builds a FormattedError for a diagnostic at tok. The caret
// underlines the token at its column, or at the first occurrence of its
// lexeme in sourceLine when the token carries no column. The caret is cut
// short at the end of sourceLine for tokens spanning several lines.
//
// When tok is an identifier that looks like a misspelled keyword the error
// gets a "did you mean" hint. Only tok itself is considered, not the words
// around it.
func FromToken(tok token.Token, kind, message, filename, sourceLine string) *FormattedError {
	fe := &FormattedError{
		Kind:     kind,
		Message:  message,
		Filename: filename,
		Line:     tok.Line,
	}
	if tok.Type == token.EOF {
		fe.Note = "reached end of input"
	}
	if sourceLine != "" {
		fe.SourceLines = []SourceLineEntry{{Number: tok.Line, Text: sourceLine, IsMain: true}}
		col := tok.Column
		if col <= 0 {
			col = columnOf(sourceLine, tok.Lexeme)
		}
		if tok.Lexeme != "" && col > 0 && col <= len(sourceLine) {
			fe.Column = col
			fe.EndColumn = min(col+len(tok.Lexeme)-1, len(sourceLine))
		}
	}
	if tok.Type == token.IDENT {
		fe.Hint = FormatSuggestions(SuggestSimilar(tok.Lexeme, token.Keywords()))
	}
	return fe
}

// columnOf returns the 1-based column of lexeme in line, or 0 if absent.
func columnOf(line, lexeme string) int {
	if lexeme == "" {
		return 0
	}
	return strings.Index(line, lexeme) + 1
}
