// Package lexer turns source text into the token sequence consumed by the
// parser.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"

	"github.com/deepnoodle-ai/lox/token"
)

// Error is a lexical error at a particular position of the input.
type Error struct {
	Line    int
	Column  int
	Lexeme  string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// Token returns the ILLEGAL token the error was found at.
func (e *Error) Token() token.Token {
	return token.Token{Type: token.ILLEGAL, Lexeme: e.Lexeme, Line: e.Line, Column: e.Column}
}

// Lexer scans one input string. It is not safe for concurrent use.
type Lexer struct {
	input string
	start int
	pos   int
	line  int

	// lineStart is the offset of the first byte of the current line.
	lineStart int

	// column is the 1-indexed column of the token being scanned.
	column int
}

// New returns a Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1}
}

// LineText returns the text of the given 1-indexed line, without the
// trailing newline.
func (l *Lexer) LineText(line int) string {
	lines := strings.Split(l.input, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[line-1], "\r")
}

// Next returns the next token. Once the input is exhausted it returns an EOF
// token on every call. When an error is returned the offending text has been
// consumed and the returned token is ILLEGAL, so scanning may continue.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespace()
	l.start = l.pos
	l.column = l.start - l.lineStart + 1
	if l.atEnd() {
		return l.emit(token.EOF), nil
	}
	ch := l.advance()
	switch {
	case isDigit(ch):
		return l.readNumber()
	case isAlpha(ch):
		return l.readIdentifier(), nil
	}
	switch ch {
	case '(':
		return l.emit(token.LPAREN), nil
	case ')':
		return l.emit(token.RPAREN), nil
	case '{':
		return l.emit(token.LBRACE), nil
	case '}':
		return l.emit(token.RBRACE), nil
	case ',':
		return l.emit(token.COMMA), nil
	case '.':
		return l.emit(token.PERIOD), nil
	case '-':
		return l.emit(token.MINUS), nil
	case '+':
		return l.emit(token.PLUS), nil
	case ';':
		return l.emit(token.SEMICOLON), nil
	case '*':
		return l.emit(token.ASTERISK), nil
	case '/':
		return l.emit(token.SLASH), nil
	case '?':
		return l.emit(token.QUESTION), nil
	case ':':
		return l.emit(token.COLON), nil
	case '!':
		return l.emitEither('=', token.NOT_EQ, token.BANG), nil
	case '=':
		return l.emitEither('=', token.EQ, token.ASSIGN), nil
	case '<':
		return l.emitEither('=', token.LT_EQUALS, token.LT), nil
	case '>':
		return l.emitEither('=', token.GT_EQUALS, token.GT), nil
	case '"':
		return l.readString()
	}
	// Report a multi-byte character once, as a whole.
	r, size := utf8.DecodeRuneInString(l.input[l.start:])
	l.pos = l.start + size
	tok := l.emit(token.ILLEGAL)
	return tok, l.errorf(tok, "Unexpected character %q.", r)
}

// Scan reads the whole input and returns its tokens, always terminated by an
// EOF token. Lexical errors are collected and returned together; the ILLEGAL
// tokens they produced are left out of the sequence.
func Scan(input string) ([]token.Token, error) {
	return New(input).ScanAll()
}

// ScanAll reads the remaining input. See Scan.
func (l *Lexer) ScanAll() ([]token.Token, error) {
	var (
		tokens []token.Token
		errs   *multierror.Error
	)
	for {
		tok, err := l.Next()
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens, errs.ErrorOrNil()
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		switch l.peek() {
		case ' ', '\r', '\t':
			l.pos++
		case '\n':
			l.line++
			l.pos++
			l.lineStart = l.pos
		case '/':
			if l.peekNext() != '/' {
				return
			}
			for !l.atEnd() && l.peek() != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

func (l *Lexer) readNumber() (token.Token, error) {
	for isDigit(l.peek()) {
		l.pos++
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.pos++
		for isDigit(l.peek()) {
			l.pos++
		}
	}
	tok := l.emit(token.NUMBER)
	value, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		tok.Type = token.ILLEGAL
		return tok, l.errorf(tok, "Invalid number %q.", tok.Lexeme)
	}
	tok.Literal = value
	return tok, nil
}

func (l *Lexer) readIdentifier() token.Token {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.pos++
	}
	return l.emit(token.LookupIdentifier(l.input[l.start:l.pos]))
}

func (l *Lexer) readString() (token.Token, error) {
	line := l.line
	for !l.atEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			l.line++
			l.lineStart = l.pos + 1
		}
		l.pos++
	}
	if l.atEnd() {
		tok := l.emitAt(token.ILLEGAL, line)
		return tok, l.errorf(tok, "Unterminated string.")
	}
	l.pos++ // closing quote
	tok := l.emitAt(token.STRING, line)
	tok.Literal = l.input[l.start+1 : l.pos-1]
	return tok, nil
}

func (l *Lexer) emit(typ token.Type) token.Token {
	return l.emitAt(typ, l.line)
}

// emitAt emits a token that starts on the given line, which differs from the
// current line only for strings spanning several lines.
func (l *Lexer) emitAt(typ token.Type, line int) token.Token {
	tok := token.New(typ, l.input[l.start:l.pos], line)
	tok.Column = l.column
	return tok
}

func (l *Lexer) emitEither(next byte, match, otherwise token.Type) token.Token {
	if l.peek() == next {
		l.pos++
		return l.emit(match)
	}
	return l.emit(otherwise)
}

func (l *Lexer) errorf(tok token.Token, format string, args ...any) error {
	return &Error{
		Line:    tok.Line,
		Column:  tok.Column,
		Lexeme:  tok.Lexeme,
		Message: fmt.Sprintf(format, args...),
	}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) advance() byte {
	ch := l.input[l.pos]
	l.pos++
	return ch
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekNext() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isAlpha(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}
