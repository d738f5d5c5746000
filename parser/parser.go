// Package parser is used to generate the abstract syntax tree (AST) for a
// program.
//
// A parser is created by calling New() with the token sequence produced by a
// scanner. The parser should then be used only once, by calling Parse() to
// produce the AST. Syntax errors do not abort the parse: each one is reported
// through the configured Reporter, the parser skips ahead to the next
// statement boundary, and parsing continues. The returned program holds every
// declaration that parsed successfully.
package parser

import (
	"github.com/hashicorp/go-multierror"

	"github.com/deepnoodle-ai/lox/ast"
	"github.com/deepnoodle-ai/lox/internal/lexer"
	"github.com/deepnoodle-ai/lox/token"
)

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 500

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithReporter sets the sink that receives one call per syntax error.
func WithReporter(r Reporter) Option {
	return func(p *Parser) {
		p.reporter = r
	}
}

// WithMaxDepth sets the maximum nesting depth for the parser.
// This prevents stack overflow on deeply nested input.
// The default is 500.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// WithMaxErrors stops the parse once the given number of errors has been
// reported. Zero, the default, means no limit.
func WithMaxErrors(n int) Option {
	return func(p *Parser) {
		p.maxErrors = n
	}
}

// Parser object
type Parser struct {
	// tokens is the input, always terminated by an EOF token.
	tokens []token.Token

	// current is the index of the next token to consume.
	current int

	// reporter receives each syntax error as it is found.
	reporter Reporter

	// parsing errors collected during parsing
	errors []*ParseError

	// Current recursion depth
	depth int

	// Maximum allowed recursion depth
	maxDepth int

	// Number of errors after which parsing stops; zero for no limit
	maxErrors int

	// halted is set once the depth limit is hit. Nothing is parsed after it.
	halted bool
}

// New returns a Parser for the given token sequence. The sequence should end
// with an EOF token; one is appended if it does not.
func New(tokens []token.Token, options ...Option) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].Type != token.EOF {
		line := 1
		if n > 0 {
			line = tokens[n-1].Line
		}
		tokens = append(tokens[:n:n], token.New(token.EOF, "", line))
	}
	p := &Parser{
		tokens:   tokens,
		reporter: discard{},
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Parse the given tokens and return the AST. This is shorthand for creating
// a Parser with New and calling Parse on it.
func Parse(tokens []token.Token, options ...Option) (*ast.Program, error) {
	return New(tokens, options...).Parse()
}

// ParseSource scans and parses the given source text. Lexical errors are
// reported through the same Reporter as syntax errors and are included in
// the returned error.
func ParseSource(input string, options ...Option) (*ast.Program, error) {
	tokens, scanErr := lexer.Scan(input)
	p := New(tokens, options...)
	var errs *multierror.Error
	if scanErr != nil {
		if merr, ok := scanErr.(*multierror.Error); ok {
			for _, err := range merr.Errors {
				if lerr, ok := err.(*lexer.Error); ok {
					p.reporter.Report(lerr.Token(), lerr.Message)
				}
			}
		}
		errs = multierror.Append(errs, scanErr)
	}
	program, err := p.Parse()
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	return program, errs.ErrorOrNil()
}

// Parse the program. The returned program is never nil. If any syntax errors
// were found, it contains only the declarations that parsed successfully and
// the error is a *multierror.Error holding one *ParseError per fault.
//
// Exceeding the nesting depth ends the parse: the error is reported once and
// the rest of the input is left unparsed.
func (p *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{}
	for !p.isAtEnd() {
		if p.stopped() {
			break
		}
		if stmt := p.declaration(); stmt != nil {
			program.Stmts = append(program.Stmts, stmt)
		}
	}
	return program, p.err()
}

// Errors returns the syntax errors found so far, in the order they were
// reported.
func (p *Parser) Errors() []*ParseError {
	return p.errors
}

func (p *Parser) err() error {
	var errs *multierror.Error
	for _, err := range p.errors {
		errs = multierror.Append(errs, err)
	}
	return errs.ErrorOrNil()
}

// tooManyErrors returns true if error limit has been reached.
func (p *Parser) tooManyErrors() bool {
	return p.maxErrors > 0 && len(p.errors) >= p.maxErrors
}

// stopped returns true once no further declarations should be attempted.
func (p *Parser) stopped() bool {
	return p.halted || p.tooManyErrors()
}

// report records a syntax error at the given token and passes it to the
// reporter. Parsing carries on from the current position.
func (p *Parser) report(tok token.Token, msg string) *ParseError {
	err := &ParseError{Token: tok, Message: msg}
	p.errors = append(p.errors, err)
	p.reporter.Report(tok, msg)
	return err
}

// fail reports a syntax error and returns it so the caller can abandon the
// current declaration. The error is handled by declaration, which
// resynchronizes the parser.
func (p *Parser) fail(tok token.Token, msg string) error {
	return p.report(tok, msg)
}

// synchronize skips tokens until a statement boundary is reached.
// This is used for error recovery to continue parsing after an error.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		// Stop after a statement terminator
		if p.previous().Type == token.SEMICOLON {
			return
		}
		// Stop at statement-starting keywords
		if token.IsDeclarationKeyword(p.peek().Type) {
			return
		}
		p.advance()
	}
}

// enter increments the nesting depth, failing once it exceeds the limit.
// Each successful call must be paired with a call to leave. A failure halts
// the parser.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		p.depth--
		p.halted = true
		return p.fail(p.peek(), "maximum nesting depth exceeded")
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// match consumes the current token if it has any of the given types.
func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume returns the current token and advances if it has the given type.
// Otherwise it fails with msg at the current token.
func (p *Parser) consume(t token.Type, msg string) (token.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return token.Token{}, p.fail(p.peek(), msg)
}

// check returns true if the current token has the given type.
func (p *Parser) check(t token.Type) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

// advance consumes the current token and returns it. At the end of input it
// stays on the EOF token.
func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

// peek returns the current token, which has not been consumed yet.
func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

// previous returns the most recently consumed token.
func (p *Parser) previous() token.Token {
	if p.current == 0 {
		return token.Token{}
	}
	return p.tokens[p.current-1]
}
