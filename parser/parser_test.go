package parser

import (
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/lox/ast"
	"github.com/deepnoodle-ai/lox/diag"
	"github.com/deepnoodle-ai/lox/internal/lexer"
	"github.com/deepnoodle-ai/lox/token"
)

// Core parser tests (parser.go)
// - Error collection and reporting
// - Panic-mode recovery
// - Max depth and max error limits
// - Token sequence handling

func scan(t *testing.T, input string) []token.Token {
	t.Helper()
	tokens, err := lexer.Scan(input)
	require.Nil(t, err)
	return tokens
}

func parse(t *testing.T, input string, options ...Option) (*ast.Program, *diag.Collector, error) {
	t.Helper()
	c := &diag.Collector{}
	options = append([]Option{WithReporter(c)}, options...)
	program, err := Parse(scan(t, input), options...)
	require.NotNil(t, program)
	return program, c, err
}

func parseOK(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, c, err := parse(t, input)
	require.Nil(t, err)
	require.Zero(t, c.Len(), "unexpected diagnostics: %v", c.Messages())
	return program
}

func TestEmptyProgram(t *testing.T) {
	program := parseOK(t, "")
	assert.Empty(t, program.Stmts)

	program = parseOK(t, "// only a comment\n")
	assert.Empty(t, program.Stmts)
}

func TestProgramOrder(t *testing.T) {
	program := parseOK(t, "var a = 1;\nprint a;\na = 2;")
	require.Len(t, program.Stmts, 3)
	assert.IsType(t, &ast.Var{}, program.Stmts[0])
	assert.IsType(t, &ast.Print{}, program.Stmts[1])
	assert.IsType(t, &ast.ExprStmt{}, program.Stmts[2])
}

func TestMissingEOFIsAppended(t *testing.T) {
	tokens := scan(t, "print 1;")
	tokens = tokens[:len(tokens)-1]

	program, err := Parse(tokens)
	require.Nil(t, err)
	require.Len(t, program.Stmts, 1)

	program, err = Parse(nil)
	require.Nil(t, err)
	assert.Empty(t, program.Stmts)
}

func TestTokensAreNotModified(t *testing.T) {
	tokens := scan(t, "var x = (1 + 2) * 3; print x ? 1 : 2;")
	snapshot := append([]token.Token(nil), tokens...)
	_, err := Parse(tokens)
	require.Nil(t, err)
	assert.Equal(t, snapshot, tokens)
}

func TestIdempotent(t *testing.T) {
	tokens := scan(t, `var a = "x"; { if (a == nil) print -1; else a = a, 2 ? true : false; }`)
	first, err := Parse(tokens)
	require.Nil(t, err)
	second, err := Parse(tokens)
	require.Nil(t, err)
	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
}

func TestErrorsAreAggregated(t *testing.T) {
	program, c, err := parse(t, "print ;\nvar = 2;\nprint 3;")
	require.NotNil(t, err)
	require.Len(t, program.Stmts, 1)
	assert.Equal(t, "print 3;", program.Stmts[0].String())

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "[line 1] Error at ';': Expect expression.", pe.Error())
	assert.Equal(t, 1, pe.Line())

	second := merr.Errors[1].(*ParseError)
	assert.Equal(t, "[line 2] Error at '=': Expected variable name.", second.Error())

	// The reporter sees each fault exactly once, in order.
	assert.Equal(t, []string{"Expect expression.", "Expected variable name."}, c.Messages())
}

func TestParserErrorsAccessor(t *testing.T) {
	p := New(scan(t, "1 +;"))
	_, err := p.Parse()
	require.NotNil(t, err)
	require.Len(t, p.Errors(), 1)
	assert.Equal(t, "Expect expression.", p.Errors()[0].Message)
	assert.Equal(t, ";", p.Errors()[0].Token.Lexeme)
}

func TestErrorAtEnd(t *testing.T) {
	_, c, err := parse(t, "{ print 1;")
	require.NotNil(t, err)
	diags := c.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, token.Type(token.EOF), diags[0].Token.Type)
	assert.Equal(t, "Expect '}' after block.", diags[0].Message)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "[line 1] Error at end: Expect '}' after block.", pe.Error())
}

func TestReporterFunc(t *testing.T) {
	var got []string
	reporter := ReporterFunc(func(tok token.Token, msg string) {
		got = append(got, tok.Lexeme+" "+msg)
	})
	_, err := Parse(scan(t, "1 = 2;"), WithReporter(reporter))
	require.NotNil(t, err)
	assert.Equal(t, []string{"= Invalid assignment target."}, got)
}

func TestToFormatted(t *testing.T) {
	_, err := Parse(scan(t, "pritn x;"))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	fe := pe.ToFormatted("main.lox", "pritn x;")
	assert.Equal(t, "parse error", fe.Kind)
	assert.Equal(t, "main.lox", fe.Filename)
	assert.Equal(t, 7, fe.Column)
	assert.Equal(t, "Expect ';' after expression.", fe.Message)
}

func nestedParens(n int) string {
	return strings.Repeat("(", n) + "1" + strings.Repeat(")", n)
}

func TestMaxDepth(t *testing.T) {
	p := New(scan(t, "print 1; "+nestedParens(1000)+"; print 2;"))
	program, err := p.Parse()
	require.NotNil(t, err)
	require.Len(t, p.Errors(), 1)
	assert.Equal(t, "maximum nesting depth exceeded", p.Errors()[0].Message)
	assert.Equal(t, 0, p.depth)

	// The parse halts: only what came before the fault is kept.
	require.Len(t, program.Stmts, 1)
	assert.Equal(t, "print 1;", program.Stmts[0].String())

	// A custom limit
	_, c, err := parse(t, "((1));", WithMaxDepth(2))
	require.NotNil(t, err)
	assert.Equal(t, []string{"maximum nesting depth exceeded"}, c.Messages())

	parseOK(t, "((1));")
	program, _, err = parse(t, "((1));", WithMaxDepth(3))
	require.Nil(t, err)
	assert.Len(t, program.Stmts, 1)
}

func TestNestingWithinDefaultDepth(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"parentheses", nestedParens(400) + ";"},
		{"and chain", strings.TrimSuffix(strings.Repeat("a and ", 500), " and ") + ";"},
		{"assignment chain", strings.Repeat("a = ", 400) + "1;"},
		{"ternary chain", strings.Repeat("a ? b : ", 400) + "c;"},
		{"blocks", strings.Repeat("{", 400) + strings.Repeat("}", 400)},
		{"if chain", strings.Repeat("if (a) ", 400) + "print 1;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := parseOK(t, tt.input)
			assert.Len(t, program.Stmts, 1)
		})
	}
}

func TestMaxDepthReportedOnce(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"blocks", strings.Repeat("{", 600) + strings.Repeat("}", 600)},
		{"unclosed blocks", strings.Repeat("{", 600)},
		{"parentheses in blocks", strings.Repeat("{", 300) + nestedParens(300) + ";" + strings.Repeat("}", 300)},
		{"and chain", strings.Repeat("a and ", 600) + "a; print 1;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(scan(t, tt.input), WithReporter(&diag.Collector{}))
			program, err := p.Parse()
			require.NotNil(t, err)
			require.Len(t, p.Errors(), 1)
			assert.Equal(t, "maximum nesting depth exceeded", p.Errors()[0].Message)
			assert.Empty(t, program.Stmts)
			assert.Equal(t, 0, p.depth)
		})
	}
}

func TestMaxErrors(t *testing.T) {
	input := "print ; print ; print ; print 1;"

	program, c, err := parse(t, input, WithMaxErrors(2))
	require.NotNil(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Empty(t, program.Stmts)

	program, c, err = parse(t, input)
	require.NotNil(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Len(t, program.Stmts, 1)

	// The limit applies inside blocks too, and the abandoned block does not
	// report its closing brace.
	program, c, err = parse(t, "{ print ; print ; print ; print ; } print 1;", WithMaxErrors(2))
	require.NotNil(t, err)
	assert.Equal(t, []string{"Expect expression.", "Expect expression."}, c.Messages())
	assert.Empty(t, program.Stmts)

	program, c, err = parse(t, "{ { print ; } print ; print ; }", WithMaxErrors(2))
	require.NotNil(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Empty(t, program.Stmts)
}

func TestParseSource(t *testing.T) {
	c := &diag.Collector{}
	program, err := ParseSource("print 1 + 2;\nvar x = 3;", WithReporter(c))
	require.Nil(t, err)
	assert.Zero(t, c.Len())
	assert.Equal(t, "print (1 + 2);\nvar x = 3;", program.String())
}

func TestParseSourceLexerErrors(t *testing.T) {
	c := &diag.Collector{}
	program, err := ParseSource("print @;\nprint 2;", WithReporter(c))
	require.NotNil(t, err)

	// One scan error and one parse error, in that order.
	diags := c.Diagnostics()
	require.Len(t, diags, 2)
	assert.Equal(t, token.Type(token.ILLEGAL), diags[0].Token.Type)
	assert.Equal(t, "Unexpected character '@'.", diags[0].Message)
	assert.Equal(t, "Expect expression.", diags[1].Message)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.WrappedErrors(), 2)

	require.Len(t, program.Stmts, 1)
	assert.Equal(t, "print 2;", program.Stmts[0].String())
}
