package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/lox/ast"
	"github.com/deepnoodle-ai/lox/token"
)

// Tests for statement parsing (statements.go)
// - var, print, block, if and expression statements
// - Dangling else
// - Recovery from malformed statements

func TestVarStatements(t *testing.T) {
	tests := []struct {
		input    string
		name     string
		expected string
	}{
		{"var x = 5;", "x", "5"},
		{"var y = true;", "y", "true"},
		{"var foobar = y;", "foobar", "y"},
		{"var z = a = b;", "z", "a = b"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program := parseOK(t, tt.input)
			require.Len(t, program.Stmts, 1)
			stmt, ok := program.Stmts[0].(*ast.Var)
			require.True(t, ok)
			assert.Equal(t, tt.name, stmt.Name.Lexeme)
			assert.Equal(t, tt.expected, stmt.Init.String())
		})
	}
}

func TestVarWithoutInitializer(t *testing.T) {
	program := parseOK(t, "var a;")
	require.Len(t, program.Stmts, 1)
	stmt := program.Stmts[0].(*ast.Var)
	assert.Equal(t, "a", stmt.Name.Lexeme)
	assert.Nil(t, stmt.Init)
	assert.Equal(t, "var a;", stmt.String())
}

func TestPrintStatement(t *testing.T) {
	program := parseOK(t, "print 1 + 2;")
	require.Len(t, program.Stmts, 1)
	stmt, ok := program.Stmts[0].(*ast.Print)
	require.True(t, ok)
	assert.Equal(t, "(1 + 2)", stmt.X.String())
}

func TestExpressionStatement(t *testing.T) {
	program := parseOK(t, "a = 1;")
	require.Len(t, program.Stmts, 1)
	stmt, ok := program.Stmts[0].(*ast.ExprStmt)
	require.True(t, ok)
	assert.IsType(t, &ast.Assign{}, stmt.X)
}

func TestBlock(t *testing.T) {
	program := parseOK(t, "{ var a = 1; print a; { } }")
	require.Len(t, program.Stmts, 1)
	block, ok := program.Stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Stmts, 3)
	assert.IsType(t, &ast.Var{}, block.Stmts[0])
	assert.IsType(t, &ast.Print{}, block.Stmts[1])

	inner, ok := block.Stmts[2].(*ast.Block)
	require.True(t, ok)
	assert.Empty(t, inner.Stmts)
}

func TestIfStatement(t *testing.T) {
	program := parseOK(t, "if (x < y) print x;")
	require.Len(t, program.Stmts, 1)
	stmt, ok := program.Stmts[0].(*ast.If)
	require.True(t, ok)
	assert.Equal(t, "(x < y)", stmt.Cond.String())
	assert.Equal(t, "print x;", stmt.Then.String())
	assert.Nil(t, stmt.Else)
}

func TestIfElseStatement(t *testing.T) {
	program := parseOK(t, "if (x) { print 1; } else print 2;")
	require.Len(t, program.Stmts, 1)
	stmt, ok := program.Stmts[0].(*ast.If)
	require.True(t, ok)
	assert.IsType(t, &ast.Block{}, stmt.Then)
	require.NotNil(t, stmt.Else)
	assert.Equal(t, "print 2;", stmt.Else.String())
}

func TestDanglingElse(t *testing.T) {
	program := parseOK(t, "if (a) if (b) print 1; else print 2;")
	require.Len(t, program.Stmts, 1)
	outer := program.Stmts[0].(*ast.If)
	assert.Nil(t, outer.Else)

	inner, ok := outer.Then.(*ast.If)
	require.True(t, ok)
	require.NotNil(t, inner.Else)
	assert.Equal(t, "print 2;", inner.Else.String())
}

func TestVarIsNotAStatement(t *testing.T) {
	// A declaration cannot be the body of an if.
	_, c, err := parse(t, "if (a) var b = 1;")
	require.NotNil(t, err)
	assert.Equal(t, []string{"Expect expression."}, c.Messages())
}

func TestStatementErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
		at      string
	}{
		{"var 1 = 2;", "Expected variable name.", "1"},
		{"var a = 1", "Expect ';' after variable declaration.", ""},
		{"if a) print 1;", "Expect '(' after 'if'.", "a"},
		{"if (a print 1;", "Expect ')' after 'if' condition.", "print"},
		{"{ print 1;", "Expect '}' after block.", ""},
		{"print 1 print 2;", "Expect ';' after value.", "print"},
		{"x y;", "Expect ';' after expression.", "y"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, c, err := parse(t, tt.input)
			require.NotNil(t, err)
			diags := c.Diagnostics()
			require.NotEmpty(t, diags)
			assert.Equal(t, tt.message, diags[0].Message)
			assert.Equal(t, tt.at, diags[0].Token.Lexeme)
		})
	}
}

func TestRecoverFromMalformedVar(t *testing.T) {
	program, c, err := parse(t, "var a = 1 print a; print 2;")
	require.NotNil(t, err)
	assert.Equal(t, []string{"Expect ';' after variable declaration."}, c.Messages())
	require.Len(t, program.Stmts, 1)
	assert.Equal(t, "print 2;", program.Stmts[0].String())
}

func TestRecoverAtKeyword(t *testing.T) {
	program, c, err := parse(t, "if a) print 1;")
	require.NotNil(t, err)
	assert.Equal(t, 1, c.Len())
	require.Len(t, program.Stmts, 1)
	assert.Equal(t, "print 1;", program.Stmts[0].String())

	program, c, err = parse(t, "1 2 var x;")
	require.NotNil(t, err)
	assert.Equal(t, 1, c.Len())
	require.Len(t, program.Stmts, 1)
	assert.Equal(t, "var x;", program.Stmts[0].String())
}

func TestRecoverInsideBlock(t *testing.T) {
	program, c, err := parse(t, "{ print ; print 2; } print 3;")
	require.NotNil(t, err)
	assert.Equal(t, []string{"Expect expression."}, c.Messages())

	// The block survives without the broken statement.
	require.Len(t, program.Stmts, 2)
	block, ok := program.Stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Stmts, 1)
	assert.Equal(t, "print 2;", block.Stmts[0].String())
	assert.Equal(t, "print 3;", program.Stmts[1].String())
}

func TestSynchronize(t *testing.T) {
	for _, kw := range []token.Type{
		token.CLASS, token.FUN, token.VAR, token.FOR,
		token.IF, token.WHILE, token.PRINT, token.RETURN,
	} {
		t.Run(string(kw), func(t *testing.T) {
			p := New([]token.Token{
				token.New(token.IDENT, "a", 1),
				token.New(token.IDENT, "b", 1),
				token.New(kw, string(kw), 1),
				token.New(token.IDENT, "c", 1),
			})
			p.synchronize()
			assert.Equal(t, kw, p.peek().Type)
		})
	}
}

func TestSynchronizeAfterSemicolon(t *testing.T) {
	p := New([]token.Token{
		token.New(token.IDENT, "a", 1),
		token.New(token.SEMICOLON, ";", 1),
		token.New(token.IDENT, "b", 1),
	})
	p.synchronize()
	assert.Equal(t, "b", p.peek().Lexeme)
}

func TestSynchronizeAlwaysAdvances(t *testing.T) {
	// Even when the current token is a keyword, it is skipped.
	p := New([]token.Token{
		token.New(token.PRINT, "print", 1),
		token.New(token.IDENT, "a", 1),
		token.New(token.SEMICOLON, ";", 1),
	})
	p.synchronize()
	assert.True(t, p.isAtEnd())
}

func TestProgramString(t *testing.T) {
	input := "var a = 1;\n{ print a; }\nif (a) print 1; else print 2;\na = 2;"
	program := parseOK(t, input)
	assert.Equal(t, "var a = 1;\n{ print a; }\nif (a) print 1; else print 2;\na = 2;", program.String())
}
