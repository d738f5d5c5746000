package ast

import (
	"bytes"

	"github.com/deepnoodle-ai/lox/token"
)

// ExprStmt is an expression evaluated for its side effects. The value is
// discarded.
type ExprStmt struct {
	X Expr
}

func (s *ExprStmt) stmtNode() {}

func (s *ExprStmt) String() string { return s.X.String() + ";" }

// Print evaluates an expression and outputs the result.
type Print struct {
	X Expr
}

func (s *Print) stmtNode() {}

func (s *Print) String() string { return "print " + s.X.String() + ";" }

// Var declares a variable. Init is nil when the declaration has no
// initializer.
type Var struct {
	Name token.Token
	Init Expr
}

func (s *Var) stmtNode() {}

func (s *Var) String() string {
	var out bytes.Buffer
	out.WriteString("var ")
	out.WriteString(s.Name.Lexeme)
	if s.Init != nil {
		out.WriteString(" = ")
		out.WriteString(s.Init.String())
	}
	out.WriteString(";")
	return out.String()
}

// Block is a braced sequence of statements forming a nested scope.
type Block struct {
	Stmts []Stmt
}

func (s *Block) stmtNode() {}

func (s *Block) String() string {
	if len(s.Stmts) == 0 {
		return "{ }"
	}
	return "{ " + joinStmts(s.Stmts) + " }"
}

// If executes Then when Cond is truthy, otherwise Else. Else is nil when
// there is no else branch.
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

func (s *If) stmtNode() {}

func (s *If) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(s.Cond.String())
	out.WriteString(") ")
	out.WriteString(s.Then.String())
	if s.Else != nil {
		out.WriteString(" else ")
		out.WriteString(s.Else.String())
	}
	return out.String()
}
