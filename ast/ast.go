// Package ast defines the abstract syntax tree produced by the parser.
//
// The set of node types is closed: Expr and Stmt can only be implemented by
// the types in this package. Operations over the tree are added from outside
// by implementing ExprVisitor or StmtVisitor.
package ast

import (
	"bytes"
	"strings"
)

// Node represents a portion of the syntax tree.
type Node interface {
	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Expr represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node. Statements cause side effects but
// do not evaluate to a value.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root node: the ordered top-level statements of the input.
type Program struct {
	Stmts []Stmt
}

func (p *Program) String() string {
	var out bytes.Buffer
	for i, stmt := range p.Stmts {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(stmt.String())
	}
	return out.String()
}

// Exprs returns the top-level expressions of expression and print
// statements, in program order.
func (p *Program) Exprs() []Expr {
	var exprs []Expr
	for _, stmt := range p.Stmts {
		switch s := stmt.(type) {
		case *ExprStmt:
			exprs = append(exprs, s.X)
		case *Print:
			exprs = append(exprs, s.X)
		}
	}
	return exprs
}

func joinStmts(stmts []Stmt) string {
	parts := make([]string, 0, len(stmts))
	for _, s := range stmts {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, " ")
}
