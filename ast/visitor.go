package ast

import "fmt"

// ExprVisitor is an operation over expression nodes, with one method per
// node type. Adding an operation never requires changing the node types;
// adding a node type requires updating every visitor.
type ExprVisitor[R any] interface {
	VisitLiteral(x *Literal) R
	VisitGrouping(x *Grouping) R
	VisitUnary(x *Unary) R
	VisitBinary(x *Binary) R
	VisitLogical(x *Logical) R
	VisitTernary(x *Ternary) R
	VisitAssign(x *Assign) R
	VisitVariable(x *Variable) R
}

// StmtVisitor is an operation over statement nodes.
type StmtVisitor[R any] interface {
	VisitExprStmt(s *ExprStmt) R
	VisitPrint(s *Print) R
	VisitVar(s *Var) R
	VisitBlock(s *Block) R
	VisitIf(s *If) R
}

// VisitExpr dispatches x to the method of v matching its node type.
func VisitExpr[R any](v ExprVisitor[R], x Expr) R {
	switch n := x.(type) {
	case *Literal:
		return v.VisitLiteral(n)
	case *Grouping:
		return v.VisitGrouping(n)
	case *Unary:
		return v.VisitUnary(n)
	case *Binary:
		return v.VisitBinary(n)
	case *Logical:
		return v.VisitLogical(n)
	case *Ternary:
		return v.VisitTernary(n)
	case *Assign:
		return v.VisitAssign(n)
	case *Variable:
		return v.VisitVariable(n)
	}
	panic(fmt.Sprintf("ast: unexpected expression type %T", x))
}

// VisitStmt dispatches s to the method of v matching its node type.
func VisitStmt[R any](v StmtVisitor[R], s Stmt) R {
	switch n := s.(type) {
	case *ExprStmt:
		return v.VisitExprStmt(n)
	case *Print:
		return v.VisitPrint(n)
	case *Var:
		return v.VisitVar(n)
	case *Block:
		return v.VisitBlock(n)
	case *If:
		return v.VisitIf(n)
	}
	panic(fmt.Sprintf("ast: unexpected statement type %T", s))
}
