package ast

import "iter"

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range children(node) {
		Walk(v, child)
	}
}

// Inspect traverses an AST in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the AST rooted at root
// in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			for _, child := range children(n) {
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}

// children returns the non-nil direct children of node in source order.
func children(node Node) []Node {
	var out []Node
	add := func(n Node) {
		if n != nil {
			out = append(out, n)
		}
	}
	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Stmts {
			add(stmt)
		}

	// Statements
	case *ExprStmt:
		add(n.X)
	case *Print:
		add(n.X)
	case *Var:
		add(n.Init)
	case *Block:
		for _, stmt := range n.Stmts {
			add(stmt)
		}
	case *If:
		add(n.Cond)
		add(n.Then)
		add(n.Else)

	// Expressions
	case *Literal, *Variable:
		// No children
	case *Grouping:
		add(n.X)
	case *Unary:
		add(n.X)
	case *Binary:
		add(n.X)
		add(n.Y)
	case *Logical:
		add(n.X)
		add(n.Y)
	case *Ternary:
		add(n.Cond)
		add(n.IfTrue)
		add(n.IfFalse)
	case *Assign:
		add(n.Value)
	}
	return out
}
