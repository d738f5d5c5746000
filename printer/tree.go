package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/deepnoodle-ai/lox/ast"
)

// TreeNode is one node of a rendered syntax tree. It marshals to JSON
// directly.
type TreeNode struct {
	Type     string      `json:"type"`
	Value    any         `json:"value,omitempty"`
	Children []*TreeNode `json:"children,omitempty"`
}

// Tree converts syntax trees to TreeNode form.
type Tree struct{}

// Program returns the tree for a whole program.
func (t Tree) Program(program *ast.Program) *TreeNode {
	root := &TreeNode{Type: "Program"}
	for _, stmt := range program.Stmts {
		root.Children = append(root.Children, t.Stmt(stmt))
	}
	return root
}

// Stmt returns the tree for a statement.
func (t Tree) Stmt(s ast.Stmt) *TreeNode {
	return ast.VisitStmt[*TreeNode](t, s)
}

// Expr returns the tree for an expression.
func (t Tree) Expr(x ast.Expr) *TreeNode {
	return ast.VisitExpr[*TreeNode](t, x)
}

func (t Tree) VisitExprStmt(s *ast.ExprStmt) *TreeNode {
	return &TreeNode{Type: "Expression", Children: []*TreeNode{t.Expr(s.X)}}
}

func (t Tree) VisitPrint(s *ast.Print) *TreeNode {
	return &TreeNode{Type: "Print", Children: []*TreeNode{t.Expr(s.X)}}
}

func (t Tree) VisitVar(s *ast.Var) *TreeNode {
	node := &TreeNode{Type: "Var", Value: s.Name.Lexeme}
	if s.Init != nil {
		node.Children = []*TreeNode{t.Expr(s.Init)}
	}
	return node
}

func (t Tree) VisitBlock(s *ast.Block) *TreeNode {
	node := &TreeNode{Type: "Block"}
	for _, stmt := range s.Stmts {
		node.Children = append(node.Children, t.Stmt(stmt))
	}
	return node
}

func (t Tree) VisitIf(s *ast.If) *TreeNode {
	node := &TreeNode{Type: "If", Children: []*TreeNode{t.Expr(s.Cond), t.Stmt(s.Then)}}
	if s.Else != nil {
		node.Children = append(node.Children, t.Stmt(s.Else))
	}
	return node
}

func (t Tree) VisitLiteral(x *ast.Literal) *TreeNode {
	if x.Value == nil {
		return &TreeNode{Type: "Nil"}
	}
	return &TreeNode{Type: "Literal", Value: x.Value}
}

func (t Tree) VisitGrouping(x *ast.Grouping) *TreeNode {
	return &TreeNode{Type: "Grouping", Children: []*TreeNode{t.Expr(x.X)}}
}

func (t Tree) VisitUnary(x *ast.Unary) *TreeNode {
	return &TreeNode{Type: "Unary", Value: x.Op.Lexeme, Children: []*TreeNode{t.Expr(x.X)}}
}

func (t Tree) VisitBinary(x *ast.Binary) *TreeNode {
	return &TreeNode{Type: "Binary", Value: x.Op.Lexeme, Children: []*TreeNode{t.Expr(x.X), t.Expr(x.Y)}}
}

func (t Tree) VisitLogical(x *ast.Logical) *TreeNode {
	return &TreeNode{Type: "Logical", Value: x.Op.Lexeme, Children: []*TreeNode{t.Expr(x.X), t.Expr(x.Y)}}
}

func (t Tree) VisitTernary(x *ast.Ternary) *TreeNode {
	return &TreeNode{
		Type:     "Ternary",
		Children: []*TreeNode{t.Expr(x.Cond), t.Expr(x.IfTrue), t.Expr(x.IfFalse)},
	}
}

func (t Tree) VisitAssign(x *ast.Assign) *TreeNode {
	return &TreeNode{Type: "Assign", Value: x.Name.Lexeme, Children: []*TreeNode{t.Expr(x.Value)}}
}

func (t Tree) VisitVariable(x *ast.Variable) *TreeNode {
	return &TreeNode{Type: "Variable", Value: x.Name.Lexeme}
}

// WriteText writes the tree as indented text with box-drawing connectors.
func (n *TreeNode) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintln(w, n.label()); err != nil {
		return err
	}
	return n.writeChildren(w, "")
}

func (n *TreeNode) writeChildren(w io.Writer, indent string) error {
	for i, child := range n.Children {
		connector, childIndent := "├─ ", indent+"│  "
		if i == len(n.Children)-1 {
			connector, childIndent = "└─ ", indent+"   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, connector, child.label()); err != nil {
			return err
		}
		if err := child.writeChildren(w, childIndent); err != nil {
			return err
		}
	}
	return nil
}

// String returns the indented text form of the tree.
func (n *TreeNode) String() string {
	var b strings.Builder
	_ = n.WriteText(&b)
	return b.String()
}

func (n *TreeNode) label() string {
	if n.Value == nil {
		return n.Type
	}
	if s, ok := n.Value.(string); ok && n.Type == "Literal" {
		return fmt.Sprintf("%s %q", n.Type, s)
	}
	return fmt.Sprintf("%s %s", n.Type, ast.FormatValue(n.Value))
}
