// Package printer renders syntax trees as text.
package printer

import (
	"strings"

	"github.com/deepnoodle-ai/lox/ast"
)

// RPN renders expressions in postfix (reverse Polish) notation: operands
// left to right, then the operator. Groupings add no text of their own, so
// "(1 + 2) * (4 - 3)" renders as "1 2 + 4 3 - *".
type RPN struct{}

// Print returns the postfix form of x.
func (r RPN) Print(x ast.Expr) string {
	return ast.VisitExpr[string](r, x)
}

func (r RPN) VisitLiteral(x *ast.Literal) string {
	return ast.FormatValue(x.Value)
}

func (r RPN) VisitGrouping(x *ast.Grouping) string {
	return r.postfix("", x.X)
}

func (r RPN) VisitUnary(x *ast.Unary) string {
	return r.postfix(x.Op.Lexeme, x.X)
}

func (r RPN) VisitBinary(x *ast.Binary) string {
	return r.postfix(x.Op.Lexeme, x.X, x.Y)
}

func (r RPN) VisitLogical(x *ast.Logical) string {
	return r.postfix(x.Op.Lexeme, x.X, x.Y)
}

func (r RPN) VisitTernary(x *ast.Ternary) string {
	return r.postfix("?:", x.Cond, x.IfTrue, x.IfFalse)
}

func (r RPN) VisitAssign(x *ast.Assign) string {
	return x.Name.Lexeme + " " + r.postfix("=", x.Value)
}

func (r RPN) VisitVariable(x *ast.Variable) string {
	return x.Name.Lexeme
}

// postfix writes each operand followed by a space, then the operator. An
// empty operator leaves the operands bare.
func (r RPN) postfix(op string, operands ...ast.Expr) string {
	var b strings.Builder
	for _, x := range operands {
		b.WriteString(r.Print(x))
		if op != "" {
			b.WriteString(" ")
		}
	}
	b.WriteString(op)
	return b.String()
}
