package ast

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/deepnoodle-ai/lox/token"
)

// Literal is a constant value: a float64, string, bool, or nil.
type Literal struct {
	Value any
}

func (x *Literal) exprNode() {}

func (x *Literal) String() string {
	switch v := x.Value.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	default:
		return FormatValue(v)
	}
}

// Grouping is a parenthesized expression. It is kept distinct from its inner
// expression so printers can reproduce the explicit grouping.
type Grouping struct {
	X Expr
}

func (x *Grouping) exprNode() {}

func (x *Grouping) String() string {
	return "(" + x.X.String() + ")"
}

// Unary is a prefix operator expression such as "!ok" or "-x".
type Unary struct {
	Op token.Token // "!" or "-"
	X  Expr
}

func (x *Unary) exprNode() {}

func (x *Unary) String() string {
	return x.Op.Lexeme + x.X.String()
}

// Binary is an arithmetic, comparison or equality expression.
type Binary struct {
	X  Expr        // left operand
	Op token.Token // operator
	Y  Expr        // right operand
}

func (x *Binary) exprNode() {}

func (x *Binary) String() string {
	return infixString(x.X, x.Op, x.Y)
}

// Logical is an "and" or "or" expression. Its right operand is only
// evaluated when the left operand does not decide the result.
type Logical struct {
	X  Expr
	Op token.Token // "and" or "or"
	Y  Expr
}

func (x *Logical) exprNode() {}

func (x *Logical) String() string {
	return infixString(x.X, x.Op, x.Y)
}

// Ternary is a conditional expression "cond ? a : b".
type Ternary struct {
	Cond    Expr
	IfTrue  Expr
	IfFalse Expr
}

func (x *Ternary) exprNode() {}

func (x *Ternary) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.Cond.String())
	out.WriteString(" ? ")
	out.WriteString(x.IfTrue.String())
	out.WriteString(" : ")
	out.WriteString(x.IfFalse.String())
	out.WriteString(")")
	return out.String()
}

// Assign stores a value in a previously declared variable.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (x *Assign) exprNode() {}

func (x *Assign) String() string {
	return x.Name.Lexeme + " = " + x.Value.String()
}

// Variable refers to a variable by name.
type Variable struct {
	Name token.Token
}

func (x *Variable) exprNode() {}

func (x *Variable) String() string { return x.Name.Lexeme }

// FormatValue renders a literal value in its natural text form. Numbers use
// the shortest representation that round-trips, so 1.0 renders as "1".
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func infixString(left Expr, op token.Token, right Expr) string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(left.String())
	out.WriteString(" " + op.Lexeme + " ")
	out.WriteString(right.String())
	out.WriteString(")")
	return out.String()
}
