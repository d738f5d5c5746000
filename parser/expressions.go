package parser

import (
	"github.com/deepnoodle-ai/lox/ast"
	"github.com/deepnoodle-ai/lox/token"
)

// Expression parsing methods for the Parser.
//
// Every method returns (nil, nil) when no expression starts at the current
// token. Callers that need an operand wrap the call in required, which turns
// the absence into a syntax error. A non-nil error has already been reported
// and means the enclosing declaration must be abandoned.

const (
	msgExpectExpression = "Expect expression."
	msgMissingLeft      = "Binary expressions should start with a left hand operand."
	msgInvalidTarget    = "Invalid assignment target."
)

type exprParseFn func() (ast.Expr, error)

// required runs parse and fails if it finds no expression.
func (p *Parser) required(parse exprParseFn) (ast.Expr, error) {
	x, err := parse()
	if err != nil {
		return nil, err
	}
	if x == nil {
		return nil, p.fail(p.peek(), msgExpectExpression)
	}
	return x, nil
}

// nested is required for an operand that sits one level deeper than the
// construct around it. Each such level counts once against the depth limit.
func (p *Parser) nested(parse exprParseFn) (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	return p.required(parse)
}

func (p *Parser) expression() (ast.Expr, error) {
	return p.required(p.assignment)
}

// assignment is right-associative: "a = b = c" assigns c to b, then to a.
func (p *Parser) assignment() (ast.Expr, error) {
	x, err := p.comma()
	if err != nil || x == nil {
		return x, err
	}
	if p.match(token.ASSIGN) {
		equals := p.previous()
		value, err := p.nested(p.assignment)
		if err != nil {
			return nil, err
		}
		if v, ok := x.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}, nil
		}
		// Reported but not fatal: the left side is kept and parsing goes on.
		p.report(equals, msgInvalidTarget)
	}
	return x, nil
}

// comma evaluates each operand in turn and keeps only the last one.
func (p *Parser) comma() (ast.Expr, error) {
	x, err := p.ternary()
	if err != nil || x == nil {
		return x, err
	}
	for p.match(token.COMMA) {
		if x, err = p.required(p.ternary); err != nil {
			return nil, err
		}
	}
	return x, nil
}

// ternary nests to the right through its false branch, so
// "a ? b : c ? d : e" is "a ? b : (c ? d : e)". The true branch is a full
// expression.
func (p *Parser) ternary() (ast.Expr, error) {
	cond, err := p.or()
	if err != nil || cond == nil {
		return cond, err
	}
	if !p.match(token.QUESTION) {
		return cond, nil
	}
	ifTrue, err := p.nested(p.assignment)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.COLON, "Expect ':' after expression."); err != nil {
		return nil, err
	}
	ifFalse, err := p.nested(p.ternary)
	if err != nil {
		return nil, err
	}
	return &ast.Ternary{Cond: cond, IfTrue: ifTrue, IfFalse: ifFalse}, nil
}

func (p *Parser) or() (ast.Expr, error) {
	x, err := p.and()
	if err != nil || x == nil {
		return x, err
	}
	for p.match(token.OR) {
		op := p.previous()
		y, err := p.required(p.and)
		if err != nil {
			return nil, err
		}
		x = &ast.Logical{X: x, Op: op, Y: y}
	}
	return x, nil
}

// and takes its right operand from and itself rather than equality, so a
// chain "a and b and c" leans right: "a and (b and c)".
func (p *Parser) and() (ast.Expr, error) {
	x, err := p.equality()
	if err != nil || x == nil {
		return x, err
	}
	for p.match(token.AND) {
		op := p.previous()
		y, err := p.nested(p.and)
		if err != nil {
			return nil, err
		}
		x = &ast.Logical{X: x, Op: op, Y: y}
	}
	return x, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.binary(p.comparison, equalityOps)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.binary(p.term, comparisonOps)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.binary(p.factor, termOps)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.binary(p.unary, factorOps)
}

// binary parses a left-associative chain of operands from next joined by
// any of ops. If the chain starts with one of ops, the left operand is
// missing: the operator and its right operand are consumed and discarded
// before the error is raised, so recovery starts after the whole construct.
func (p *Parser) binary(next exprParseFn, ops []token.Type) (ast.Expr, error) {
	x, err := next()
	if err != nil {
		return nil, err
	}
	if x == nil {
		if !p.match(ops...) {
			return nil, nil
		}
		op := p.previous()
		if _, err := next(); err != nil {
			return nil, err
		}
		return nil, p.fail(op, msgMissingLeft)
	}
	for p.match(ops...) {
		op := p.previous()
		y, err := p.required(next)
		if err != nil {
			return nil, err
		}
		x = &ast.Binary{X: x, Op: op, Y: y}
	}
	return x, nil
}

// unary applies at most one prefix operator, to a primary expression. When
// the operand is missing no node is produced.
func (p *Parser) unary() (ast.Expr, error) {
	if !p.match(unaryOps...) {
		return p.primary()
	}
	op := p.previous()
	x, err := p.primary()
	if err != nil || x == nil {
		return nil, err
	}
	return &ast.Unary{Op: op, X: x}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: false}, nil
	case p.match(token.TRUE):
		return &ast.Literal{Value: true}, nil
	case p.match(token.NIL):
		return &ast.Literal{Value: nil}, nil
	case p.match(token.NUMBER, token.STRING):
		return &ast.Literal{Value: p.previous().Literal}, nil
	case p.match(token.LPAREN):
		x, err := p.nested(p.assignment)
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RPAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{X: x}, nil
	case p.match(token.IDENT):
		return &ast.Variable{Name: p.previous()}, nil
	}
	return nil, nil
}
