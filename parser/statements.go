package parser

import (
	"github.com/deepnoodle-ai/lox/ast"
	"github.com/deepnoodle-ai/lox/token"
)

// Statement parsing methods for the Parser.
//
//	program     -> declaration* EOF
//	declaration -> varDecl | statement
//	varDecl     -> "var" IDENT ( "=" expression )? ";"
//	statement   -> ifStmt | printStmt | block | exprStmt
//	ifStmt      -> "if" "(" expression ")" statement ( "else" statement )?
//	printStmt   -> "print" expression ";"
//	block       -> "{" declaration* "}"
//	exprStmt    -> expression ";"

// declaration is the only place syntax errors are recovered from. When the
// declaration fails the parser resynchronizes and nil is returned in place of
// a statement.
func (p *Parser) declaration() ast.Stmt {
	var (
		stmt ast.Stmt
		err  error
	)
	if p.match(token.VAR) {
		stmt, err = p.varDeclaration()
	} else {
		stmt, err = p.statement()
	}
	if err != nil {
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.IDENT, "Expected variable name.")
	if err != nil {
		return nil, err
	}
	var init ast.Expr
	if p.match(token.ASSIGN) {
		if init, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.Var{Name: name, Init: init}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch {
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.LBRACE):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.Block{Stmts: stmts}, nil
	}
	return p.expressionStatement()
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LPAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RPAREN, "Expect ')' after 'if' condition."); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var els ast.Stmt
	if p.match(token.ELSE) {
		if els, err = p.statement(); err != nil {
			return nil, err
		}
	}
	return &ast.If{Cond: cond, Then: then, Else: els}, nil
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	x, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.Print{X: x}, nil
}

// block parses the declarations up to the closing brace. A declaration that
// fails inside the block is dropped without abandoning the block itself.
// Once the parser has stopped, the block is abandoned without reporting its
// missing brace.
func (p *Parser) block() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.isAtEnd() && !p.stopped() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if p.stopped() {
		return nil, errStopped
	}
	if _, err := p.consume(token.RBRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	x, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{X: x}, nil
}
