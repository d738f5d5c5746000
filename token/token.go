// Package token defines language keywords and tokens produced when scanning
// source code.
package token

import (
	"fmt"
	"sort"
)

// Type describes the type of a token as a string.
type Type string

// Token represents one lexical unit of the input. Tokens are immutable once
// produced; the parser only ever reads them.
type Token struct {
	// Type is the lexical category of the token.
	Type Type

	// Lexeme is the raw source text of the token.
	Lexeme string

	// Literal is the decoded value for NUMBER (float64) and STRING (string)
	// tokens. It is nil for every other token.
	Literal any

	// Line is the 1-indexed source line the token starts on.
	Line int

	// Column is the 1-indexed byte offset of the token within its line, or
	// zero when unknown.
	Column int
}

// String renders the token as "type | lexeme | literal".
func (t Token) String() string {
	return fmt.Sprintf("%s | %s | %v", t.Type, t.Lexeme, t.Literal)
}

// New returns a token without a decoded literal value.
func New(typ Type, lexeme string, line int) Token {
	return Token{Type: typ, Lexeme: lexeme, Line: line}
}

// Token types
const (
	// Single-character punctuation
	LPAREN    = "("
	RPAREN    = ")"
	LBRACE    = "{"
	RBRACE    = "}"
	COMMA     = ","
	PERIOD    = "."
	MINUS     = "-"
	PLUS      = "+"
	SEMICOLON = ";"
	SLASH     = "/"
	ASTERISK  = "*"
	QUESTION  = "?"
	COLON     = ":"

	// One or two character operators
	BANG      = "!"
	NOT_EQ    = "!="
	ASSIGN    = "="
	EQ        = "=="
	GT        = ">"
	GT_EQUALS = ">="
	LT        = "<"
	LT_EQUALS = "<="

	// Literals
	IDENT  = "IDENT"
	STRING = "STRING"
	NUMBER = "NUMBER"

	// Keywords
	AND    = "AND"
	CLASS  = "CLASS"
	ELSE   = "ELSE"
	FALSE  = "FALSE"
	FUN    = "FUN"
	FOR    = "FOR"
	IF     = "IF"
	NIL    = "NIL"
	OR     = "OR"
	PRINT  = "PRINT"
	RETURN = "RETURN"
	SUPER  = "SUPER"
	THIS   = "THIS"
	TRUE   = "TRUE"
	VAR    = "VAR"
	WHILE  = "WHILE"

	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"
)

// Reserved keywords
var keywords = map[string]Type{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// LookupIdentifier returns the keyword type for the given identifier, or
// IDENT if it is not a reserved word.
func LookupIdentifier(identifier string) Type {
	if tok, ok := keywords[identifier]; ok {
		return tok
	}
	return IDENT
}

// Keywords returns the reserved words in alphabetical order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for word := range keywords {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// IsDeclarationKeyword reports whether t begins a declaration or statement.
// The parser resynchronizes on these after a syntax error.
func IsDeclarationKeyword(t Type) bool {
	switch t {
	case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
		return true
	}
	return false
}
