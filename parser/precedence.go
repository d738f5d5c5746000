package parser

import "github.com/deepnoodle-ai/lox/token"

// Expression grammar, lowest to highest precedence. Each level parses the
// next one for its operands.
//
//	expression -> assignment
//	assignment -> comma ( "=" assignment )?
//	comma      -> ternary ( "," ternary )*
//	ternary    -> or ( "?" expression ":" ternary )?
//	or         -> and ( "or" and )*
//	and        -> equality ( "and" and )*
//	equality   -> comparison ( ( "!=" | "==" ) comparison )*
//	comparison -> term ( ( ">" | ">=" | "<" | "<=" ) term )*
//	term       -> factor ( ( "-" | "+" ) factor )*
//	factor     -> unary ( ( "/" | "*" ) unary )*
//	unary      -> ( "!" | "-" ) primary | primary
//	primary    -> "true" | "false" | "nil" | NUMBER | STRING
//	            | "(" expression ")" | IDENT

// Operators for each binary precedence level.
var (
	equalityOps   = []token.Type{token.NOT_EQ, token.EQ}
	comparisonOps = []token.Type{token.GT, token.GT_EQUALS, token.LT, token.LT_EQUALS}
	termOps       = []token.Type{token.MINUS, token.PLUS}
	factorOps     = []token.Type{token.SLASH, token.ASTERISK}
	unaryOps      = []token.Type{token.BANG, token.MINUS}
)
