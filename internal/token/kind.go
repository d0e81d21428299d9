package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// StringLit represents a string literal token.
	StringLit

	// EqEq represents the '==' operator.
	EqEq // ==
	// BangEq represents the '!=' operator.
	BangEq // !=
	// EqEqEq represents the '===' operator routed through the pluggable equality.
	EqEqEq // ===
	// BangEqEq represents the '!==' operator routed through the pluggable equality.
	BangEqEq // !==
	// Lt represents the '<' operator.
	Lt // <
	// LtEq represents the '<=' operator.
	LtEq // <=
	// Gt represents the '>' operator.
	Gt // >
	// GtEq represents the '>=' operator.
	GtEq // >=
	// AndAnd represents the short-circuit '&&' operator.
	AndAnd // &&
	// OrOr represents the short-circuit '||' operator.
	OrOr // ||
	// Amp represents the strict '&' operator.
	Amp // &
	// Pipe represents the strict '|' operator.
	Pipe // |
	// Bang represents the '!' prefix operator.
	Bang // !

	// Dot represents the '.' selector.
	Dot // .
	// Comma represents the ',' separator.
	Comma // ,
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// Semicolon represents ';'.
	Semicolon // ;
)

// String returns a stable name for the kind, used in diagnostics and dumps.
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case KwTrue:
		return "true"
	case KwFalse:
		return "false"
	case IntLit:
		return "IntLit"
	case FloatLit:
		return "FloatLit"
	case StringLit:
		return "StringLit"
	case EqEq:
		return "=="
	case BangEq:
		return "!="
	case EqEqEq:
		return "==="
	case BangEqEq:
		return "!=="
	case Lt:
		return "<"
	case LtEq:
		return "<="
	case Gt:
		return ">"
	case GtEq:
		return ">="
	case AndAnd:
		return "&&"
	case OrOr:
		return "||"
	case Amp:
		return "&"
	case Pipe:
		return "|"
	case Bang:
		return "!"
	case Dot:
		return "."
	case Comma:
		return ","
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case Semicolon:
		return ";"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}
