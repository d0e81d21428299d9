package token

import (
	"assay/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsOperator reports whether the token is a unary or binary operator.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case EqEq, BangEq, EqEqEq, BangEqEq, Lt, LtEq, Gt, GtEq,
		AndAnd, OrOr, Amp, Pipe, Bang:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
