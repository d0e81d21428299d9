package parser

import (
	"assay/internal/ast"
	"assay/internal/token"
)

// Binary operator precedence; larger binds tighter. All operators in this
// grammar are left-associative.
const (
	precLogicalOr  = 1 // ||
	precLogicalAnd = 2 // &&
	precBitOr      = 3 // |
	precBitAnd     = 4 // &
	precEquality   = 5 // == != === !==
	precComparison = 6 // < <= > >=
)

// binaryPrec returns the precedence for kind, or -1 when kind is not a
// binary operator.
func binaryPrec(kind token.Kind) int {
	switch kind {
	case token.OrOr:
		return precLogicalOr
	case token.AndAnd:
		return precLogicalAnd
	case token.Pipe:
		return precBitOr
	case token.Amp:
		return precBitAnd
	case token.EqEq, token.BangEq, token.EqEqEq, token.BangEqEq:
		return precEquality
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison
	default:
		return -1
	}
}

func tokenKindToBinaryOp(kind token.Kind) ast.BinaryOp {
	switch kind {
	case token.EqEq:
		return ast.BinEq
	case token.BangEq:
		return ast.BinNe
	case token.EqEqEq:
		return ast.BinTripleEq
	case token.BangEqEq:
		return ast.BinTripleNe
	case token.Lt:
		return ast.BinLt
	case token.LtEq:
		return ast.BinLe
	case token.Gt:
		return ast.BinGt
	case token.GtEq:
		return ast.BinGe
	case token.AndAnd:
		return ast.BinLogicalAnd
	case token.OrOr:
		return ast.BinLogicalOr
	case token.Amp:
		return ast.BinAnd
	case token.Pipe:
		return ast.BinOr
	default:
		panic("not a binary operator: " + kind.String())
	}
}
