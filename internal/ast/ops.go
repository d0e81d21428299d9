package ast

import "fmt"

// BinaryOp identifies a binary combinator.
type BinaryOp uint8

const (
	// BinEq is '==' (native equality).
	BinEq BinaryOp = iota
	// BinNe is '!='.
	BinNe
	// BinTripleEq is '===' (pluggable equality).
	BinTripleEq
	// BinTripleNe is '!=='.
	BinTripleNe
	// BinLt is '<'.
	BinLt
	// BinLe is '<='.
	BinLe
	// BinGt is '>'.
	BinGt
	// BinGe is '>='.
	BinGe
	// BinLogicalAnd is short-circuit '&&'.
	BinLogicalAnd
	// BinLogicalOr is short-circuit '||'.
	BinLogicalOr
	// BinAnd is strict '&'.
	BinAnd
	// BinOr is strict '|'.
	BinOr
)

func (op BinaryOp) String() string {
	switch op {
	case BinEq:
		return "=="
	case BinNe:
		return "!="
	case BinTripleEq:
		return "==="
	case BinTripleNe:
		return "!=="
	case BinLt:
		return "<"
	case BinLe:
		return "<="
	case BinGt:
		return ">"
	case BinGe:
		return ">="
	case BinLogicalAnd:
		return "&&"
	case BinLogicalOr:
		return "||"
	case BinAnd:
		return "&"
	case BinOr:
		return "|"
	default:
		return fmt.Sprintf("BinaryOp(%d)", op)
	}
}

// ShortCircuit reports whether the operator may skip its right operand.
func (op BinaryOp) ShortCircuit() bool {
	return op == BinLogicalAnd || op == BinLogicalOr
}

// Logical reports whether the operator combines booleans (short-circuit or strict).
func (op BinaryOp) Logical() bool {
	switch op {
	case BinLogicalAnd, BinLogicalOr, BinAnd, BinOr:
		return true
	default:
		return false
	}
}

// Comparison reports whether the operator yields a boolean from two operand
// values (equality and ordering).
func (op BinaryOp) Comparison() bool {
	switch op {
	case BinEq, BinNe, BinTripleEq, BinTripleNe, BinLt, BinLe, BinGt, BinGe:
		return true
	default:
		return false
	}
}
