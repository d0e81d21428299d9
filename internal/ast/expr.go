package ast

import (
	"assay/internal/source"
)

// ExprKind tags the variant of an expression node.
type ExprKind uint8

const (
	// ExprIdent is a bound-variable reference.
	ExprIdent ExprKind = iota
	// ExprLit is a literal value.
	ExprLit
	// ExprUnaryNot is the '!' prefix.
	ExprUnaryNot
	// ExprBinary is a comparison, equality, or logical combinator.
	ExprBinary
	// ExprCall is a function or method invocation.
	ExprCall
	// ExprSelect is a property access on a receiver.
	ExprSelect
	// ExprGroup is a parenthesized expression; span-transparent, no record.
	ExprGroup
	// ExprSeq is a bracketed sequence literal.
	ExprSeq
	// ExprBlock is an opaque multi-statement block evaluated as a unit.
	ExprBlock
)

func (k ExprKind) String() string {
	switch k {
	case ExprIdent:
		return "Ident"
	case ExprLit:
		return "Lit"
	case ExprUnaryNot:
		return "Not"
	case ExprBinary:
		return "Binary"
	case ExprCall:
		return "Call"
	case ExprSelect:
		return "Select"
	case ExprGroup:
		return "Group"
	case ExprSeq:
		return "Seq"
	case ExprBlock:
		return "Block"
	default:
		return "Unknown"
	}
}

// Expr is the per-node header; the kind-specific data lives in a payload
// arena addressed by Payload.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprLitKind tags the literal flavor; the raw text is decoded at
// evaluation time.
type ExprLitKind uint8

const (
	LitBool ExprLitKind = iota
	LitInt
	LitFloat
	LitString
)

// BlockThunk evaluates an opaque block as a unit. The result is converted to
// an engine value by the evaluator; the error propagates unchanged.
type BlockThunk func() (any, error)

type ExprIdentData struct {
	Name source.StringID
}

type ExprLiteralData struct {
	Kind ExprLitKind
	Text source.StringID
}

type ExprUnaryData struct {
	Operand ExprID
}

type ExprBinaryData struct {
	Op     BinaryOp
	OpSpan source.Span // span of the operator token; anchors the combinator's own record
	Left   ExprID
	Right  ExprID
}

type ExprCallData struct {
	Target ExprID // ExprIdent (env function) or ExprSelect (method on receiver)
	Args   []ExprID
}

type ExprSelectData struct {
	Target    ExprID
	Field     source.StringID
	FieldSpan source.Span // span of the field name; anchors the call/property result
}

type ExprGroupData struct {
	Inner ExprID
}

type ExprSeqData struct {
	Elems []ExprID
}

type ExprBlockData struct {
	Text  source.StringID
	Thunk BlockThunk // nil for parser-built blocks; the env supplies evaluation then
}
