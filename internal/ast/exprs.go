package ast

import (
	"assay/internal/source"
)

// Exprs owns every expression node of one parsed assertion plus the interner
// for identifier and literal text. It doubles as the builder API: callers
// that construct trees directly use the New* methods.
type Exprs struct {
	Arena    *Arena[Expr]
	Idents   *Arena[ExprIdentData]
	Literals *Arena[ExprLiteralData]
	Unaries  *Arena[ExprUnaryData]
	Binaries *Arena[ExprBinaryData]
	Calls    *Arena[ExprCallData]
	Selects  *Arena[ExprSelectData]
	Groups   *Arena[ExprGroupData]
	Seqs     *Arena[ExprSeqData]
	Blocks   *Arena[ExprBlockData]
	Strings  *source.Interner
}

// NewExprs creates an Exprs store; capHint sizes the arenas (0 picks a small
// default — assertion expressions are tiny).
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 4
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Idents:   NewArena[ExprIdentData](capHint),
		Literals: NewArena[ExprLiteralData](capHint),
		Unaries:  NewArena[ExprUnaryData](capHint),
		Binaries: NewArena[ExprBinaryData](capHint),
		Calls:    NewArena[ExprCallData](capHint),
		Selects:  NewArena[ExprSelectData](capHint),
		Groups:   NewArena[ExprGroupData](capHint),
		Seqs:     NewArena[ExprSeqData](capHint),
		Blocks:   NewArena[ExprBlockData](capHint),
		Strings:  source.NewInterner(),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression header for the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewIdent creates an identifier node.
func (e *Exprs) NewIdent(span source.Span, name string) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: e.Strings.Intern(name)})
	return e.new(ExprIdent, span, PayloadID(payload))
}

// Ident returns the identifier data for id.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewLiteral creates a literal node holding the raw source text.
func (e *Exprs) NewLiteral(span source.Span, kind ExprLitKind, text string) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{Kind: kind, Text: e.Strings.Intern(text)})
	return e.new(ExprLit, span, PayloadID(payload))
}

// Literal returns the literal data for id.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewNot creates a '!' node.
func (e *Exprs) NewNot(span source.Span, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Operand: operand})
	return e.new(ExprUnaryNot, span, PayloadID(payload))
}

// Not returns the unary data for id.
func (e *Exprs) Not(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnaryNot {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewBinary creates a binary node; opSpan is the operator token's span.
func (e *Exprs) NewBinary(span source.Span, op BinaryOp, opSpan source.Span, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, OpSpan: opSpan, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary data for id.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewCall creates a call node.
func (e *Exprs) NewCall(span source.Span, target ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{
		Target: target,
		Args:   append([]ExprID(nil), args...),
	})
	return e.new(ExprCall, span, PayloadID(payload))
}

// Call returns the call data for id.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewSelect creates a property-access node; fieldSpan is the field name's span.
func (e *Exprs) NewSelect(span source.Span, target ExprID, field string, fieldSpan source.Span) ExprID {
	payload := e.Selects.Allocate(ExprSelectData{Target: target, Field: e.Strings.Intern(field), FieldSpan: fieldSpan})
	return e.new(ExprSelect, span, PayloadID(payload))
}

// Select returns the select data for id.
func (e *Exprs) Select(id ExprID) (*ExprSelectData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprSelect {
		return nil, false
	}
	return e.Selects.Get(uint32(expr.Payload)), true
}

// NewGroup creates a parenthesized node around inner.
func (e *Exprs) NewGroup(span source.Span, inner ExprID) ExprID {
	payload := e.Groups.Allocate(ExprGroupData{Inner: inner})
	return e.new(ExprGroup, span, PayloadID(payload))
}

// Group returns the group data for id.
func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprGroup {
		return nil, false
	}
	return e.Groups.Get(uint32(expr.Payload)), true
}

// NewSeq creates a sequence-literal node.
func (e *Exprs) NewSeq(span source.Span, elems []ExprID) ExprID {
	payload := e.Seqs.Allocate(ExprSeqData{Elems: append([]ExprID(nil), elems...)})
	return e.new(ExprSeq, span, PayloadID(payload))
}

// Seq returns the sequence data for id.
func (e *Exprs) Seq(id ExprID) (*ExprSeqData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprSeq {
		return nil, false
	}
	return e.Seqs.Get(uint32(expr.Payload)), true
}

// NewBlock creates an opaque block node. Parser-built blocks pass a nil
// thunk and rely on the environment's block evaluator.
func (e *Exprs) NewBlock(span source.Span, text string, thunk BlockThunk) ExprID {
	payload := e.Blocks.Allocate(ExprBlockData{Text: e.Strings.Intern(text), Thunk: thunk})
	return e.new(ExprBlock, span, PayloadID(payload))
}

// Block returns the block data for id.
func (e *Exprs) Block(id ExprID) (*ExprBlockData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBlock {
		return nil, false
	}
	return e.Blocks.Get(uint32(expr.Payload)), true
}
