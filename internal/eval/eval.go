package eval

import (
	"fmt"

	"assay/internal/ast"
	"assay/internal/source"
)

// Evaluator performs one depth-first pass over an expression tree. It owns
// its record buffer exclusively for the duration of one Eval call, so
// concurrent assertions on separate Evaluators share nothing.
type Evaluator struct {
	exprs   *ast.Exprs
	env     *Env
	anchor  AnchorFunc
	equal   EqualityFunc
	records []Record
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithAnchor supplies the span-to-column mapping. Without it no records are
// produced and callers fall back to summary-only messages.
func WithAnchor(anchor AnchorFunc) Option {
	return func(ev *Evaluator) { ev.anchor = anchor }
}

// WithEquality replaces the '===' / '!==' collaborator.
func WithEquality(eq EqualityFunc) Option {
	return func(ev *Evaluator) { ev.equal = eq }
}

// New creates an evaluator over exprs bound to env.
func New(exprs *ast.Exprs, env *Env, opts ...Option) *Evaluator {
	ev := &Evaluator{
		exprs: exprs,
		env:   env,
		equal: NativeEqual,
	}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

// Records returns the records accumulated so far, in visit order.
func (ev *Evaluator) Records() []Record {
	return ev.records
}

// record appends a record for id at the column of sp, if sp has one.
func (ev *Evaluator) record(id ast.ExprID, sp source.Span, v Value) {
	if ev.anchor == nil {
		return
	}
	col, ok := ev.anchor(sp)
	if !ok {
		return
	}
	ev.records = append(ev.records, Record{
		Expr:     id,
		Col:      col,
		Val:      v,
		Rendered: v.Render(),
	})
}

// Eval evaluates the node and its subtree. Errors from the user's expression
// propagate unchanged; records are appended only for nodes actually visited.
func (ev *Evaluator) Eval(id ast.ExprID) (Value, error) {
	expr := ev.exprs.Get(id)
	if expr == nil {
		return Value{}, fmt.Errorf("invalid expression id %d", id)
	}

	switch expr.Kind {
	case ast.ExprLit:
		return ev.evalLiteral(id, expr)
	case ast.ExprIdent:
		return ev.evalIdent(id, expr)
	case ast.ExprUnaryNot:
		return ev.evalNot(id, expr)
	case ast.ExprBinary:
		return ev.evalBinary(id, expr)
	case ast.ExprCall:
		return ev.evalCall(id, expr)
	case ast.ExprSelect:
		return ev.evalSelect(id, expr)
	case ast.ExprGroup:
		// Span-transparent: the inner node keeps its own column.
		data, _ := ev.exprs.Group(id)
		return ev.Eval(data.Inner)
	case ast.ExprSeq:
		return ev.evalSeq(id, expr)
	case ast.ExprBlock:
		return ev.evalBlock(id, expr)
	default:
		return Value{}, fmt.Errorf("unsupported expression kind %s", expr.Kind)
	}
}

func (ev *Evaluator) evalLiteral(id ast.ExprID, expr *ast.Expr) (Value, error) {
	data, _ := ev.exprs.Literal(id)
	v, err := decodeLiteral(data.Kind, ev.exprs.Strings.MustLookup(data.Text))
	if err != nil {
		return Value{}, err
	}
	ev.record(id, expr.Span, v)
	return v, nil
}

func (ev *Evaluator) evalIdent(id ast.ExprID, expr *ast.Expr) (Value, error) {
	data, _ := ev.exprs.Ident(id)
	name := ev.exprs.Strings.MustLookup(data.Name)
	v, ok := ev.env.Lookup(name)
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrUnbound, name)
	}
	ev.record(id, expr.Span, v)
	return v, nil
}

func (ev *Evaluator) evalNot(id ast.ExprID, expr *ast.Expr) (Value, error) {
	data, _ := ev.exprs.Not(id)
	inner, err := ev.Eval(data.Operand)
	if err != nil {
		return Value{}, err
	}
	b, ok := inner.Truthy()
	if !ok {
		return Value{}, fmt.Errorf("%w: '!' operand is %s", ErrNotBoolean, inner.Kind)
	}
	result := BoolVal(!b)
	// The '!' node's own column; the operand recorded itself already, so the
	// renderer's tie-break puts this below it when the columns collide.
	ev.record(id, expr.Span, result)
	return result, nil
}

func (ev *Evaluator) evalBinary(id ast.ExprID, expr *ast.Expr) (Value, error) {
	data, _ := ev.exprs.Binary(id)

	if data.Op.ShortCircuit() {
		return ev.evalShortCircuit(data)
	}

	left, err := ev.Eval(data.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := ev.Eval(data.Right)
	if err != nil {
		return Value{}, err
	}

	var result Value
	switch {
	case data.Op.Logical():
		// Strict '&' / '|': both sides always evaluated.
		lb, lok := left.Truthy()
		rb, rok := right.Truthy()
		if !lok || !rok {
			return Value{}, fmt.Errorf("%w: '%s' needs boolean operands", ErrNotBoolean, data.Op)
		}
		if data.Op == ast.BinAnd {
			result = BoolVal(lb && rb)
		} else {
			result = BoolVal(lb || rb)
		}

	default:
		b, err := ev.compare(data.Op, left, right)
		if err != nil {
			return Value{}, err
		}
		result = BoolVal(b)
	}

	// The combinator's own record sits under the operator token.
	ev.record(id, data.OpSpan, result)
	return result, nil
}

// evalShortCircuit handles '&&' and '||'. Only the operands actually
// evaluated produce records; the combinator itself never does.
func (ev *Evaluator) evalShortCircuit(data *ast.ExprBinaryData) (Value, error) {
	left, err := ev.Eval(data.Left)
	if err != nil {
		return Value{}, err
	}
	lb, ok := left.Truthy()
	if !ok {
		return Value{}, fmt.Errorf("%w: '%s' needs boolean operands", ErrNotBoolean, data.Op)
	}

	// Left alone decides: the right subtree is neither evaluated nor
	// recorded, and its side effects must not occur.
	if (data.Op == ast.BinLogicalAnd && !lb) || (data.Op == ast.BinLogicalOr && lb) {
		return left, nil
	}

	right, err := ev.Eval(data.Right)
	if err != nil {
		return Value{}, err
	}
	rb, ok := right.Truthy()
	if !ok {
		return Value{}, fmt.Errorf("%w: '%s' needs boolean operands", ErrNotBoolean, data.Op)
	}
	return BoolVal(rb), nil
}

func (ev *Evaluator) compare(op ast.BinaryOp, left, right Value) (bool, error) {
	switch op {
	case ast.BinEq:
		return NativeEqual(left, right), nil
	case ast.BinNe:
		return !NativeEqual(left, right), nil
	case ast.BinTripleEq:
		return ev.equal(left, right), nil
	case ast.BinTripleNe:
		return !ev.equal(left, right), nil
	}

	ord, err := order(left, right)
	if err != nil {
		return false, err
	}
	switch op {
	case ast.BinLt:
		return ord < 0, nil
	case ast.BinLe:
		return ord <= 0, nil
	case ast.BinGt:
		return ord > 0, nil
	case ast.BinGe:
		return ord >= 0, nil
	default:
		return false, fmt.Errorf("not a comparison operator: %s", op)
	}
}

// order returns -1/0/+1 for numbers and strings; everything else is not
// orderable.
func order(left, right Value) (int, error) {
	if ln, lok := left.numeric(); lok {
		if rn, rok := right.numeric(); rok {
			switch {
			case ln < rn:
				return -1, nil
			case ln > rn:
				return 1, nil
			default:
				return 0, nil
			}
		}
	}
	if left.Kind == VKString && right.Kind == VKString {
		switch {
		case left.Str < right.Str:
			return -1, nil
		case left.Str > right.Str:
			return 1, nil
		default:
			return 0, nil
		}
	}
	return 0, fmt.Errorf("%w: %s vs %s", ErrNotOrdered, left.Kind, right.Kind)
}

// evalCall evaluates f(args...) or recv.m(args...). The receiver and each
// argument are evaluated (and record themselves) before the invocation;
// arguments are never skipped once the call node is reached.
func (ev *Evaluator) evalCall(id ast.ExprID, expr *ast.Expr) (Value, error) {
	data, _ := ev.exprs.Call(id)
	target := ev.exprs.Get(data.Target)

	switch target.Kind {
	case ast.ExprSelect:
		sel, _ := ev.exprs.Select(data.Target)
		recv, err := ev.Eval(sel.Target)
		if err != nil {
			return Value{}, err
		}
		args, err := ev.evalArgs(data.Args)
		if err != nil {
			return Value{}, err
		}
		name := ev.exprs.Strings.MustLookup(sel.Field)
		m, ok := ev.env.LookupMethod(name)
		if !ok {
			return Value{}, fmt.Errorf("%w: %s", ErrNoSuchMethod, name)
		}
		result, err := m(recv, args)
		if err != nil {
			return Value{}, err
		}
		// The call's result sits under the method name.
		ev.record(id, sel.FieldSpan, result)
		return result, nil

	case ast.ExprIdent:
		ident, _ := ev.exprs.Ident(data.Target)
		name := ev.exprs.Strings.MustLookup(ident.Name)
		fn, ok := ev.env.LookupFunc(name)
		if !ok {
			return Value{}, fmt.Errorf("%w: %s", ErrNoSuchFunc, name)
		}
		args, err := ev.evalArgs(data.Args)
		if err != nil {
			return Value{}, err
		}
		result, err := fn(args)
		if err != nil {
			return Value{}, err
		}
		ev.record(id, target.Span, result)
		return result, nil

	default:
		return Value{}, fmt.Errorf("uncallable target kind %s", target.Kind)
	}
}

func (ev *Evaluator) evalArgs(ids []ast.ExprID) ([]Value, error) {
	args := make([]Value, 0, len(ids))
	for _, argID := range ids {
		v, err := ev.Eval(argID)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// evalSelect evaluates a bare property access recv.name.
func (ev *Evaluator) evalSelect(id ast.ExprID, expr *ast.Expr) (Value, error) {
	data, _ := ev.exprs.Select(id)
	recv, err := ev.Eval(data.Target)
	if err != nil {
		return Value{}, err
	}
	name := ev.exprs.Strings.MustLookup(data.Field)
	m, ok := ev.env.LookupMethod(name)
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrNoSuchMethod, name)
	}
	result, err := m(recv, nil)
	if err != nil {
		return Value{}, err
	}
	ev.record(id, data.FieldSpan, result)
	return result, nil
}

func (ev *Evaluator) evalSeq(id ast.ExprID, expr *ast.Expr) (Value, error) {
	data, _ := ev.exprs.Seq(id)
	elems := make([]Value, 0, len(data.Elems))
	for _, el := range data.Elems {
		v, err := ev.Eval(el)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)
	}
	v := SeqVal(elems...)
	ev.record(id, expr.Span, v)
	return v, nil
}

// evalBlock runs an opaque block as a unit: no records, ordinary evaluation.
func (ev *Evaluator) evalBlock(id ast.ExprID, expr *ast.Expr) (Value, error) {
	data, _ := ev.exprs.Block(id)
	if data.Thunk != nil {
		v, err := data.Thunk()
		if err != nil {
			return Value{}, err
		}
		return FromAny(v), nil
	}
	if ev.env.BlockEval != nil {
		v, err := ev.env.BlockEval(ev.exprs.Strings.MustLookup(data.Text))
		if err != nil {
			return Value{}, err
		}
		return FromAny(v), nil
	}
	return Value{}, ErrOpaqueBlock
}
