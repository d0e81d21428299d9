package eval

import "errors"

// Evaluation errors propagate to the caller unchanged; the engine never
// converts them into assertion failures.
var (
	ErrUnbound      = errors.New("unbound identifier")
	ErrNotBoolean   = errors.New("operand is not a boolean")
	ErrNotOrdered   = errors.New("values are not orderable")
	ErrNoSuchFunc   = errors.New("no such function")
	ErrNoSuchMethod = errors.New("no such method")
	ErrBadReceiver  = errors.New("unsupported receiver")
	ErrOpaqueBlock  = errors.New("opaque block has no evaluator")
	ErrBadLiteral   = errors.New("malformed literal")
)
