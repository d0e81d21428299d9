// Package check is the assertion façade: it evaluates one boolean expression
// tree, and on a clean false result renders the failure diagram. Errors
// raised by the user's expression pass through untouched.
package check

// Kind categorizes the result of one assertion.
type Kind uint8

const (
	// Passed means the expression evaluated to true; no output is produced.
	Passed Kind = iota
	// Failed is the hard-failure category raised by Assert.
	Failed
	// Canceled is the skip-remainder category raised by Assume.
	Canceled
)

func (k Kind) String() string {
	switch k {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Canceled:
		return "canceled"
	}
	return "unknown"
}

// Location is the call site of the assertion, supplied by the collaborator
// that knows the call stack.
type Location struct {
	File string
	Line int
}

// Outcome is the result of one assertion. All fields are frozen once the
// outcome is built; nothing inside the engine outlives the call.
type Outcome struct {
	Kind Kind

	// Message is the full failure text: optional clue, blank-line separator,
	// then the diagram (or the plain summary when no diagram could be
	// rendered). Empty for Passed.
	Message string

	// Diagram holds the raw diagram rows when one was rendered.
	Diagram []string

	Clue string
	File string
	Line int
}

// Ok reports whether the assertion passed.
func (o Outcome) Ok() bool {
	return o.Kind == Passed
}
