package check

import (
	"fmt"
	"strings"

	"assay/internal/ast"
	"assay/internal/diagram"
	"assay/internal/eval"
	"assay/internal/source"
)

// Checker evaluates assertion expressions from one source file. It holds no
// per-call state: every Assert/Assume allocates its own evaluator and record
// buffer, so a Checker is safe for concurrent use.
type Checker struct {
	file     *source.File
	exprs    *ast.Exprs
	equality eval.EqualityFunc
}

// Option configures a Checker.
type Option func(*Checker)

// WithEquality installs the '===' / '!==' collaborator.
func WithEquality(eq eval.EqualityFunc) Option {
	return func(c *Checker) { c.equality = eq }
}

// New creates a Checker for expressions parsed (or built) against file.
func New(file *source.File, exprs *ast.Exprs, opts ...Option) *Checker {
	c := &Checker{
		file:     file,
		exprs:    exprs,
		equality: eval.NativeEqual,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Assert evaluates root and reports Failed on a clean false result.
func (c *Checker) Assert(root ast.ExprID, env *eval.Env, clue string, loc Location) (Outcome, error) {
	return c.CheckBoolean(root, env, clue, loc, Failed)
}

// Assume is Assert with the Canceled category: same evaluation, same
// rendering, different signal to the caller.
func (c *Checker) Assume(root ast.ExprID, env *eval.Env, clue string, loc Location) (Outcome, error) {
	return c.CheckBoolean(root, env, clue, loc, Canceled)
}

// CheckBoolean evaluates root under env. A true result is Passed; a false
// result renders the diagram (or the plain summary) under the given failure
// category. Any error from the expression itself is returned unchanged.
func (c *Checker) CheckBoolean(root ast.ExprID, env *eval.Env, clue string, loc Location, onFalse Kind) (Outcome, error) {
	rootExpr := c.exprs.Get(root)
	if rootExpr == nil {
		return Outcome{}, fmt.Errorf("invalid root expression id %d", root)
	}

	opts := []eval.Option{eval.WithEquality(c.equality)}
	row, rowOK := c.diagramRow(root, rootExpr)
	if rowOK {
		opts = append(opts, eval.WithAnchor(func(sp source.Span) (uint32, bool) {
			return c.file.ColumnWithin(row, sp.Start)
		}))
	}

	ev := eval.New(c.exprs, env, opts...)
	v, err := ev.Eval(root)
	if err != nil {
		return Outcome{}, err
	}
	b, ok := v.Truthy()
	if !ok {
		return Outcome{}, fmt.Errorf("%w: assertion result is %s", eval.ErrNotBoolean, v.Kind)
	}
	if b {
		return Outcome{Kind: Passed, File: loc.File, Line: loc.Line}, nil
	}

	var lines []string
	if rowOK {
		lines = diagram.Render(c.file.Text(row), entriesFor(ev.Records()))
	}

	message := c.fallbackSummary(root, rootExpr)
	if len(lines) > 0 {
		message = strings.Join(lines, "\n")
	}
	if clue != "" {
		if strings.HasPrefix(message, "\n") {
			message = clue + "\n" + message
		} else {
			message = clue + "\n\n" + message
		}
	}

	return Outcome{
		Kind:    onFalse,
		Message: message,
		Diagram: lines,
		Clue:    clue,
		File:    loc.File,
		Line:    loc.Line,
	}, nil
}

// diagramRow picks the single source row used for alignment. Bare literals
// and opaque blocks (negated or not) carry nothing worth diagramming;
// multi-line expressions have no stable columns. All of them degrade to the
// summary-only rendering.
func (c *Checker) diagramRow(root ast.ExprID, rootExpr *ast.Expr) (source.Span, bool) {
	switch rootExpr.Kind {
	case ast.ExprLit, ast.ExprBlock:
		return source.Span{}, false
	case ast.ExprUnaryNot:
		if not, ok := c.exprs.Not(root); ok {
			if inner := c.exprs.Get(not.Operand); inner != nil && inner.Kind == ast.ExprBlock {
				return source.Span{}, false
			}
		}
	}
	return c.file.ExprRow(rootExpr.Span)
}

// fallbackSummary is the plain message used when no diagram can be rendered.
func (c *Checker) fallbackSummary(root ast.ExprID, rootExpr *ast.Expr) string {
	// assert(!{...}) reads better as "block was true".
	if rootExpr.Kind == ast.ExprUnaryNot {
		if not, ok := c.exprs.Not(root); ok {
			if inner := c.exprs.Get(not.Operand); inner != nil && inner.Kind == ast.ExprBlock {
				return collapse(c.file.Text(inner.Span)) + " was true"
			}
		}
	}
	return collapse(c.file.Text(rootExpr.Span)) + " was false"
}

func entriesFor(records []eval.Record) []diagram.Entry {
	entries := make([]diagram.Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, diagram.Entry{Col: r.Col, Text: r.Rendered})
	}
	return entries
}

// collapse squeezes runs of whitespace into single spaces so multi-line
// source reads as one summary line.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
