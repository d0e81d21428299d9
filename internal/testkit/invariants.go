// Package testkit holds invariant checkers shared by tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/mattn/go-runewidth"

	"assay/internal/ast"
	"assay/internal/eval"
	"assay/internal/source"
)

// CheckExprSpans walks the tree under root and verifies structural span
// invariants:
// 1) every span is non-empty, points at sf, and stays within its content
// 2) every child span is contained in its parent's span
// 3) a binary node's operator span sits between its operands
func CheckExprSpans(exprs *ast.Exprs, root ast.ExprID, sf *source.File) error {
	if exprs == nil || sf == nil {
		return fmt.Errorf("nil exprs or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var walk func(id ast.ExprID, parent source.Span) error
	walk = func(id ast.ExprID, parent source.Span) error {
		expr := exprs.Get(id)
		if expr == nil {
			return fmt.Errorf("nil expr for id=%d", id)
		}
		sp := expr.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("empty span: %v", sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("span file mismatch: got=%d want=%d", sp.File, sf.ID)
		}
		if sp.End > lenContent {
			return fmt.Errorf("span end beyond content: %d > %d", sp.End, lenContent)
		}
		if !parent.Empty() && (sp.Start < parent.Start || sp.End > parent.End) {
			return fmt.Errorf("child span %v outside parent %v", sp, parent)
		}

		switch expr.Kind {
		case ast.ExprUnaryNot:
			data, _ := exprs.Not(id)
			return walk(data.Operand, sp)
		case ast.ExprBinary:
			data, _ := exprs.Binary(id)
			if err := walk(data.Left, sp); err != nil {
				return err
			}
			if err := walk(data.Right, sp); err != nil {
				return err
			}
			left := exprs.Get(data.Left)
			right := exprs.Get(data.Right)
			if data.OpSpan.Start < left.Span.End || data.OpSpan.End > right.Span.Start {
				return fmt.Errorf("operator span %v not between operands %v and %v",
					data.OpSpan, left.Span, right.Span)
			}
		case ast.ExprCall:
			data, _ := exprs.Call(id)
			if err := walk(data.Target, sp); err != nil {
				return err
			}
			for _, arg := range data.Args {
				if err := walk(arg, sp); err != nil {
					return err
				}
			}
		case ast.ExprSelect:
			data, _ := exprs.Select(id)
			if err := walk(data.Target, sp); err != nil {
				return err
			}
			if data.FieldSpan.Start < sp.Start || data.FieldSpan.End > sp.End {
				return fmt.Errorf("field span %v outside select span %v", data.FieldSpan, sp)
			}
		case ast.ExprGroup:
			data, _ := exprs.Group(id)
			return walk(data.Inner, sp)
		case ast.ExprSeq:
			data, _ := exprs.Seq(id)
			for _, el := range data.Elems {
				if err := walk(el, sp); err != nil {
					return err
				}
			}
		}
		return nil
	}

	return walk(root, source.Span{})
}

// CheckRecords verifies record invariants against the diagram source row:
// each record carries a non-empty rendered form, its column lies on the row,
// and the rendered text matches its value.
func CheckRecords(records []eval.Record, rowText string) error {
	width, err := safecast.Conv[uint32](runewidth.StringWidth(rowText))
	if err != nil {
		return fmt.Errorf("row width overflow: %w", err)
	}
	for i, r := range records {
		if r.Rendered == "" {
			return fmt.Errorf("record %d: empty rendered form", i)
		}
		if r.Col >= width {
			return fmt.Errorf("record %d: column %d beyond row width %d", i, r.Col, width)
		}
		if r.Rendered != r.Val.Render() {
			return fmt.Errorf("record %d: rendered form %q drifted from value %q",
				i, r.Rendered, r.Val.Render())
		}
	}
	return nil
}
