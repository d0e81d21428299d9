package eval

import (
	"assay/internal/ast"
	"assay/internal/source"
)

// Record captures one evaluated node: which node, where its value belongs on
// the diagram row, and the value as it was at evaluation time. Rendered is
// frozen at creation so later side effects cannot rewrite history.
type Record struct {
	Expr     ast.ExprID
	Col      uint32
	Val      Value
	Rendered string
}

// AnchorFunc maps a node span to its zero-based diagram column. ok false
// means the node has no stable column (synthesized node, off-row position);
// it evaluates normally but is never recorded.
type AnchorFunc func(sp source.Span) (uint32, bool)
