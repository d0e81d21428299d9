package ast

import (
	"fmt"
	"strings"
)

// Dump renders the subtree rooted at id as a compact s-expression, used by
// the parse command and tests.
func (e *Exprs) Dump(id ExprID) string {
	var b strings.Builder
	e.dump(&b, id)
	return b.String()
}

func (e *Exprs) dump(b *strings.Builder, id ExprID) {
	expr := e.Get(id)
	if expr == nil {
		b.WriteString("<nil>")
		return
	}
	switch expr.Kind {
	case ExprIdent:
		data, _ := e.Ident(id)
		b.WriteString(e.Strings.MustLookup(data.Name))

	case ExprLit:
		data, _ := e.Literal(id)
		b.WriteString(e.Strings.MustLookup(data.Text))

	case ExprUnaryNot:
		data, _ := e.Not(id)
		b.WriteString("(! ")
		e.dump(b, data.Operand)
		b.WriteByte(')')

	case ExprBinary:
		data, _ := e.Binary(id)
		fmt.Fprintf(b, "(%s ", data.Op)
		e.dump(b, data.Left)
		b.WriteByte(' ')
		e.dump(b, data.Right)
		b.WriteByte(')')

	case ExprCall:
		data, _ := e.Call(id)
		b.WriteString("(call ")
		e.dump(b, data.Target)
		for _, arg := range data.Args {
			b.WriteByte(' ')
			e.dump(b, arg)
		}
		b.WriteByte(')')

	case ExprSelect:
		data, _ := e.Select(id)
		b.WriteString("(. ")
		e.dump(b, data.Target)
		b.WriteByte(' ')
		b.WriteString(e.Strings.MustLookup(data.Field))
		b.WriteByte(')')

	case ExprGroup:
		data, _ := e.Group(id)
		b.WriteString("(group ")
		e.dump(b, data.Inner)
		b.WriteByte(')')

	case ExprSeq:
		data, _ := e.Seq(id)
		b.WriteString("(seq")
		for _, el := range data.Elems {
			b.WriteByte(' ')
			e.dump(b, el)
		}
		b.WriteByte(')')

	case ExprBlock:
		b.WriteString("(block)")

	default:
		fmt.Fprintf(b, "<%s>", expr.Kind)
	}
}
