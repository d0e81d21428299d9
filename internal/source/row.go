package source

import (
	"bytes"

	"github.com/mattn/go-runewidth"
)

// Diagram alignment works on a single logical row: the slice of one source
// line that holds the whole top-level expression. Columns are zero-based
// display columns relative to the row start, measured with runewidth so that
// wide runes keep values under the sub-expression they belong to.

// ExprRow returns the span of sp's text narrowed to a single line.
// ok is false when sp crosses a line boundary; callers degrade to the
// summary-only rendering in that case.
func (f *File) ExprRow(sp Span) (Span, bool) {
	if sp.File != f.ID || sp.End > uint32(len(f.Content)) || sp.Start > sp.End {
		return Span{}, false
	}
	if bytes.ContainsRune(f.Content[sp.Start:sp.End], '\n') {
		return Span{}, false
	}
	return sp, true
}

// ColumnWithin maps a byte offset inside row to a zero-based display column
// relative to the row start. ok is false for offsets outside the row; such
// nodes evaluate normally but never produce diagram records.
func (f *File) ColumnWithin(row Span, off uint32) (uint32, bool) {
	if row.File != f.ID || off < row.Start || off >= row.End {
		return 0, false
	}
	prefix := f.Content[row.Start:off]
	return uint32(runewidth.StringWidth(string(prefix))), true
}
