package source

import (
	"testing"
)

func TestExprRow(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("row", []byte("a == b\nc == d"))
	f := fs.Get(id)

	t.Run("single line", func(t *testing.T) {
		sp := Span{File: id, Start: 0, End: 6}
		row, ok := f.ExprRow(sp)
		if !ok {
			t.Fatal("single-line span rejected")
		}
		if row != sp {
			t.Errorf("row = %v, want %v", row, sp)
		}
	})

	t.Run("crosses newline", func(t *testing.T) {
		if _, ok := f.ExprRow(Span{File: id, Start: 0, End: 13}); ok {
			t.Error("multi-line span accepted")
		}
	})

	t.Run("second line", func(t *testing.T) {
		if _, ok := f.ExprRow(Span{File: id, Start: 7, End: 13}); !ok {
			t.Error("second-line span rejected")
		}
	})

	t.Run("wrong file", func(t *testing.T) {
		if _, ok := f.ExprRow(Span{File: id + 1, Start: 0, End: 6}); ok {
			t.Error("foreign span accepted")
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		if _, ok := f.ExprRow(Span{File: id, Start: 0, End: 99}); ok {
			t.Error("oversized span accepted")
		}
	})
}

func TestColumnWithin(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("cols", []byte("ab == cd"))
	f := fs.Get(id)
	row := Span{File: id, Start: 0, End: 8}

	tests := []struct {
		off  uint32
		want uint32
		ok   bool
	}{
		{0, 0, true},
		{3, 3, true},
		{6, 6, true},
		{8, 0, false}, // row end is exclusive
	}
	for _, tt := range tests {
		got, ok := f.ColumnWithin(row, tt.off)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ColumnWithin(%d) = (%d, %v), want (%d, %v)", tt.off, got, ok, tt.want, tt.ok)
		}
	}
}

func TestColumnWithinWideRunes(t *testing.T) {
	// "天 == 1": the CJK rune is 3 bytes but 2 display columns wide.
	fs := NewFileSet()
	id := fs.AddVirtual("wide", []byte("天 == 1"))
	f := fs.Get(id)
	row := Span{File: id, Start: 0, End: uint32(len("天 == 1"))}

	col, ok := f.ColumnWithin(row, 0)
	if !ok || col != 0 {
		t.Errorf("rune start: (%d, %v)", col, ok)
	}

	// '==' starts after "天 " = 4 bytes, 3 display columns.
	col, ok = f.ColumnWithin(row, 4)
	if !ok || col != 3 {
		t.Errorf("operator column = (%d, %v), want (3, true)", col, ok)
	}

	// '1' starts after "天 == " = 7 bytes, 6 display columns.
	col, ok = f.ColumnWithin(row, 7)
	if !ok || col != 6 {
		t.Errorf("literal column = (%d, %v), want (6, true)", col, ok)
	}
}

func TestColumnWithinOffsetOutsideRow(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("sub", []byte("xx a == b"))
	f := fs.Get(id)
	// Row starts mid-file; offsets before it have no column.
	row := Span{File: id, Start: 3, End: 9}

	if _, ok := f.ColumnWithin(row, 1); ok {
		t.Error("offset before row accepted")
	}
	col, ok := f.ColumnWithin(row, 5)
	if !ok || col != 2 {
		t.Errorf("ColumnWithin(5) = (%d, %v), want (2, true)", col, ok)
	}
}
