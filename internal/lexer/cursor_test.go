package lexer

import (
	"testing"

	"assay/internal/source"
)

func makeCursor(t *testing.T, input string) Cursor {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("cursor.assay", []byte(input))
	return NewCursor(fs.Get(fileID))
}

func TestCursorPeekBump(t *testing.T) {
	c := makeCursor(t, "ab")

	if c.Peek() != 'a' {
		t.Errorf("Peek = %q", c.Peek())
	}
	if c.Bump() != 'a' {
		t.Error("Bump did not return 'a'")
	}
	if c.Peek() != 'b' {
		t.Errorf("Peek after Bump = %q", c.Peek())
	}
	c.Bump()
	if !c.EOF() {
		t.Error("not at EOF after consuming everything")
	}
	if c.Peek() != 0 || c.Bump() != 0 {
		t.Error("Peek/Bump at EOF should return 0")
	}
}

func TestCursorPeek2Peek3(t *testing.T) {
	c := makeCursor(t, "===")

	b0, b1, ok := c.Peek2()
	if !ok || b0 != '=' || b1 != '=' {
		t.Errorf("Peek2 = (%q, %q, %v)", b0, b1, ok)
	}
	b0, b1, b2, ok := c.Peek3()
	if !ok || b0 != '=' || b1 != '=' || b2 != '=' {
		t.Errorf("Peek3 = (%q, %q, %q, %v)", b0, b1, b2, ok)
	}

	c.Bump()
	if _, _, _, ok := c.Peek3(); ok {
		t.Error("Peek3 succeeded with two bytes left")
	}
	c.Bump()
	if _, _, ok := c.Peek2(); ok {
		t.Error("Peek2 succeeded with one byte left")
	}
}

func TestCursorMarkSpanReset(t *testing.T) {
	c := makeCursor(t, "abcdef")
	c.Bump()
	m := c.Mark()
	c.Bump()
	c.Bump()

	sp := c.SpanFrom(m)
	if sp.Start != 1 || sp.End != 3 {
		t.Errorf("SpanFrom = %v, want 1-3", sp)
	}

	c.Reset(m)
	if c.Peek() != 'b' {
		t.Errorf("after Reset, Peek = %q", c.Peek())
	}
}

func TestCursorEat(t *testing.T) {
	c := makeCursor(t, "=!")

	if !c.Eat('=') {
		t.Error("Eat('=') failed on matching byte")
	}
	if c.Eat('=') {
		t.Error("Eat('=') consumed a non-matching byte")
	}
	if c.Peek() != '!' {
		t.Errorf("Peek = %q", c.Peek())
	}
}
