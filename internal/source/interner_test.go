package source

import (
	"testing"
)

func TestInternerDedup(t *testing.T) {
	in := NewInterner()

	a := in.Intern("size")
	b := in.Intern("size")
	if a != b {
		t.Errorf("same string got two IDs: %d, %d", a, b)
	}

	c := in.Intern("length")
	if c == a {
		t.Error("distinct strings share an ID")
	}

	// Empty string is pre-interned at NoStringID.
	if got := in.Intern(""); got != NoStringID {
		t.Errorf("Intern(\"\") = %d, want %d", got, NoStringID)
	}
}

func TestInternerLookup(t *testing.T) {
	in := NewInterner()
	id := in.Intern("contains")

	s, ok := in.Lookup(id)
	if !ok || s != "contains" {
		t.Errorf("Lookup = (%q, %v)", s, ok)
	}

	if _, ok := in.Lookup(StringID(99)); ok {
		t.Error("Lookup succeeded for unknown ID")
	}

	if got := in.MustLookup(id); got != "contains" {
		t.Errorf("MustLookup = %q", got)
	}
}

func TestInternerMustLookupPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLookup on invalid ID did not panic")
		}
	}()
	NewInterner().MustLookup(StringID(42))
}

func TestInternerLen(t *testing.T) {
	in := NewInterner()
	if in.Len() != 1 {
		t.Fatalf("fresh interner Len() = %d, want 1", in.Len())
	}
	in.Intern("a")
	in.Intern("b")
	in.Intern("a")
	if in.Len() != 3 {
		t.Errorf("Len() = %d, want 3", in.Len())
	}
}
