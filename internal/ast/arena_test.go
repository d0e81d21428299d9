package ast

import (
	"testing"
)

func TestArenaAllocateGet(t *testing.T) {
	a := NewArena[int](4)

	id1 := a.Allocate(10)
	id2 := a.Allocate(20)
	if id1 == 0 || id2 == 0 {
		t.Fatal("0 is reserved for the invalid ID")
	}
	if id1 == id2 {
		t.Fatal("distinct allocations share an ID")
	}

	if v := a.Get(id1); v == nil || *v != 10 {
		t.Errorf("Get(id1) = %v", v)
	}
	if v := a.Get(id2); v == nil || *v != 20 {
		t.Errorf("Get(id2) = %v", v)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d", a.Len())
	}
}

func TestArenaInvalidIDs(t *testing.T) {
	a := NewArena[string](0)
	if a.Get(0) != nil {
		t.Error("Get(0) should be nil")
	}
	if a.Get(99) != nil {
		t.Error("Get past the end should be nil")
	}
}

func TestArenaMutationThroughPointer(t *testing.T) {
	a := NewArena[int](1)
	id := a.Allocate(1)
	*a.Get(id) = 7
	if *a.Get(id) != 7 {
		t.Error("mutation through Get pointer lost")
	}
}
