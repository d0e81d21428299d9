package source

import (
	"testing"
)

func TestSpanEmptyAndLen(t *testing.T) {
	tests := []struct {
		name  string
		span  Span
		empty bool
		len   uint32
	}{
		{"empty at zero", Span{File: 0, Start: 0, End: 0}, true, 0},
		{"empty mid-file", Span{File: 1, Start: 7, End: 7}, true, 0},
		{"one byte", Span{File: 0, Start: 3, End: 4}, false, 1},
		{"wide", Span{File: 2, Start: 10, End: 25}, false, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}
			if got := tt.span.Len(); got != tt.len {
				t.Errorf("Len() = %d, want %d", got, tt.len)
			}
		})
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{File: 1, Start: 5, End: 20}

	tests := []struct {
		name  string
		inner Span
		want  bool
	}{
		{"fully inside", Span{File: 1, Start: 7, End: 15}, true},
		{"same span", Span{File: 1, Start: 5, End: 20}, true},
		{"touching start", Span{File: 1, Start: 5, End: 6}, true},
		{"touching end", Span{File: 1, Start: 19, End: 20}, true},
		{"starts before", Span{File: 1, Start: 4, End: 10}, false},
		{"ends after", Span{File: 1, Start: 10, End: 21}, false},
		{"different file", Span{File: 2, Start: 7, End: 15}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.inner); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{
			"extends right",
			Span{File: 1, Start: 0, End: 5},
			Span{File: 1, Start: 3, End: 10},
			Span{File: 1, Start: 0, End: 10},
		},
		{
			"extends left",
			Span{File: 1, Start: 8, End: 12},
			Span{File: 1, Start: 2, End: 9},
			Span{File: 1, Start: 2, End: 12},
		},
		{
			"disjoint",
			Span{File: 1, Start: 0, End: 2},
			Span{File: 1, Start: 8, End: 12},
			Span{File: 1, Start: 0, End: 12},
		},
		{
			"contained is a no-op",
			Span{File: 1, Start: 0, End: 20},
			Span{File: 1, Start: 5, End: 10},
			Span{File: 1, Start: 0, End: 20},
		},
		{
			"different file unchanged",
			Span{File: 1, Start: 0, End: 5},
			Span{File: 2, Start: 10, End: 20},
			Span{File: 1, Start: 0, End: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Errorf("Cover() = %v, want %v", got, tt.want)
			}
		})
	}
}
