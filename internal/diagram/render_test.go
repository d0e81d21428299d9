package diagram_test

import (
	"strings"
	"testing"

	"assay/internal/diagram"
)

func renderJoined(sourceRow string, entries []diagram.Entry) string {
	return strings.Join(diagram.Render(sourceRow, entries), "\n")
}

func TestRenderEmptyEntries(t *testing.T) {
	if got := diagram.Render("a == b", nil); got != nil {
		t.Errorf("Render with no entries = %v, want nil", got)
	}
	if got := diagram.Render("a == b", []diagram.Entry{}); got != nil {
		t.Errorf("Render with empty entries = %v, want nil", got)
	}
}

func TestRenderSimpleComparison(t *testing.T) {
	// assert(3 == 5): operands on one row, the combinator's false below.
	entries := []diagram.Entry{
		{Col: 0, Text: "3"},
		{Col: 5, Text: "5"},
		{Col: 2, Text: "false"},
	}

	want := strings.Join([]string{
		"",
		"3 == 5",
		"| |  |",
		"3 |  5",
		"  false",
	}, "\n")

	if got := renderJoined("3 == 5", entries); got != want {
		t.Errorf("diagram:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderConjunction(t *testing.T) {
	// assert(a == 3 && b == 6) with a=3, b=5. The left conjunct is true, so
	// the right side evaluated; '&&' itself contributes nothing.
	entries := []diagram.Entry{
		{Col: 0, Text: "3"},
		{Col: 5, Text: "3"},
		{Col: 2, Text: "true"},
		{Col: 10, Text: "5"},
		{Col: 15, Text: "6"},
		{Col: 12, Text: "false"},
	}

	want := strings.Join([]string{
		"",
		"a == 3 && b == 6",
		"| |  |    | |  |",
		"3 |  3    5 |  6",
		"  true      false",
	}, "\n")

	if got := renderJoined("a == 3 && b == 6", entries); got != want {
		t.Errorf("diagram:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderSameColumnTieBreak(t *testing.T) {
	// assert(!b) with b=true: the '!' node shares column 0 with nothing, but
	// operand and outer land on adjacent columns; with identical columns the
	// later entry (the outer node) must drop to a later row.
	entries := []diagram.Entry{
		{Col: 1, Text: "true"},
		{Col: 0, Text: "false"},
	}

	want := strings.Join([]string{
		"",
		"!b",
		"||",
		"|true",
		"false",
	}, "\n")

	if got := renderJoined("!b", entries); got != want {
		t.Errorf("diagram:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderEqualColumnsKeepEntryOrder(t *testing.T) {
	// Two entries on the same column: the first recorded stays above.
	entries := []diagram.Entry{
		{Col: 0, Text: "inner"},
		{Col: 0, Text: "outer"},
	}

	want := strings.Join([]string{
		"",
		"x",
		"|",
		"inner",
		"outer",
	}, "\n")

	if got := renderJoined("x", entries); got != want {
		t.Errorf("diagram:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderStaircase(t *testing.T) {
	// Wide values overlapping narrow columns cascade downward rightmost-first.
	entries := []diagram.Entry{
		{Col: 0, Text: `"hello"`},
		{Col: 11, Text: `"hello world"`},
		{Col: 8, Text: "false"},
	}

	want := strings.Join([]string{
		"",
		`"hello" == "hello world"`,
		"|       |  |",
		`"hello" |  "hello world"`,
		"        false",
	}, "\n")

	if got := renderJoined(`"hello" == "hello world"`, entries); got != want {
		t.Errorf("diagram:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderWideRunes(t *testing.T) {
	// Runewidth, not byte length: the CJK rune occupies two columns, so a
	// value one column after it must not collide.
	entries := []diagram.Entry{
		{Col: 0, Text: "天"},
		{Col: 6, Text: "1"},
		{Col: 3, Text: "false"},
	}

	want := strings.Join([]string{
		"",
		"天 == 1",
		"|  |  |",
		"天 |  1",
		"   false",
	}, "\n")

	if got := renderJoined("天 == 1", entries); got != want {
		t.Errorf("diagram:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderValuesPackIntoOneRowWhenTheyFit(t *testing.T) {
	entries := []diagram.Entry{
		{Col: 0, Text: "1"},
		{Col: 5, Text: "2"},
		{Col: 10, Text: "3"},
	}

	want := strings.Join([]string{
		"",
		"a ,  b ,  c",
		"|    |    |",
		"1    2    3",
	}, "\n")

	if got := renderJoined("a ,  b ,  c", entries); got != want {
		t.Errorf("diagram:\n%s\nwant:\n%s", got, want)
	}
}
