// Package diagram renders the multi-row failure picture that connects each
// recorded sub-expression value to its column in the source row.
package diagram

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Entry is one value to place: a zero-based display column on the source row
// and the printed text that belongs under it.
type Entry struct {
	Col  uint32
	Text string
}

// Render produces the diagram rows: a leading blank row, the source row, one
// connector row with '|' at every recorded column, then value rows. Values
// are packed rightmost-first; a value that would collide with one already
// placed in a row drops to the next row, which yields the staircase layout.
// An empty entry list yields nil: the caller falls back to a summary message.
func Render(sourceRow string, entries []Entry) []string {
	if len(entries) == 0 {
		return nil
	}

	ordered := make([]Entry, len(entries))
	copy(ordered, entries)
	// Decreasing column; equal columns keep record order, so an outer node
	// recorded after its operand lands in a later row.
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Col > ordered[j].Col
	})

	rows := packRows(ordered)

	lines := make([]string, 0, len(rows)+3)
	lines = append(lines, "", sourceRow)
	lines = append(lines, connectorLine(ordered))
	for i := range rows {
		lines = append(lines, valueLine(rows, i))
	}
	return lines
}

// packRows assigns each entry (given rightmost-first) to the first row where
// its text fits with at least one space before the nearest value already
// placed to its right.
func packRows(ordered []Entry) [][]Entry {
	var rows [][]Entry

next:
	for _, e := range ordered {
		w := uint32(runewidth.StringWidth(e.Text))
		for i, row := range rows {
			if fits(row, e.Col, w) {
				rows[i] = append(rows[i], e)
				continue next
			}
		}
		rows = append(rows, []Entry{e})
	}
	return rows
}

func fits(row []Entry, col, width uint32) bool {
	for _, placed := range row {
		// Entries arrive right-to-left, so placed.Col >= col except never
		// exactly equal twice in one row; require a one-space gap.
		if col+width >= placed.Col {
			return false
		}
	}
	return true
}

// connectorLine draws '|' at every recorded column.
func connectorLine(ordered []Entry) string {
	var w lineWriter
	cols := uniqueColsAscending(ordered)
	for _, c := range cols {
		w.place(c, "|")
	}
	return w.String()
}

// valueLine draws row i: its values, plus '|' at the columns of values still
// waiting in later rows. Pipes that would sit inside a value's text are
// dropped; the waiting value keeps its column in its own row.
func valueLine(rows [][]Entry, i int) string {
	var pending []uint32
	for _, later := range rows[i+1:] {
		for _, e := range later {
			pending = append(pending, e.Col)
		}
	}

	values := make([]Entry, len(rows[i]))
	copy(values, rows[i])
	sort.Slice(values, func(a, b int) bool { return values[a].Col < values[b].Col })

	var placements []Entry
	for _, c := range dedupAscending(pending) {
		if !coveredBy(values, c) {
			placements = append(placements, Entry{Col: c, Text: "|"})
		}
	}
	placements = append(placements, values...)
	sort.Slice(placements, func(a, b int) bool { return placements[a].Col < placements[b].Col })

	var w lineWriter
	for _, p := range placements {
		w.place(p.Col, p.Text)
	}
	return w.String()
}

func coveredBy(values []Entry, col uint32) bool {
	for _, v := range values {
		w := uint32(runewidth.StringWidth(v.Text))
		if col >= v.Col && col < v.Col+w {
			return true
		}
	}
	return false
}

func uniqueColsAscending(entries []Entry) []uint32 {
	cols := make([]uint32, 0, len(entries))
	for _, e := range entries {
		cols = append(cols, e.Col)
	}
	return dedupAscending(cols)
}

func dedupAscending(cols []uint32) []uint32 {
	sort.Slice(cols, func(i, j int) bool { return cols[i] < cols[j] })
	out := cols[:0]
	var last uint32
	for i, c := range cols {
		if i > 0 && c == last {
			continue
		}
		out = append(out, c)
		last = c
	}
	return out
}

// lineWriter lays text at display columns, padding with spaces. Placements
// must arrive in ascending column order; anything that would start before
// the current width is skipped rather than misaligned.
type lineWriter struct {
	b   strings.Builder
	cur uint32
}

func (w *lineWriter) place(col uint32, text string) {
	if col < w.cur {
		return
	}
	for w.cur < col {
		w.b.WriteByte(' ')
		w.cur++
	}
	w.b.WriteString(text)
	w.cur += uint32(runewidth.StringWidth(text))
}

func (w *lineWriter) String() string {
	return w.b.String()
}
