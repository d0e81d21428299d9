package diag

import (
	"fmt"
	"strings"

	"assay/internal/source"
)

// Format renders diagnostics one per line in a stable form:
// <path>:<line>:<col> <SEV> <CODE> <message>
// The bag should be sorted beforehand for deterministic output.
func Format(bag *Bag, fs *source.FileSet) string {
	if bag == nil || fs == nil || bag.Len() == 0 {
		return ""
	}

	var b strings.Builder
	for i, d := range bag.Items() {
		path, lc, ok := fs.Position(d.Primary)
		if !ok {
			path, lc = "<unknown>", source.LineCol{Line: 1, Col: 1}
		}
		fmt.Fprintf(&b, "%s:%d:%d %s %s %s", path, lc.Line, lc.Col, d.Severity, d.Code, d.Message)
		for _, n := range d.Notes {
			fmt.Fprintf(&b, "\n  note: %s", n.Msg)
		}
		if i < bag.Len()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
