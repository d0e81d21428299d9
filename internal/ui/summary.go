// Package ui renders the end-of-run summary banner for multi-file checks.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"assay/internal/driver"
)

var (
	passStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	cancelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// Summary tallies a run across files.
type Summary struct {
	Files    int
	Cached   int
	Passed   int
	Failed   int
	Canceled int
	Errored  int
}

// Summarize folds a set of file reports into run totals.
func Summarize(reports []*driver.FileReport) Summary {
	var s Summary
	for _, r := range reports {
		if r == nil {
			continue
		}
		s.Files++
		if r.FromCache {
			s.Cached++
		}
		p, f, c, e := r.Counts()
		s.Passed += p
		s.Failed += f
		s.Canceled += c
		s.Errored += e
	}
	return s
}

// Ok reports whether the run as a whole succeeded. Canceled assertions skip;
// they do not fail the run.
func (s Summary) Ok() bool {
	return s.Failed == 0 && s.Errored == 0
}

// Banner renders the boxed summary. With color off it degrades to the same
// text without styling.
func (s Summary) Banner(colorize bool) string {
	verdict := "PASS"
	verdictStyle := passStyle
	if !s.Ok() {
		verdict = "FAIL"
		verdictStyle = failStyle
	}

	parts := []string{fmt.Sprintf("%d passed", s.Passed)}
	if s.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", s.Failed))
	}
	if s.Canceled > 0 {
		parts = append(parts, fmt.Sprintf("%d canceled", s.Canceled))
	}
	if s.Errored > 0 {
		parts = append(parts, fmt.Sprintf("%d errored", s.Errored))
	}
	counts := strings.Join(parts, ", ")

	files := fmt.Sprintf("%d files", s.Files)
	if s.Files == 1 {
		files = "1 file"
	}
	if s.Cached > 0 {
		files += fmt.Sprintf(" (%d cached)", s.Cached)
	}

	if !colorize {
		return fmt.Sprintf("%s  %s  %s", verdict, counts, files)
	}

	line := verdictStyle.Render(verdict) + "  " + counts + "  " + dimStyle.Render(files)
	if s.Canceled > 0 {
		line = strings.Replace(line,
			fmt.Sprintf("%d canceled", s.Canceled),
			cancelStyle.Render(fmt.Sprintf("%d canceled", s.Canceled)), 1)
	}
	return borderStyle.Render(line)
}
