// Package screen reads rendered deck output the way a user sees it: as rows
// of terminal cells with styling removed.
package screen

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/ansi"
)

// StripANSI removes styling and hyperlink escapes.
func StripANSI(s string) string {
	return xansi.Strip(s)
}

// Lines returns the number of rows in the output.
func Lines(s string) int {
	return len(strings.Split(s, "\n"))
}

// Width returns the widest row in terminal cells.
func Width(s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		w = max(w, ansi.PrintableRuneWidth(line))
	}
	return w
}

// Row returns row n with styling removed, or "" past either end.
func Row(s string, n int) string {
	lines := strings.Split(StripANSI(s), "\n")
	if n < 0 || n >= len(lines) {
		return ""
	}
	return lines[n]
}

// Locate returns the cell column and row where text first appears, or
// (-1, -1). Columns count cells, so wide runes before the match count twice.
func Locate(s, text string) (x, y int) {
	for i, line := range strings.Split(StripANSI(s), "\n") {
		if j := strings.Index(line, text); j >= 0 {
			return xansi.StringWidth(line[:j]), i
		}
	}
	return -1, -1
}

// Column returns the cells at column x of every row, top to bottom. Rows
// shorter than x+1 cells contribute a space.
func Column(s string, x int) string {
	var b strings.Builder
	for _, line := range strings.Split(StripANSI(s), "\n") {
		cell := xansi.Truncate(xansi.TruncateLeft(line, x, ""), 1, "")
		if cell == "" {
			cell = " "
		}
		b.WriteString(cell)
	}
	return b.String()
}
