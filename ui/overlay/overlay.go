// Package overlay renders modal boxes on top of the main view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var shadowStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C4C4C4", Dark: "#2F2F2F"})

const shadowChar = "░"

type whitespace struct {
	chars string
	style lipgloss.Style
}

func (w whitespace) render(width int) string {
	if width <= 0 {
		return ""
	}
	chars := w.chars
	if chars == "" {
		chars = " "
	}
	fill := strings.Repeat(chars, width/ansi.StringWidth(chars)+1)
	return w.style.Render(ansi.Truncate(fill, width, ""))
}

// WhitespaceOption sets how gaps left by short background lines are filled.
type WhitespaceOption func(*whitespace)

// WithWhitespaceChars fills gaps with s instead of spaces.
func WithWhitespaceChars(s string) WhitespaceOption {
	return func(w *whitespace) {
		w.chars = s
	}
}

// WithWhitespaceStyle styles the gap filler.
func WithWhitespaceStyle(style lipgloss.Style) WhitespaceOption {
	return func(w *whitespace) {
		w.style = style
	}
}

// PlaceOverlay draws fg over bg with its top-left corner at (x, y), or
// centred when center is set. The overlay is kept inside bg. A foreground at
// least as large as bg replaces it.
func PlaceOverlay(x, y int, fg, bg string, shadow, center bool, opts ...WhitespaceOption) string {
	var ws whitespace
	for _, opt := range opts {
		opt(&ws)
	}

	if shadow {
		fg = addShadow(fg)
	}
	fgLines, fgWidth := linesAndWidth(fg)
	bgLines, bgWidth := linesAndWidth(bg)
	fgHeight, bgHeight := len(fgLines), len(bgLines)

	if fgWidth >= bgWidth && fgHeight >= bgHeight {
		return fg
	}

	if center {
		x = (bgWidth - fgWidth) / 2
		y = (bgHeight - fgHeight) / 2
	}
	x = max(min(x, bgWidth-fgWidth), 0)
	y = max(min(y, bgHeight-fgHeight), 0)

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i < y || i >= y+fgHeight {
			b.WriteString(bgLine)
			continue
		}

		pos := 0
		if x > 0 {
			left := ansi.Truncate(bgLine, x, "")
			pos = ansi.StringWidth(left)
			b.WriteString(left)
			if pos < x {
				b.WriteString(ws.render(x - pos))
				pos = x
			}
		}

		fgLine := fgLines[i-y]
		b.WriteString("\x1b[0m")
		b.WriteString(fgLine)
		b.WriteString("\x1b[0m")
		pos += ansi.StringWidth(fgLine)

		lineWidth := ansi.StringWidth(bgLine)
		if pos < lineWidth {
			b.WriteString(ansi.TruncateLeft(bgLine, pos, ""))
		}
	}
	return b.String()
}

func linesAndWidth(s string) ([]string, int) {
	lines := strings.Split(s, "\n")
	width := 0
	for _, l := range lines {
		width = max(width, ansi.StringWidth(l))
	}
	return lines, width
}

// addShadow pads every line to the same width and adds a one cell drop
// shadow on the right and bottom.
func addShadow(s string) string {
	lines, width := linesAndWidth(s)
	shade := shadowStyle.Render(shadowChar)

	var b strings.Builder
	for i, l := range lines {
		b.WriteString(l)
		b.WriteString(strings.Repeat(" ", width-ansi.StringWidth(l)))
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(shade)
		}
		b.WriteByte('\n')
	}
	b.WriteString(" ")
	b.WriteString(shadowStyle.Render(strings.Repeat(shadowChar, width)))
	return b.String()
}
