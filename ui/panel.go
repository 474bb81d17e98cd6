package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

var panelDescriptions = map[string]string{
	"events":    "Chronological feed of everything that happened in this workspace.",
	"messages":  "Conversation threads, newest first.",
	"search":    "Query results for the current filter.",
	"bookmarks": "Pinned items saved for later.",
}

// PanelView renders one panel of a split. Minified panels collapse to a one
// column rail with the title running down it.
type PanelView struct {
	kind    string
	title   string
	percent float64
	updated time.Time

	width, height int
	accent        lipgloss.TerminalColor
	active        bool
	minified      bool
	hideTitle     bool

	viewport viewport.Model
}

func NewPanelView(kind, title string) *PanelView {
	return &PanelView{
		kind:     kind,
		title:    title,
		viewport: viewport.New(0, 0),
	}
}

func (p *PanelView) SetSize(width, height int) {
	p.width = max(width, 0)
	p.height = max(height, 0)
}

func (p *PanelView) SetActive(active bool)     { p.active = active }
func (p *PanelView) SetMinified(minified bool) { p.minified = minified }
func (p *PanelView) SetHideTitle(hide bool)    { p.hideTitle = hide }

// SetAccent sets the colour of the rail and of the title while active. Nil
// falls back to the colour of the panel kind.
func (p *PanelView) SetAccent(c lipgloss.TerminalColor) { p.accent = c }

func (p *PanelView) accentColor() lipgloss.TerminalColor {
	if p.accent != nil {
		return p.accent
	}
	return PanelColor(p.kind)
}

// titleStyle is the header style: the accent and bold when active, muted
// otherwise.
func (p *PanelView) titleStyle() lipgloss.Style {
	var fg lipgloss.TerminalColor = TextSecondary
	if p.active {
		fg = p.accentColor()
	}
	return lipgloss.NewStyle().Foreground(fg).Bold(p.active)
}

// SetInfo updates the committed share and the workspace's last change.
func (p *PanelView) SetInfo(percent float64, updated time.Time) {
	p.percent = percent
	p.updated = updated
}

// ScrollDown and ScrollUp move the body by one line.
func (p *PanelView) ScrollDown() { p.viewport.LineDown(1) }
func (p *PanelView) ScrollUp()   { p.viewport.LineUp(1) }

func (p *PanelView) body(width int) string {
	desc, ok := panelDescriptions[p.kind]
	if !ok {
		desc = p.kind
	}
	lines := []string{
		wordwrap.String(desc, width),
		"",
		TextStyles.Muted.Render(fmt.Sprintf("%d cols · %.1f%%", p.width, p.percent)),
	}
	if !p.updated.IsZero() {
		lines = append(lines, TextStyles.Muted.Render("updated "+FormatRelativeTime(p.updated)))
	}
	return strings.Join(lines, "\n")
}

func (p *PanelView) renderRail() string {
	style := lipgloss.NewStyle().Foreground(p.accentColor())
	rows := make([]string, 0, p.height)
	rows = append(rows, style.Render(IconMinified))
	for _, r := range []rune(p.title) {
		if len(rows) >= p.height {
			break
		}
		rows = append(rows, style.Render(string(r)))
	}
	for len(rows) < p.height {
		rows = append(rows, " ")
	}
	return lipgloss.NewStyle().Width(p.width).Render(strings.Join(rows, "\n"))
}

func (p *PanelView) String() string {
	if p.width == 0 || p.height == 0 {
		return ""
	}
	if p.minified {
		return p.renderRail()
	}

	inner := max(p.width-1, 1)

	var header string
	bodyHeight := p.height
	if !p.hideTitle {
		title := truncate.StringWithTail(p.title, uint(inner), ellipsis)
		header = p.titleStyle().
			Width(p.width).
			Render(" " + title)
		bodyHeight--
	}

	p.viewport.Width = inner
	p.viewport.Height = max(bodyHeight, 0)
	p.viewport.SetContent(p.body(inner))

	body := lipgloss.NewStyle().
		PaddingLeft(1).
		Width(p.width).
		Height(max(bodyHeight, 0)).
		Render(p.viewport.View())
	if header == "" {
		return body
	}
	if bodyHeight <= 0 {
		return header
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}
