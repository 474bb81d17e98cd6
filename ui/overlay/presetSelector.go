package overlay

import (
	"fmt"
	"strings"

	"paneldeck/workspace"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PresetSelectorOverlay lets the user pick the panel preset of a new workspace.
type PresetSelectorOverlay struct {
	Dismissed bool
	// Selected is the chosen preset name; empty when cancelled.
	Selected string
	options  []workspace.Preset
	cursor   int
	width    int
}

// NewPresetSelectorOverlay lists presets with the cursor on the first one.
func NewPresetSelectorOverlay(presets []workspace.Preset) *PresetSelectorOverlay {
	return &PresetSelectorOverlay{
		options: presets,
		width:   60,
	}
}

// HandleKeyPress processes a key press and reports whether the overlay should close.
func (m *PresetSelectorOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch s := msg.String(); s {
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "enter":
		return m.choose(m.cursor)
	case "esc":
		m.Dismissed = true
		return true
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			return m.choose(int(s[0] - '1'))
		}
	}
	return false
}

func (m *PresetSelectorOverlay) choose(i int) bool {
	if i < 0 || i >= len(m.options) {
		return false
	}
	m.cursor = i
	m.Selected = m.options[i].Name
	m.Dismissed = true
	return true
}

// moveCursor moves the cursor, wrapping around.
func (m *PresetSelectorOverlay) moveCursor(delta int) {
	n := len(m.options)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
}

// Cursor returns the highlighted option index.
func (m *PresetSelectorOverlay) Cursor() int {
	return m.cursor
}

// Render renders the preset selector overlay
func (m *PresetSelectorOverlay) Render() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF"))

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7aa2f7")).
		Bold(true)

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		PaddingLeft(5)

	var content strings.Builder
	content.WriteString(titleStyle.Render("New Workspace"))
	content.WriteString("\n\n")

	for i, opt := range m.options {
		prefix, nameStyle := "  ", normalStyle
		if i == m.cursor {
			prefix, nameStyle = "> ", selectedStyle
		}
		content.WriteString(prefix)
		content.WriteString(nameStyle.Render(fmt.Sprintf("%d %s", i+1, opt.Name)))
		content.WriteString("\n")

		titles := make([]string, len(opt.Panels))
		for j, p := range opt.Panels {
			titles[j] = p.Title
		}
		content.WriteString(descStyle.Render(opt.Description))
		content.WriteString("\n")
		content.WriteString(descStyle.Render(strings.Join(titles, " | ")))
		content.WriteString("\n\n")
	}

	content.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Render(
		"[Enter] Select  [Esc] Cancel  [↑/↓] Navigate"))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7aa2f7")).
		Padding(1, 2).
		Width(m.width)

	return borderStyle.Render(content.String())
}

// SetWidth sets the width of the overlay
func (m *PresetSelectorOverlay) SetWidth(width int) {
	m.width = width
}
