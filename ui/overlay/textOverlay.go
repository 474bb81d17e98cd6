package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextOverlay shows a block of text until any key is pressed.
type TextOverlay struct {
	Dismissed bool
	content   string
	width     int

	// OnDismiss runs once when the overlay closes.
	OnDismiss func()
}

func NewTextOverlay(content string) *TextOverlay {
	return &TextOverlay{content: content, width: 60}
}

// HandleKeyPress closes the overlay on any key.
func (t *TextOverlay) HandleKeyPress(tea.KeyMsg) bool {
	if !t.Dismissed && t.OnDismiss != nil {
		t.OnDismiss()
	}
	t.Dismissed = true
	return true
}

// SetWidth sets the width of the overlay
func (t *TextOverlay) SetWidth(width int) {
	t.width = width
}

func (t *TextOverlay) Render() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(t.width)
	return box.Render(t.content)
}
