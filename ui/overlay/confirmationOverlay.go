package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationOverlay asks a yes/no question.
type ConfirmationOverlay struct {
	Dismissed bool
	message   string
	width     int

	OnConfirm func()
	OnCancel  func()
}

func NewConfirmationOverlay(message string) *ConfirmationOverlay {
	return &ConfirmationOverlay{message: message, width: 50}
}

// HandleKeyPress processes a key press and reports whether the overlay should close.
func (c *ConfirmationOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "y", "Y", "enter":
		c.Dismissed = true
		if c.OnConfirm != nil {
			c.OnConfirm()
		}
		return true
	case "n", "N", "esc":
		c.Dismissed = true
		if c.OnCancel != nil {
			c.OnCancel()
		}
		return true
	}
	return false
}

// SetWidth sets the width of the overlay
func (c *ConfirmationOverlay) SetWidth(width int) {
	c.width = width
}

func (c *ConfirmationOverlay) Render() string {
	messageStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#de613e"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#de613e")).
		Padding(1, 2).
		Width(c.width)

	return box.Render(messageStyle.Render(c.message) + "\n\n" + hintStyle.Render("[y] Confirm  [n] Cancel"))
}
