// Package harness drives a Bubble Tea model the way a terminal would: resize
// events, key presses and left-button mouse gestures, without a program loop.
package harness

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness feeds messages straight into a model's Update.
type Harness struct {
	t     *testing.T
	model tea.Model
}

// New wraps model and sends it an initial width x height resize.
func New(t *testing.T, model tea.Model, width, height int) *Harness {
	t.Helper()
	h := &Harness{t: t, model: model}
	h.Resize(width, height)
	return h
}

// SendMsg delivers msg and returns the command Update produced. The command
// is not run.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// SendKey types the runes of key as one key event.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendKeys types each key in turn.
func (h *Harness) SendKeys(keys ...string) {
	for _, k := range keys {
		h.SendKey(k)
	}
}

// SendSpecialKey sends a non-rune key such as Enter or Esc.
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

func (h *Harness) Resize(width, height int) tea.Cmd {
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

func (h *Harness) View() string {
	return h.model.View()
}

func (h *Harness) mouse(x, y int, action tea.MouseAction) tea.Cmd {
	return h.SendMsg(tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft})
}

// Press sends a left button press at (x, y).
func (h *Harness) Press(x, y int) tea.Cmd { return h.mouse(x, y, tea.MouseActionPress) }

// Motion sends pointer motion with the left button held.
func (h *Harness) Motion(x, y int) tea.Cmd { return h.mouse(x, y, tea.MouseActionMotion) }

// Release sends a left button release at (x, y).
func (h *Harness) Release(x, y int) tea.Cmd { return h.mouse(x, y, tea.MouseActionRelease) }

// Drag presses at (fromX, fromY), moves through every point in via and
// releases at (toX, toY).
func (h *Harness) Drag(fromX, fromY, toX, toY int, via ...[2]int) {
	h.Press(fromX, fromY)
	for _, p := range via {
		h.Motion(p[0], p[1])
	}
	h.Motion(toX, toY)
	h.Release(toX, toY)
}

// Blur reports that the terminal lost focus.
func (h *Harness) Blur() tea.Cmd {
	return h.SendMsg(tea.BlurMsg{})
}

// Size is a named terminal size.
type Size struct {
	Name          string
	Width, Height int
}

// Sizes covers each layout mode from the supported minimum up.
var Sizes = []Size{
	{Name: "minimum", Width: 80, Height: 24},
	{Name: "compact", Width: 100, Height: 30},
	{Name: "standard", Width: 120, Height: 40},
	{Name: "wide", Width: 200, Height: 24},
	{Name: "large", Width: 200, Height: 50},
}

// RunSizes runs fn as a subtest for every entry of Sizes.
func RunSizes(t *testing.T, fn func(t *testing.T, size Size)) {
	for _, size := range Sizes {
		t.Run(size.Name, func(t *testing.T) {
			fn(t, size)
		})
	}
}
