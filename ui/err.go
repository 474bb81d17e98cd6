package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var errStyle = lipgloss.NewStyle().Foreground(ErrorColor)

// ErrBox shows the most recent application error on one line below the
// windows.
type ErrBox struct {
	height, width int
	err           error
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

func (e *ErrBox) SetError(err error) {
	e.err = err
}

func (e *ErrBox) Clear() {
	e.err = nil
}

func (e *ErrBox) Err() error {
	return e.err
}

func (e *ErrBox) SetSize(width, height int) {
	e.width = width
	e.height = height
}

func (e *ErrBox) String() string {
	var msg string
	if e.err != nil {
		msg = strings.ReplaceAll(e.err.Error(), "\n", " ")
		if e.width > 4 {
			msg = truncate.StringWithTail(msg, uint(e.width-4), ellipsis)
		}
		msg = errStyle.Render(msg)
	}
	return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Center, msg)
}
