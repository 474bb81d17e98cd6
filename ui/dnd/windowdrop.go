package dnd

import (
	"paneldeck/log"
	"paneldeck/ui/layout"
)

// WindowSideDropTarget is the drop zone at the right edge of the whole
// application: a column of WindowDropWidth cells below the first
// WindowDropOffset rows. Dropping there moves the tab into a new window.
type WindowSideDropTarget struct {
	container          layout.Container
	moveTabToNewWindow func(DraggedTab)
	enabled            bool
	over               bool
}

// NewWindowSideDropTarget returns an enabled target over container.
func NewWindowSideDropTarget(container layout.Container, moveTabToNewWindow func(DraggedTab)) *WindowSideDropTarget {
	return &WindowSideDropTarget{
		container:          container,
		moveTabToNewWindow: moveTabToNewWindow,
		enabled:            true,
	}
}

// SetEnabled turns the target on or off, e.g. when no more windows may be
// opened.
func (t *WindowSideDropTarget) SetEnabled(enabled bool) {
	t.enabled = enabled
	if !enabled {
		t.over = false
	}
}

// Enabled reports whether the target accepts drops.
func (t *WindowSideDropTarget) Enabled() bool {
	return t.enabled
}

// Zone returns the drop area, or an empty rectangle when disabled or not
// measured.
func (t *WindowSideDropTarget) Zone() layout.Rect {
	b := t.container.Bounds()
	if !t.enabled || b.Empty() {
		return layout.Rect{}
	}
	w := min(layout.WindowDropWidth, b.W)
	top := b.Y + min(layout.WindowDropOffset, b.H)
	return layout.Rect{X: b.Right() - w, Y: top, W: w, H: b.Bottom() - top}
}

// OnHover records whether (x, y) is over the zone and returns it.
func (t *WindowSideDropTarget) OnHover(x, y int) bool {
	t.over = t.Zone().Contains(x, y)
	return t.over
}

// IsOver reports the last hover result.
func (t *WindowSideDropTarget) IsOver() bool {
	return t.over
}

// OnDrop moves tab into a new window if the last hover was over the zone.
func (t *WindowSideDropTarget) OnDrop(tab DraggedTab) bool {
	over := t.over
	t.over = false
	if !over || !t.enabled {
		return false
	}
	log.DragTrace("window edge drop: window=%d tab=%d", tab.Window, tab.Index)
	if t.moveTabToNewWindow != nil {
		t.moveTabToNewWindow(tab)
	}
	return true
}

// Clear forgets the last hover sample.
func (t *WindowSideDropTarget) Clear() {
	t.over = false
}
