package app

import (
	"paneldeck/log"
	"paneldeck/ui"
	"paneldeck/ui/dnd"

	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse routes a mouse message. Presses start gestures; motion and
// releases go to whichever handler captured the pointer.
func (m *home) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.state != stateDefault {
		return nil
	}
	log.InputTrace("mouse %s at %d,%d", msg.String(), msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		m.scrollAt(msg.X, msg.Y, -1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		m.scrollAt(msg.X, msg.Y, 1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.handlePress(msg.X, msg.Y)
	default:
		m.router.Handle(msg)
		if m.windowSplit.Dragging() {
			m.followWindowDrag()
		}
	}

	cmd := m.flush()
	m.updateDragVisuals()
	if m.gesture != nil && m.gesture.Done() {
		m.gesture = nil
	}
	return cmd
}

func (m *home) handlePress(x, y int) {
	// A press while a gesture is captured means the release got lost.
	if m.router.Active() {
		m.router.Leave()
	}
	if m.windowSplit.MouseDown(x, y) {
		log.InputTrace("window splitter %d grabbed", m.windowSplit.ActiveIndex())
		return
	}

	for i, c := range m.windows {
		if !c.area.Contains(x, y) {
			continue
		}
		_ = m.deck.Focus(i)
		if idx, _, ok := c.tabs.TabAt(x, y); ok {
			m.startTabDrag(i, idx)
			return
		}
		if c.splitter.MouseDown(x, y) {
			return
		}
		if p := c.splitter.HitPanel(x, y); p >= 0 {
			c.split.SetFocused(p)
			m.rememberFocus(c)
		}
		return
	}
}

// startTabDrag selects the pressed tab and begins a drag gesture for it.
func (m *home) startTabDrag(window, tab int) {
	w := m.deck.Windows[window]
	if w.Selected != tab {
		if err := w.Select(tab); err != nil {
			m.pendingErr = err
			return
		}
		m.rebuild()
		m.needSave = true
	}

	c := m.windows[window]
	sides := make([]*dnd.SideDropTarget, len(m.windows))
	for i, other := range m.windows {
		sides[i] = other.side
	}
	m.edge.SetEnabled(m.deck.CanAddWindow())

	m.gesture = dnd.StartGesture(
		m.router,
		dnd.DraggedTab{Window: window, Index: tab},
		c.reorder,
		c.tabs.TabAt,
		sides,
		m.edge,
		m.finishGesture,
	)
	m.menu.SetState(ui.StateDragging)
}

func (m *home) finishGesture(kind dnd.DropKind) {
	log.InfoLog.Printf("tab drag finished: %s", kind)
	m.menu.SetState(ui.StateDefault)
	m.writeInspectSnapshot()
}

// cancelGesture ends a tab drag without dropping. Splitter drags are
// abandoned by their own Resize.
func (m *home) cancelGesture() {
	if m.gestureActive() {
		m.gesture.Cancel()
	}
	m.gesture = nil
}

func (m *home) gestureActive() bool {
	return m.gesture != nil && !m.gesture.Done()
}

func (m *home) scrollAt(x, y, delta int) {
	for _, c := range m.windows {
		if p := c.splitter.HitPanel(x, y); p >= 0 {
			c.split.SetFocused(p)
			m.rememberFocus(c)
			c.split.ScrollFocused(delta)
			return
		}
	}
}
