package app

import (
	"fmt"

	"paneldeck/inspect"
	"paneldeck/log"
)

// writeInspectSnapshot records the current layout when inspection mode is on.
func (m *home) writeInspectSnapshot() {
	if !inspect.IsEnabled() {
		return
	}
	if err := inspect.WriteSnapshot(m.inspectSnapshot()); err != nil {
		log.WarningLog.Printf("failed to write inspect snapshot: %v", err)
	}
}

func (m *home) inspectSnapshot() *inspect.Snapshot {
	info := inspect.AppStateInfo{
		State:         m.state.String(),
		HasOverlay:    m.state != stateDefault,
		WindowCount:   len(m.deck.Windows),
		FocusedWindow: m.deck.Focused,
	}
	if info.HasOverlay {
		info.OverlayType = m.state.String()
	}
	if err := m.errBox.Err(); err != nil {
		info.ErrorMessage = err.Error()
	}

	root := inspect.NewNode("Deck").WithRect(m.constraints.Content)
	for i, c := range m.windows {
		root.AddChild(c.view.InspectNode().WithID(fmt.Sprint(i)).WithState("workspace", c.ws.Title))
	}

	return inspect.NewSnapshot().
		WithTerminal(m.constraints.TerminalWidth, m.constraints.TerminalHeight).
		WithAppState(info).
		WithLayout(m.constraints, m.degradation, m.deck.Layout).
		WithDrag(m.dragInfo()).
		WithComponents(root)
}

func (m *home) dragInfo() inspect.DragInfo {
	switch {
	case m.gestureActive():
		src := m.gesture.Source()
		return inspect.DragInfo{Active: true, Kind: "tab", Window: src.Window, Index: src.Index}
	case m.windowSplit.Dragging():
		return inspect.DragInfo{Active: true, Kind: "window_splitter", Index: m.windowSplit.ActiveIndex()}
	}
	for i, c := range m.windows {
		if c.splitter.Dragging() {
			return inspect.DragInfo{Active: true, Kind: "splitter", Window: i, Index: c.splitter.ActiveIndex()}
		}
	}
	return inspect.DragInfo{}
}
