package dnd

import (
	"paneldeck/log"
	"paneldeck/ui/layout"
	"paneldeck/ui/pointer"
)

// DropKind is the outcome of a tab gesture.
type DropKind int

const (
	DropNone DropKind = iota
	DropReorder
	DropSide
	DropNewWindow
)

func (k DropKind) String() string {
	switch k {
	case DropReorder:
		return "reorder"
	case DropSide:
		return "side"
	case DropNewWindow:
		return "new-window"
	default:
		return "none"
	}
}

// TabHit locates the tab under (x, y) in the source window's tab bar.
type TabHit func(x, y int) (index int, rect layout.Rect, ok bool)

// Gesture routes the pointer events of one tab drag to the in-list reorder
// engine, the side drop targets of every window and the application-edge
// target. Drops over the tab bar reorder; anywhere else the first side target
// that accepts wins, then the application edge.
type Gesture struct {
	capture  pointer.Capturer
	source   DraggedTab
	reorder  *TabReorder
	hitTab   TabHit
	sides    []*SideDropTarget
	edge     *WindowSideDropTarget
	onFinish func(DropKind)
	done     bool
}

// StartGesture begins dragging source and captures the pointer. Inactive side
// targets are skipped; edge may be nil.
func StartGesture(capture pointer.Capturer, source DraggedTab, reorder *TabReorder, hitTab TabHit,
	sides []*SideDropTarget, edge *WindowSideDropTarget, onFinish func(DropKind)) *Gesture {
	if capture == nil {
		capture = pointer.Noop{}
	}
	active := make([]*SideDropTarget, 0, len(sides))
	for _, s := range sides {
		if s != nil && s.Active() {
			active = append(active, s)
		}
	}
	g := &Gesture{
		capture:  capture,
		source:   source,
		reorder:  reorder,
		hitTab:   hitTab,
		sides:    active,
		edge:     edge,
		onFinish: onFinish,
	}
	reorder.BeginDrag(source.Index)
	capture.Capture(g)
	return g
}

// Source returns the dragged tab.
func (g *Gesture) Source() DraggedTab {
	return g.source
}

// Done reports whether the gesture has finished.
func (g *Gesture) Done() bool {
	return g.done
}

func (g *Gesture) clearTargets() {
	for _, s := range g.sides {
		s.Clear()
	}
	if g.edge != nil {
		g.edge.Clear()
	}
}

func (g *Gesture) hoverTargets(x, y int) {
	for _, s := range g.sides {
		s.OnHover(x, y)
	}
	if g.edge != nil {
		g.edge.OnHover(x, y)
	}
}

// PointerMove implements pointer.Handler.
func (g *Gesture) PointerMove(x, y int) {
	if g.done {
		return
	}
	if idx, rect, ok := g.hitTab(x, y); ok {
		g.clearTargets()
		g.reorder.OnHover(idx, x, rect)
		return
	}
	g.reorder.ClearHover()
	g.hoverTargets(x, y)
}

// PointerUp implements pointer.Handler. The release position is sampled
// without throttling so the drop matches where the tab was let go.
func (g *Gesture) PointerUp(x, y int) {
	if g.done {
		return
	}
	kind := DropNone
	if idx, rect, ok := g.hitTab(x, y); ok {
		g.clearTargets()
		if g.reorder.Dragging() {
			g.reorder.state.ActiveTab = g.reorder.hoverAt(idx, x, rect)
		}
		if g.reorder.OnDrop(idx) {
			kind = DropReorder
		}
	} else {
		g.reorder.EndDrag()
		g.hoverTargets(x, y)
		kind = g.dropOnTargets()
	}
	g.finish(kind)
}

func (g *Gesture) dropOnTargets() DropKind {
	defer g.clearTargets()
	for _, s := range g.sides {
		if s.OnDrop(g.source) {
			return DropSide
		}
	}
	if g.edge != nil && g.edge.OnDrop(g.source) {
		return DropNewWindow
	}
	return DropNone
}

// PointerLeave implements pointer.Handler. Leaving cancels the drag.
func (g *Gesture) PointerLeave() {
	if g.done {
		return
	}
	g.reorder.EndDrag()
	g.clearTargets()
	g.finish(DropNone)
}

// Cancel ends the gesture without dropping, e.g. on escape.
func (g *Gesture) Cancel() {
	g.PointerLeave()
}

func (g *Gesture) finish(kind DropKind) {
	g.done = true
	g.capture.Release(g)
	log.DragTrace("gesture finished: window=%d tab=%d result=%s", g.source.Window, g.source.Index, kind)
	if g.onFinish != nil {
		g.onFinish(kind)
	}
}
