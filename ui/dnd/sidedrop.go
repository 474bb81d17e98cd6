package dnd

import (
	"paneldeck/log"
	"paneldeck/ui/layout"
)

// DraggedTab identifies the tab being dragged: its window and its index in
// that window's tab list.
type DraggedTab struct {
	Window int
	Index  int
}

// HoverState describes where a dragged tab is relative to a window.
type HoverState struct {
	IsOverContent   bool
	IsOverLeftSide  bool
	IsOverRightSide bool
	CanDropOnLeft   bool
	CanDropOnRight  bool
}

// SideDropConfig configures the drop zones at a window's edges.
type SideDropConfig struct {
	// OffsetTop is the number of rows at the top of the window (its tab bar)
	// that never accept a side drop.
	OffsetTop int
	// DroppableAreaPercent is the share of the window's width, at each edge,
	// that accepts a drop.
	DroppableAreaPercent float64

	LeftDropAreaEnabled  bool
	RightDropAreaEnabled bool
}

// DefaultSideDropConfig enables both edges below the tab bar.
func DefaultSideDropConfig() SideDropConfig {
	return SideDropConfig{
		OffsetTop:            layout.TabBarHeight,
		DroppableAreaPercent: layout.SideDropPercent,
		LeftDropAreaEnabled:  true,
		RightDropAreaEnabled: true,
	}
}

// SideDropTarget offers the left and right edges of a window as drop zones
// that move the dragged tab to another window.
type SideDropTarget struct {
	container   layout.Container
	cfg         SideDropConfig
	onDropLeft  func(DraggedTab)
	onDropRight func(DraggedTab)
	hover       HoverState
}

// NewSideDropTarget builds a target over container. A zero or negative
// DroppableAreaPercent falls back to the default.
func NewSideDropTarget(container layout.Container, cfg SideDropConfig, onDropLeft, onDropRight func(DraggedTab)) *SideDropTarget {
	if cfg.DroppableAreaPercent <= 0 {
		cfg.DroppableAreaPercent = layout.SideDropPercent
	}
	return &SideDropTarget{
		container:   container,
		cfg:         cfg,
		onDropLeft:  onDropLeft,
		onDropRight: onDropRight,
	}
}

// Active reports whether the target takes part in hit testing at all. With
// both edges disabled it is a passthrough.
func (t *SideDropTarget) Active() bool {
	return t.cfg.LeftDropAreaEnabled || t.cfg.RightDropAreaEnabled
}

// Config returns the target configuration.
func (t *SideDropTarget) Config() SideDropConfig {
	return t.cfg
}

// HoverState returns the last computed hover state.
func (t *SideDropTarget) HoverState() HoverState {
	return t.hover
}

func (t *SideDropTarget) zoneWidth(b layout.Rect) float64 {
	return t.cfg.DroppableAreaPercent * float64(b.W) / 100
}

// OnHover recomputes the hover state for a pointer at (x, y).
func (t *SideDropTarget) OnHover(x, y int) HoverState {
	t.hover = HoverState{}
	b := t.container.Bounds()
	if !t.Active() || b.Empty() {
		return t.hover
	}
	h := HoverState{
		IsOverContent: b.Contains(x, y) && y >= b.Y+t.cfg.OffsetTop,
	}
	if h.IsOverContent {
		h.IsOverLeftSide = x < b.MidX()
		h.IsOverRightSide = !h.IsOverLeftSide
	}
	zone := t.zoneWidth(b)
	h.CanDropOnLeft = t.cfg.LeftDropAreaEnabled && h.IsOverLeftSide &&
		float64(x) < float64(b.X)+zone
	h.CanDropOnRight = t.cfg.RightDropAreaEnabled && h.IsOverRightSide &&
		float64(x) >= float64(b.Right())-zone
	t.hover = h
	return h
}

// OnDrop calls the callback of the edge under the last hover sample. It
// reports whether a callback ran. The hover state is cleared.
func (t *SideDropTarget) OnDrop(tab DraggedTab) bool {
	h := t.hover
	t.hover = HoverState{}
	if !t.Active() {
		return false
	}
	switch {
	case h.CanDropOnLeft && t.cfg.LeftDropAreaEnabled:
		log.DragTrace("side drop left: window=%d tab=%d", tab.Window, tab.Index)
		if t.onDropLeft != nil {
			t.onDropLeft(tab)
		}
		return true
	case h.CanDropOnRight && t.cfg.RightDropAreaEnabled:
		log.DragTrace("side drop right: window=%d tab=%d", tab.Window, tab.Index)
		if t.onDropRight != nil {
			t.onDropRight(tab)
		}
		return true
	}
	return false
}

// Clear forgets the last hover sample.
func (t *SideDropTarget) Clear() {
	t.hover = HoverState{}
}

// Zones returns the left and right drop areas. Disabled edges return empty
// rectangles.
func (t *SideDropTarget) Zones() (left, right layout.Rect) {
	b := t.container.Bounds()
	if b.Empty() {
		return
	}
	top := b.Y + t.cfg.OffsetTop
	h := max(b.Bottom()-top, 0)
	w := int(t.zoneWidth(b))
	if w <= 0 && t.zoneWidth(b) > 0 {
		w = 1
	}
	if t.cfg.LeftDropAreaEnabled {
		left = layout.Rect{X: b.X, Y: top, W: w, H: h}
	}
	if t.cfg.RightDropAreaEnabled {
		right = layout.Rect{X: b.Right() - w, Y: top, W: w, H: h}
	}
	return
}
