package dnd

import (
	"time"

	"paneldeck/log"
	"paneldeck/ui/layout"
)

// ActiveTab is the hovered tab and the side of it a drop would land on.
type ActiveTab struct {
	Index          int
	CanDropOnLeft  bool
	CanDropOnRight bool
}

// DragState is the state of one tab drag gesture.
type DragState struct {
	DraggedTabIndex int
	ActiveTab       *ActiveTab
	IsDragging      bool
}

// TabOption configures a TabReorder.
type TabOption func(*TabReorder)

// WithHoverThrottle sets the minimum interval between hover samples.
func WithHoverThrottle(d time.Duration) TabOption {
	return func(r *TabReorder) {
		r.interval = d
	}
}

// WithClock replaces time.Now for the hover throttle.
func WithClock(now func() time.Time) TabOption {
	return func(r *TabReorder) {
		r.now = now
	}
}

// TabReorder tracks a drag of one tab within a horizontal tab list and turns
// the drop into a moveTab call. Only one drag is tracked at a time.
//
// The index passed to moveTab is an insertion gap in [0, tabCount]: the
// dragged tab goes in front of the tab currently at that index, or at the end.
type TabReorder struct {
	moveTab  func(from, to int)
	state    DragState
	interval time.Duration
	now      func() time.Time
	throttle *Throttle
}

// NewTabReorder returns an idle engine calling moveTab on successful drops.
func NewTabReorder(moveTab func(from, to int), opts ...TabOption) *TabReorder {
	r := &TabReorder{
		moveTab:  moveTab,
		interval: DefaultHoverThrottle,
		state:    DragState{DraggedTabIndex: -1},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.throttle = NewThrottle(r.interval, r.now)
	return r
}

// State returns a copy of the drag state.
func (r *TabReorder) State() DragState {
	s := r.state
	if s.ActiveTab != nil {
		at := *s.ActiveTab
		s.ActiveTab = &at
	}
	return s
}

// Dragging reports whether a drag is in progress.
func (r *TabReorder) Dragging() bool {
	return r.state.IsDragging
}

// DraggedIndex returns the index of the dragged tab, or -1.
func (r *TabReorder) DraggedIndex() int {
	if !r.state.IsDragging {
		return -1
	}
	return r.state.DraggedTabIndex
}

// BeginDrag starts dragging the tab at index.
func (r *TabReorder) BeginDrag(index int) {
	r.state = DragState{DraggedTabIndex: index, IsDragging: true}
	r.throttle.Reset()
	log.DragTrace("begin drag tab=%d", index)
}

// OnHover records that the pointer is at column x over the tab at index,
// whose bounds are rect. It reports whether the sample was processed; samples
// arriving within the throttle interval are dropped.
//
// The left half of a tab proposes a drop before it, the right half after it.
// Drops that would leave the dragged tab where it is are suppressed.
func (r *TabReorder) OnHover(index, x int, rect layout.Rect) bool {
	if !r.state.IsDragging || !r.throttle.Allow() {
		return false
	}
	r.state.ActiveTab = r.hoverAt(index, x, rect)
	return true
}

func (r *TabReorder) hoverAt(index, x int, rect layout.Rect) *ActiveTab {
	dragged := r.state.DraggedTabIndex
	if rect.W <= 0 || index == dragged {
		return nil
	}
	onLeft := x < rect.MidX()
	at := &ActiveTab{Index: index}
	switch {
	case onLeft && index != dragged+1:
		at.CanDropOnLeft = true
	case !onLeft && index != dragged-1:
		at.CanDropOnRight = true
	default:
		return nil
	}
	return at
}

// ClearHover forgets the hovered tab, e.g. when the pointer leaves the list.
func (r *TabReorder) ClearHover() {
	r.state.ActiveTab = nil
}

// OnDrop finishes the drag over the tab at target. If the last hover sample
// for target allows a drop, moveTab is called with the insertion gap. The drag
// state is cleared either way. It reports whether moveTab was called.
func (r *TabReorder) OnDrop(target int) bool {
	if !r.state.IsDragging {
		return false
	}
	from := r.state.DraggedTabIndex
	at := r.state.ActiveTab
	r.reset()

	if at == nil || at.Index != target || !(at.CanDropOnLeft || at.CanDropOnRight) {
		log.DragTrace("drop tab=%d on %d: no drop zone", from, target)
		return false
	}
	newIndex := target
	if at.CanDropOnRight {
		newIndex = target + 1
	}
	log.DragTrace("drop tab=%d on %d: moveTab(%d, %d)", from, target, from, newIndex)
	if r.moveTab != nil {
		r.moveTab(from, newIndex)
	}
	return true
}

// EndDrag cancels the drag without moving anything.
func (r *TabReorder) EndDrag() {
	if r.state.IsDragging {
		log.DragTrace("cancel drag tab=%d", r.state.DraggedTabIndex)
	}
	r.reset()
}

func (r *TabReorder) reset() {
	r.state = DragState{DraggedTabIndex: -1}
}

// DropHint reports on which side of the tab at index the drop sliver should
// be drawn.
func (r *TabReorder) DropHint(index int) (left, right bool) {
	at := r.state.ActiveTab
	if !r.state.IsDragging || at == nil || at.Index != index {
		return false, false
	}
	return at.CanDropOnLeft, at.CanDropOnRight
}

// FinalIndex converts an insertion gap produced by a drop into the index the
// moved tab ends up at once it has been removed from from.
func FinalIndex(from, gap int) int {
	if gap > from {
		return gap - 1
	}
	return gap
}
