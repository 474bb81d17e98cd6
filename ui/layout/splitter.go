package layout

import (
	"fmt"

	"paneldeck/log"
	"paneldeck/ui/pointer"
)

// ResizeDirection is the direction of the last splitter movement. It only
// drives styling.
type ResizeDirection int

const (
	ResizeNone ResizeDirection = iota
	ResizeLeft
	ResizeRight
)

func (d ResizeDirection) String() string {
	switch d {
	case ResizeLeft:
		return "left"
	case ResizeRight:
		return "right"
	default:
		return "none"
	}
}

// SplitterState is the transient geometry of one splitter, in cells relative
// to the container's left edge.
type SplitterState struct {
	Left int
	Min  int
	Max  int
}

// SplitterOption configures a Splitter.
type SplitterOption func(*Splitter)

// WithSplitterWidth sets the width in cells of every interactive splitter.
func WithSplitterWidth(w int) SplitterOption {
	return func(s *Splitter) {
		s.splitterWidth = max(w, 0)
	}
}

// WithMinPanelWidth sets the floor used for panels that declare no MinWidth.
func WithMinPanelWidth(w int) SplitterOption {
	return func(s *Splitter) {
		s.minPanelWidth = max(w, 0)
	}
}

// Splitter converts drags on the N-1 handles between N panels into a
// committed PanelsLayout. Splitter 0 sits at the container's left edge with
// zero width and never moves.
//
// Positions change on every mouse move; the layout only changes on commit
// (mouse up or leave), when setPanelsLayout is called with the new value.
type Splitter struct {
	container       Container
	capture         pointer.Capturer
	panels          []Panel
	layout          PanelsLayout
	setPanelsLayout func(PanelsLayout)

	splitterWidth int
	minPanelWidth int

	states []SplitterState
	width  int // container width the states were computed for

	active     int
	dragOrigin int
	dragStartX int
	direction  ResizeDirection
}

// NewSplitter builds a controller for panels. An initial layout that does not
// match the panels is replaced by an equal split.
func NewSplitter(container Container, capture pointer.Capturer, panels []Panel, initial PanelsLayout, setPanelsLayout func(PanelsLayout), opts ...SplitterOption) *Splitter {
	if capture == nil {
		capture = pointer.Noop{}
	}
	if setPanelsLayout == nil {
		setPanelsLayout = func(PanelsLayout) {}
	}
	s := &Splitter{
		container:       container,
		capture:         capture,
		panels:          panels,
		setPanelsLayout: setPanelsLayout,
		splitterWidth:   SplitterWidth,
		minPanelWidth:   MinPanelWidth,
		active:          -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.layout = s.sanitize(initial)
	s.Resize()
	return s
}

func (s *Splitter) sanitize(l PanelsLayout) PanelsLayout {
	if len(l) != len(s.panels) {
		return EqualLayout(len(s.panels))
	}
	return l.Normalize()
}

// Panels returns the panels managed by the splitter.
func (s *Splitter) Panels() []Panel {
	return s.panels
}

// SetActivePanel marks panel i as the highlighted one and clears the rest. An
// out of range i clears every panel.
func (s *Splitter) SetActivePanel(i int) {
	for j := range s.panels {
		s.panels[j].IsActive = j == i
	}
}

// Layout returns the last committed layout.
func (s *Splitter) Layout() PanelsLayout {
	return s.layout.Clone()
}

// Dragging reports whether a splitter drag is in progress.
func (s *Splitter) Dragging() bool {
	return s.active >= 0
}

// ActiveIndex returns the index of the dragged splitter, or -1.
func (s *Splitter) ActiveIndex() int {
	return s.active
}

// Direction returns the direction of the last movement.
func (s *Splitter) Direction() ResizeDirection {
	return s.direction
}

// SplitterWidth returns the width of interactive splitters in cells.
func (s *Splitter) SplitterWidth() int {
	return s.splitterWidth
}

// States returns a copy of the splitter states.
func (s *Splitter) States() []SplitterState {
	out := make([]SplitterState, len(s.states))
	copy(out, s.states)
	return out
}

func (s *Splitter) minWidth(i int) int {
	if m := s.panels[i].MinWidth; m > 0 {
		return m
	}
	return s.minPanelWidth
}

func (s *Splitter) mins() []int {
	out := make([]int, len(s.panels))
	for i := range s.panels {
		out[i] = s.minWidth(i)
	}
	return out
}

// widthOf returns the width of splitter i. Splitter 0 has no width.
func (s *Splitter) widthOf(i int) int {
	if i == 0 {
		return 0
	}
	return s.splitterWidth
}

// available is the container width left for panels once the interactive
// splitters are accounted for.
func (s *Splitter) available() int {
	return max(s.width-s.splitterWidth*(len(s.panels)-1), 0)
}

func (s *Splitter) measured() bool {
	return len(s.panels) > 0 && !s.container.Bounds().Empty()
}

// calcMinMaxSplittersPositions caches the [min, max] bound of every splitter
// for the current container width.
func (s *Splitter) calcMinMaxSplittersPositions() {
	n := len(s.panels)
	if len(s.states) != n {
		s.states = make([]SplitterState, n)
	}
	mins := s.mins()
	for i := 1; i < n; i++ {
		lo := (i - 1) * s.splitterWidth
		for j := 0; j < i; j++ {
			lo += mins[j]
		}
		hi := s.width - (n-i)*s.splitterWidth
		for j := i; j < n; j++ {
			hi -= mins[j]
		}
		s.states[i].Min = lo
		s.states[i].Max = hi
	}
	s.states[0] = SplitterState{}
}

// applyLayout positions the splitters so panel widths match the committed
// layout at the current container width.
func (s *Splitter) applyLayout() {
	avail := s.available()
	l := s.layout
	if avail > 0 && !s.fits(l, avail) {
		// Restored into a container too narrow for it: the panels above their
		// floor give up space in proportion to what they have to spare.
		floors := make([]float64, len(s.panels))
		for i, m := range s.mins() {
			floors[i] = float64(m) * 100 / float64(avail)
		}
		l = ApplyFloors(l, floors)
	}
	widths := WidthsFromLayout(l, avail, s.mins())
	pos := 0
	for i := range s.panels {
		s.states[i].Left = pos
		pos += s.widthOf(i) + widths[i]
	}
}

// fits reports whether l gives every panel at least its floor at avail cells.
func (s *Splitter) fits(l PanelsLayout, avail int) bool {
	for i, w := range WidthsFromLayout(l, avail, nil) {
		if w < s.minWidth(i) {
			return false
		}
	}
	return true
}

// Resize recomputes bounds for the container's current size and re-applies
// the committed layout. It never commits; a drag in progress is abandoned.
func (s *Splitter) Resize() {
	if s.active >= 0 {
		s.endDrag()
	}
	if !s.measured() {
		s.width = 0
		s.states = make([]SplitterState, len(s.panels))
		return
	}
	s.width = s.container.Bounds().W
	s.calcMinMaxSplittersPositions()
	s.applyLayout()
	log.LayoutTrace("splitter resize: width=%d layout=%v", s.width, s.layout)
}

// SetLayout replaces the committed layout without notifying the owner, e.g.
// when the stored layout changed underneath.
func (s *Splitter) SetLayout(l PanelsLayout) {
	s.layout = s.sanitize(l)
	if s.active >= 0 {
		s.endDrag()
	}
	if s.measured() {
		s.Resize()
	}
}

// OnSplitterMouseDown starts dragging splitter index at pointer column x.
// Splitter 0 and out of range indices are ignored.
func (s *Splitter) OnSplitterMouseDown(index, x int) bool {
	if index < 1 || index >= len(s.panels) || !s.measured() {
		return false
	}
	if s.width != s.container.Bounds().W {
		s.Resize()
	}
	s.calcMinMaxSplittersPositions()
	s.active = index
	s.dragOrigin = s.states[index].Left
	s.dragStartX = x
	s.direction = ResizeNone
	s.capture.Capture(s)
	log.LayoutTrace("splitter %d down at x=%d (left=%d min=%d max=%d)",
		index, x, s.states[index].Left, s.states[index].Min, s.states[index].Max)
	return true
}

// OnMouseMove moves the active splitter by the pointer's travel since the
// drag started, clamped to its bounds, and pushes its neighbours only as far
// as needed to keep the panels in between at their minimum width.
func (s *Splitter) OnMouseMove(x int) {
	if s.active < 0 || !s.measured() {
		return
	}
	k := s.active
	st := s.states[k]
	a := Clamp(s.dragOrigin+(x-s.dragStartX), st.Min, st.Max)
	switch {
	case a < st.Left:
		s.direction = ResizeLeft
	case a > st.Left:
		s.direction = ResizeRight
	}
	s.states[k].Left = a

	mins := s.mins()
	gap := 0
	for i := k - 1; i >= 1; i-- {
		gap += mins[i] + s.splitterWidth
		if s.states[i].Left > a-gap {
			s.states[i].Left = Clamp(a-gap, s.states[i].Min, s.states[i].Max)
		}
	}
	gap = 0
	for i := k + 1; i < len(s.panels); i++ {
		gap += mins[i-1] + s.splitterWidth
		if s.states[i].Left < a+gap {
			s.states[i].Left = Clamp(a+gap, s.states[i].Min, s.states[i].Max)
		}
	}
}

// OnMouseUp commits the current positions as the new layout and releases the
// pointer.
func (s *Splitter) OnMouseUp() {
	if s.active < 0 {
		return
	}
	defer s.endDrag()
	if !s.measured() {
		return
	}

	widths := s.PanelWidths()
	avail := s.available()
	if avail <= 0 {
		return
	}
	next := make(PanelsLayout, len(widths))
	for i, w := range widths {
		next[i] = float64(w) * 100 / float64(avail)
	}
	s.layout = next
	log.LayoutTrace("splitter %d commit: widths=%v layout=%v minified=%v",
		s.active, widths, next, s.MinifiedPanels())
	s.setPanelsLayout(next.Clone())
}

// OnMouseLeave commits exactly like OnMouseUp.
func (s *Splitter) OnMouseLeave() {
	s.OnMouseUp()
}

func (s *Splitter) endDrag() {
	s.active = -1
	s.capture.Release(s)
}

// PointerMove implements pointer.Handler. Motion outside the container ends
// the drag like a mouse leave.
func (s *Splitter) PointerMove(x, y int) {
	if !s.container.Bounds().Contains(x, y) {
		s.OnMouseLeave()
		return
	}
	s.OnMouseMove(x - s.container.Bounds().X)
}

// PointerUp implements pointer.Handler.
func (s *Splitter) PointerUp(x, _ int) {
	if s.active >= 0 && s.measured() {
		s.OnMouseMove(x - s.container.Bounds().X)
	}
	s.OnMouseUp()
}

// PointerLeave implements pointer.Handler.
func (s *Splitter) PointerLeave() {
	s.OnMouseLeave()
}

// MouseDown starts a drag from an absolute terminal position. It reports
// whether (x, y) hit a splitter.
func (s *Splitter) MouseDown(x, y int) bool {
	idx := s.HitSplitter(x, y)
	if idx < 1 {
		return false
	}
	return s.OnSplitterMouseDown(idx, x-s.container.Bounds().X)
}

// Nudge moves splitter index by delta cells and commits, the keyboard
// counterpart of a drag.
func (s *Splitter) Nudge(index, delta int) error {
	if index < 1 || index >= len(s.panels) {
		return fmt.Errorf("splitter %d out of range [1, %d)", index, len(s.panels))
	}
	if !s.OnSplitterMouseDown(index, 0) {
		return nil
	}
	s.OnMouseMove(delta)
	s.OnMouseUp()
	return nil
}

// PanelWidths returns the current width of every panel in cells, including
// uncommitted drag movement.
func (s *Splitter) PanelWidths() []int {
	n := len(s.panels)
	out := make([]int, n)
	if s.width <= 0 {
		return out
	}
	for i := 0; i < n; i++ {
		right := s.width
		if i+1 < n {
			right = s.states[i+1].Left
		}
		out[i] = max(right-s.states[i].Left-s.widthOf(i), 0)
	}
	return out
}

// Minified reports whether panel i is pinned at its floor.
func (s *Splitter) Minified(i int) bool {
	if i < 0 || i >= len(s.panels) || s.width <= 0 {
		return false
	}
	return s.PanelWidths()[i] <= s.minWidth(i)
}

// MinifiedPanels returns the minified flag of every panel.
func (s *Splitter) MinifiedPanels() []bool {
	out := make([]bool, len(s.panels))
	for i := range out {
		out[i] = s.Minified(i)
	}
	return out
}

// PanelRects returns the absolute rectangle of every panel.
func (s *Splitter) PanelRects() []Rect {
	b := s.container.Bounds()
	widths := s.PanelWidths()
	out := make([]Rect, len(s.panels))
	if s.width <= 0 {
		return out
	}
	for i := range s.panels {
		out[i] = Rect{X: b.X + s.states[i].Left + s.widthOf(i), Y: b.Y, W: widths[i], H: b.H}
	}
	return out
}

// SplitterRects returns the absolute rectangle of every interactive splitter,
// indexed by splitter; entry 0 is always empty.
func (s *Splitter) SplitterRects() []Rect {
	b := s.container.Bounds()
	out := make([]Rect, len(s.panels))
	if s.width <= 0 {
		return out
	}
	for i := 1; i < len(s.panels); i++ {
		out[i] = Rect{X: b.X + s.states[i].Left, Y: b.Y, W: s.splitterWidth, H: b.H}
	}
	return out
}

// HitSplitter returns the splitter under (x, y), or -1. A zero width splitter
// is hit on the first column of the panel it leads.
func (s *Splitter) HitSplitter(x, y int) int {
	b := s.container.Bounds()
	if s.width <= 0 || !b.Contains(x, y) {
		return -1
	}
	for i := 1; i < len(s.panels); i++ {
		left := b.X + s.states[i].Left
		if x >= left && x < left+max(s.splitterWidth, 1) {
			return i
		}
	}
	return -1
}

// HitPanel returns the panel under (x, y), or -1.
func (s *Splitter) HitPanel(x, y int) int {
	for i, r := range s.PanelRects() {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
