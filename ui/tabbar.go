package ui

import (
	"strings"

	"paneldeck/ui/layout"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// maxTabTitleWidth caps a tab title before the bar has to shrink tabs to fit.
const maxTabTitleWidth = 24

const ellipsis = "…"

// DropHintFunc reports whether a drop sliver belongs on the left or right of
// the tab at index.
type DropHintFunc func(index int) (left, right bool)

// TabBar renders a window's tab strip and maps cells back to tabs. Every tab
// is preceded by a one cell gap that doubles as the drop sliver.
type TabBar struct {
	area     layout.Rect
	titles   []string
	selected int
	padding  int

	dragged int
	hint    DropHintFunc

	// computed by layoutTabs
	shown []string
	rects []layout.Rect
}

func NewTabBar() *TabBar {
	return &TabBar{padding: 1, dragged: -1}
}

// SetArea places the bar. Only the first row of r is used.
func (b *TabBar) SetArea(r layout.Rect) {
	b.area = r
	b.layoutTabs()
}

// SetTabs replaces the tab titles and the selected index.
func (b *TabBar) SetTabs(titles []string, selected int) {
	b.titles = titles
	b.selected = selected
	b.layoutTabs()
}

// SetPadding sets the cells on each side of a title.
func (b *TabBar) SetPadding(p int) {
	b.padding = max(p, 0)
	b.layoutTabs()
}

// SetDrag marks the dragged tab (-1 for none) and where drop slivers go.
func (b *TabBar) SetDrag(dragged int, hint DropHintFunc) {
	b.dragged = dragged
	b.hint = hint
}

func (b *TabBar) titleBudget() int {
	n := len(b.titles)
	if n == 0 {
		return 0
	}
	budget := maxTabTitleWidth
	total := n + 1
	for _, t := range b.titles {
		total += 2*b.padding + min(runewidth.StringWidth(t), budget)
	}
	if total <= b.area.W {
		return budget
	}
	return max((b.area.W-(n+1)-2*b.padding*n)/n, 1)
}

func (b *TabBar) layoutTabs() {
	budget := b.titleBudget()
	b.shown = make([]string, len(b.titles))
	b.rects = make([]layout.Rect, len(b.titles))

	x := b.area.X
	right := b.area.Right()
	for i, t := range b.titles {
		if runewidth.StringWidth(t) > budget {
			t = truncate.StringWithTail(t, uint(budget), ellipsis)
		}
		b.shown[i] = t
		w := 1 + 2*b.padding + runewidth.StringWidth(t)
		if x < right {
			b.rects[i] = layout.Rect{X: x, Y: b.area.Y, W: min(w, right-x), H: 1}
		} else {
			b.rects[i] = layout.Rect{X: right, Y: b.area.Y, H: 1}
		}
		x += w
	}
}

// Rects returns the hit rectangle of every tab, leading gap included. Tabs
// pushed past the edge have an empty rectangle.
func (b *TabBar) Rects() []layout.Rect {
	return b.rects
}

// TabAt returns the tab under (x, y). The empty space after the last tab
// belongs to the last tab, so dropping there appends.
func (b *TabBar) TabAt(x, y int) (int, layout.Rect, bool) {
	bar := layout.TabBarArea(b.area)
	if !bar.Contains(x, y) || len(b.rects) == 0 {
		return -1, layout.Rect{}, false
	}
	for i, r := range b.rects {
		if r.Contains(x, y) {
			return i, r, true
		}
	}
	last := len(b.rects) - 1
	if r := b.rects[last]; r.W > 0 && x >= r.Right() {
		return last, r, true
	}
	return -1, layout.Rect{}, false
}

func (b *TabBar) gap(i int) string {
	if b.hint != nil {
		var left, right bool
		if i < len(b.titles) {
			left, _ = b.hint(i)
		}
		if i > 0 {
			_, right = b.hint(i - 1)
		}
		if left || right {
			return dropHintStyle.Render(DropHintChar)
		}
	}
	return tabGapStyle.Render(" ")
}

func (b *TabBar) String() string {
	if b.area.W <= 0 {
		return ""
	}
	var s strings.Builder
	pad := strings.Repeat(" ", b.padding)
	for i, t := range b.shown {
		style := tabStyle
		switch {
		case i == b.dragged:
			style = draggedTabStyle
		case i == b.selected:
			style = selectedTabStyle
		}
		s.WriteString(b.gap(i))
		s.WriteString(style.Render(pad + t + pad))
	}
	s.WriteString(b.gap(len(b.shown)))

	line := truncate.String(s.String(), uint(b.area.W))
	return lipgloss.PlaceHorizontal(b.area.W, lipgloss.Left, line)
}
