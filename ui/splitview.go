package ui

import (
	"strings"
	"time"

	"paneldeck/ui/layout"

	"github.com/charmbracelet/lipgloss"
)

// SplitView draws the panels of one workspace side by side, using the
// splitter controller for every column position.
type SplitView struct {
	splitter   *layout.Splitter
	panels     []*PanelView
	focused    int
	hideTitles bool
	updated    time.Time
}

func NewSplitView(splitter *layout.Splitter, panels []*PanelView) *SplitView {
	v := &SplitView{splitter: splitter, panels: panels}
	v.SetFocused(0)
	return v
}

func (v *SplitView) Splitter() *layout.Splitter { return v.splitter }

func (v *SplitView) Focused() int { return v.focused }

// SetFocused highlights panel i; out of range values are clamped. The
// highlight is stored on the splitter's panels.
func (v *SplitView) SetFocused(i int) {
	v.focused = layout.Clamp(i, 0, max(len(v.panels)-1, 0))
	v.splitter.SetActivePanel(v.focused)
}

// FocusNext and FocusPrev move the highlight, stopping at the ends.
func (v *SplitView) FocusNext() { v.SetFocused(v.focused + 1) }
func (v *SplitView) FocusPrev() { v.SetFocused(v.focused - 1) }

// ScrollFocused scrolls the focused panel by delta lines.
func (v *SplitView) ScrollFocused(delta int) {
	if len(v.panels) == 0 {
		return
	}
	p := v.panels[v.focused]
	for ; delta > 0; delta-- {
		p.ScrollDown()
	}
	for ; delta < 0; delta++ {
		p.ScrollUp()
	}
}

func (v *SplitView) SetHideTitles(hide bool) { v.hideTitles = hide }

// SetUpdated sets the workspace change time shown in the panels.
func (v *SplitView) SetUpdated(t time.Time) { v.updated = t }

// RenderSplitter draws a splitter column filling r.
func RenderSplitter(r layout.Rect, active bool) string {
	char, style := SplitterChar, splitterStyle
	if active {
		char, style = SplitterActiveChar, splitterActStyle
	}
	row := strings.Repeat(char, r.W)
	rows := make([]string, r.H)
	for j := range rows {
		rows[j] = row
	}
	return style.Render(strings.Join(rows, "\n"))
}

func (v *SplitView) String() string {
	rects := v.splitter.PanelRects()
	if len(rects) == 0 || rects[0].H <= 0 {
		return ""
	}
	splitters := v.splitter.SplitterRects()
	minified := v.splitter.MinifiedPanels()
	committed := v.splitter.Layout()
	hints := v.splitter.Panels()

	cols := make([]string, 0, 2*len(rects))
	for i, r := range rects {
		if i > 0 && splitters[i].W > 0 {
			active := v.splitter.Dragging() && v.splitter.ActiveIndex() == i
			cols = append(cols, RenderSplitter(splitters[i], active))
		}
		if r.W <= 0 || i >= len(v.panels) {
			continue
		}
		p := v.panels[i]
		p.SetSize(r.W, r.H)
		p.SetMinified(minified[i])
		if i < len(hints) {
			p.SetActive(hints[i].IsActive)
			p.SetAccent(hints[i].Color)
		}
		p.SetHideTitle(v.hideTitles)
		p.SetInfo(committed[i], v.updated)
		cols = append(cols, p.String())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
