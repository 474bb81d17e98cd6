package ui

import (
	"strings"

	"paneldeck/ui/layout"
	"paneldeck/ui/overlay"

	"github.com/charmbracelet/lipgloss"
)

// WindowView is one window on screen: its tab bar above the split of the
// selected workspace.
type WindowView struct {
	area  layout.Rect
	tabs  *TabBar
	split *SplitView
	zones []layout.Rect
}

func NewWindowView(tabs *TabBar, split *SplitView) *WindowView {
	return &WindowView{tabs: tabs, split: split}
}

func (w *WindowView) Area() layout.Rect { return w.area }

// SetArea places the window. The split view's splitter reads its own
// container, so only the tab bar is told here.
func (w *WindowView) SetArea(r layout.Rect) {
	w.area = r
	w.tabs.SetArea(layout.TabBarArea(r))
}

func (w *WindowView) TabBar() *TabBar { return w.tabs }

func (w *WindowView) Split() *SplitView { return w.split }

// SetSplit swaps the split, e.g. when another tab is selected.
func (w *WindowView) SetSplit(split *SplitView) { w.split = split }

// SetDropZones tints the given absolute rectangles. Empty rectangles are
// skipped; no arguments clears the tint.
func (w *WindowView) SetDropZones(zones ...layout.Rect) {
	w.zones = zones
}

func zoneBlock(r layout.Rect) string {
	row := strings.Repeat(" ", r.W)
	rows := make([]string, r.H)
	for i := range rows {
		rows[i] = row
	}
	return dropZoneStyle.Render(strings.Join(rows, "\n"))
}

// PlaceDropZone tints zone over out, which was rendered into area.
func PlaceDropZone(zone, area layout.Rect, out string) string {
	if zone.Empty() {
		return out
	}
	return overlay.PlaceOverlay(zone.X-area.X, zone.Y-area.Y, zoneBlock(zone), out, false, false)
}

func (w *WindowView) String() string {
	if w.area.Empty() {
		return ""
	}
	out := w.tabs.String()
	if w.split != nil {
		if body := w.split.String(); body != "" {
			out = lipgloss.JoinVertical(lipgloss.Left, out, body)
		}
	}
	out = lipgloss.NewStyle().Width(w.area.W).Height(w.area.H).MaxWidth(w.area.W).MaxHeight(w.area.H).Render(out)
	for _, z := range w.zones {
		out = PlaceDropZone(z, w.area, out)
	}
	return out
}
