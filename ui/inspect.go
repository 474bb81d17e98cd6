package ui

import (
	"fmt"

	"paneldeck/inspect"
	"paneldeck/ui/layout"

	"github.com/mattn/go-runewidth"
)

func init() {
	inspect.RegisterStyle("tab", tabStyle)
	inspect.RegisterStyle("tab.selected", selectedTabStyle)
	inspect.RegisterStyle("tab.dragged", draggedTabStyle)
	inspect.RegisterStyle("splitter", splitterStyle)
	inspect.RegisterStyle("splitter.active", splitterActStyle)
	inspect.RegisterStyle("drop_zone", dropZoneStyle)
}

// InspectNode implements inspect.Introspectable.
func (b *TabBar) InspectNode() *inspect.Node {
	n := inspect.NewNode("TabBar").WithRect(b.area).
		WithState("selected", b.selected).
		WithState("dragged", b.dragged)
	for i, title := range b.titles {
		tab := inspect.NewNode("Tab").WithID(fmt.Sprint(i)).WithRect(b.rects[i]).
			WithLabel(b.shown[i], runewidth.StringWidth(b.shown[i]), runewidth.StringWidth(title))
		name := "tab"
		if i == b.selected {
			name = "tab.selected"
		}
		if style, ok := inspect.GetRegisteredStyle(name); ok {
			tab.WithStyles(inspect.ExtractStyleInfo(style, name))
		}
		if b.hint != nil {
			left, right := b.hint(i)
			tab.WithState("drop_left", left).WithState("drop_right", right)
		}
		n.AddChild(tab)
	}
	return n
}

// InspectNode implements inspect.Introspectable.
func (v *SplitView) InspectNode() *inspect.Node {
	n := inspect.NewNode("Split").
		WithState("layout", []float64(v.splitter.Layout())).
		WithState("dragging", v.splitter.Dragging()).
		WithState("active_splitter", v.splitter.ActiveIndex()).
		WithState("focused", v.focused)
	minified := v.splitter.MinifiedPanels()
	for i, r := range v.splitter.PanelRects() {
		p := inspect.NewNode("Panel").WithID(fmt.Sprint(i)).WithRect(r).
			WithState("minified", minified[i]).
			WithState("active", v.splitter.Panels()[i].IsActive)
		if i < len(v.panels) {
			w := runewidth.StringWidth(v.panels[i].title)
			p.WithLabel(v.panels[i].title, w, w).WithState("kind", v.panels[i].kind)
		}
		n.AddChild(p)
	}
	for i, r := range v.splitter.SplitterRects() {
		if i == 0 {
			continue
		}
		n.AddChild(inspect.NewNode("Splitter").WithID(fmt.Sprint(i)).WithRect(r))
	}
	return n
}

// InspectNode implements inspect.Introspectable.
func (w *WindowView) InspectNode() *inspect.Node {
	n := inspect.NewNode("Window").WithRect(w.area).
		AddChild(w.tabs.InspectNode())
	if w.split != nil {
		n.AddChild(w.split.InspectNode().WithRect(layout.PanelArea(w.area)))
	}
	if len(w.zones) > 0 {
		n.WithState("drop_zones", len(w.zones))
	}
	return n
}
