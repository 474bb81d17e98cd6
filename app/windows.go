package app

import (
	"paneldeck/log"
	"paneldeck/ui"
	"paneldeck/ui/dnd"
	"paneldeck/ui/layout"
	"paneldeck/workspace"

	"github.com/charmbracelet/lipgloss"
)

// windowCtrl wires the layout engine of one window: the splitter of its
// selected workspace, the tab reorder engine and the side drop target.
type windowCtrl struct {
	index int
	ws    *workspace.Workspace
	area  layout.Rect

	splitter *layout.Splitter
	reorder  *dnd.TabReorder
	side     *dnd.SideDropTarget

	tabs  *ui.TabBar
	split *ui.SplitView
	view  *ui.WindowView
}

// rebuild recreates the engine and the views from the deck. Any gesture in
// progress is dropped.
func (m *home) rebuild() {
	m.cancelGesture()
	m.router.Reset()

	if err := m.deck.Validate(); err != nil {
		log.ErrorLog.Printf("deck is invalid: %v", err)
	}

	panels := make([]layout.Panel, len(m.deck.Windows))
	for i, w := range m.deck.Windows {
		title := ""
		if ws := w.SelectedTab(); ws != nil {
			title = ws.Title
		}
		panels[i] = layout.Panel{Title: title, MinWidth: layout.MinWindowWidth}
	}
	m.windowSplit = layout.NewSplitter(
		layout.ContainerFunc(m.contentBounds),
		m.router,
		panels,
		m.deck.Layout,
		m.setWindowsLayout,
		layout.WithSplitterWidth(m.appConfig.SplitterWidth),
		layout.WithMinPanelWidth(layout.MinWindowWidth),
	)

	m.windows = make([]*windowCtrl, len(m.deck.Windows))
	for i, w := range m.deck.Windows {
		m.windows[i] = m.newWindowCtrl(i, w)
	}
	m.layoutWindows()
}

func (m *home) newWindowCtrl(i int, w *workspace.Window) *windowCtrl {
	c := &windowCtrl{index: i, ws: w.SelectedTab()}
	n := len(m.deck.Windows)

	panels := c.ws.LayoutPanels(m.appConfig.MinPanelWidth)
	for j := range panels {
		panels[j].Color = ui.PanelColor(string(c.ws.Panels[j].Kind))
	}
	c.splitter = layout.NewSplitter(
		layout.ContainerFunc(func() layout.Rect { return layout.PanelArea(c.area) }),
		m.router,
		panels,
		c.ws.Layout,
		func(l layout.PanelsLayout) { m.commitPanelsLayout(c.ws, l) },
		layout.WithSplitterWidth(m.appConfig.SplitterWidth),
		layout.WithMinPanelWidth(m.appConfig.MinPanelWidth),
	)

	views := make([]*ui.PanelView, len(c.ws.Panels))
	for j, p := range c.ws.Panels {
		views[j] = ui.NewPanelView(string(p.Kind), p.Title)
	}
	c.split = ui.NewSplitView(c.splitter, views)
	c.split.SetFocused(m.panelFocus[c.ws.ID])
	c.split.SetUpdated(c.ws.UpdatedAt)

	titles := make([]string, w.Len())
	for j, t := range w.Tabs {
		titles[j] = t.Title
	}
	c.tabs = ui.NewTabBar()
	c.tabs.SetTabs(titles, w.Selected)
	c.view = ui.NewWindowView(c.tabs, c.split)

	c.reorder = dnd.NewTabReorder(
		func(from, to int) { m.moveTab(i, from, to) },
		dnd.WithHoverThrottle(m.appConfig.HoverThrottle()),
	)

	cfg := dnd.DefaultSideDropConfig()
	cfg.DroppableAreaPercent = m.appConfig.SideDropPercent
	cfg.LeftDropAreaEnabled = i > 0
	cfg.RightDropAreaEnabled = i < n-1
	c.side = dnd.NewSideDropTarget(
		layout.ContainerFunc(func() layout.Rect { return c.area }),
		cfg,
		func(t dnd.DraggedTab) { m.moveTabToWindow(t, i-1) },
		func(t dnd.DraggedTab) { m.moveTabToWindow(t, i+1) },
	)
	return c
}

// layoutWindows places every window from the window splitter, including
// uncommitted drag movement, and re-measures the panel splitters.
func (m *home) layoutWindows() {
	m.windowSplit.Resize()
	rects := m.windowSplit.PanelRects()
	for i, c := range m.windows {
		c.area = rects[i]
		c.view.SetArea(c.area)
		c.tabs.SetPadding(m.degradation.TabPadding())
		c.split.SetHideTitles(m.degradation.HidePanelTitles)
		c.splitter.Resize()
	}
}

// followWindowDrag moves the windows with a window splitter drag without
// touching the panel splitters' committed layouts.
func (m *home) followWindowDrag() {
	rects := m.windowSplit.PanelRects()
	for i, c := range m.windows {
		c.area = rects[i]
		c.view.SetArea(c.area)
		c.splitter.Resize()
	}
}

func (m *home) focusedCtrl() *windowCtrl {
	if len(m.windows) == 0 {
		return nil
	}
	return m.windows[layout.Clamp(m.deck.Focused, 0, len(m.windows)-1)]
}

func (m *home) rememberFocus(c *windowCtrl) {
	m.panelFocus[c.ws.ID] = c.split.Focused()
}

// -- Engine callbacks. They run inside Update; flush applies their effects. --

func (m *home) setWindowsLayout(l layout.PanelsLayout) {
	if err := m.deck.SetLayout(l); err != nil {
		m.pendingErr = err
		return
	}
	log.LayoutTrace("windows layout committed: %v", m.deck.Layout)
	m.followWindowDrag()
	m.needSave = true
}

func (m *home) commitPanelsLayout(ws *workspace.Workspace, l layout.PanelsLayout) {
	if err := ws.SetLayout(l); err != nil {
		m.pendingErr = err
		return
	}
	log.LayoutTrace("panels layout committed for %q: %v", ws.Title, ws.Layout)
	m.needSave = true
}

func (m *home) moveTab(window, from, to int) {
	if window >= len(m.deck.Windows) {
		return
	}
	if err := m.deck.Windows[window].MoveTab(from, to); err != nil {
		m.pendingErr = err
		return
	}
	m.structureChanged()
}

func (m *home) moveTabToWindow(t dnd.DraggedTab, dst int) {
	if err := m.deck.MoveTabToWindow(t.Window, t.Index, dst); err != nil {
		m.pendingErr = err
		return
	}
	m.structureChanged()
}

func (m *home) moveTabToNewWindow(t dnd.DraggedTab) {
	if err := m.deck.MoveTabToNewWindow(t.Window, t.Index, len(m.deck.Windows)); err != nil {
		m.pendingErr = err
		return
	}
	m.structureChanged()
}

// -- Rendering --

func (m *home) renderWindows() string {
	defer log.GetProfiler().StartRender("windows")()

	content := m.constraints.Content
	splitters := m.windowSplit.SplitterRects()
	cols := make([]string, 0, 2*len(m.windows))
	for i, c := range m.windows {
		if i > 0 && splitters[i].W > 0 {
			active := m.windowSplit.Dragging() && m.windowSplit.ActiveIndex() == i
			cols = append(cols, ui.RenderSplitter(splitters[i], active))
		}
		if c.area.W > 0 {
			cols = append(cols, c.view.String())
		}
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	out = lipgloss.NewStyle().Width(content.W).Height(content.H).MaxWidth(content.W).MaxHeight(content.H).Render(out)

	if m.gestureActive() && m.edge.IsOver() && !m.degradation.HideDropHints {
		out = ui.PlaceDropZone(m.edge.Zone(), content, out)
	}
	return out
}

// updateDragVisuals shows the drop slivers and tinted zones of the gesture in
// progress, or clears them.
func (m *home) updateDragVisuals() {
	dragging := m.gestureActive()
	for i, c := range m.windows {
		if dragging && m.gesture.Source().Window == i {
			c.tabs.SetDrag(c.reorder.DraggedIndex(), c.reorder.DropHint)
		} else {
			c.tabs.SetDrag(-1, nil)
		}

		var zones []layout.Rect
		if dragging && !m.degradation.HideDropHints {
			h := c.side.HoverState()
			left, right := c.side.Zones()
			if h.CanDropOnLeft {
				zones = append(zones, left)
			}
			if h.CanDropOnRight {
				zones = append(zones, right)
			}
		}
		c.view.SetDropZones(zones...)
	}

	if dragging {
		m.menu.SetState(ui.StateDragging)
	} else if m.menu.State() == ui.StateDragging {
		m.menu.SetState(ui.StateDefault)
	}
}
