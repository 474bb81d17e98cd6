package inspect

import (
	"fmt"
	"strings"
	"time"

	"paneldeck/ui/layout"
)

// snapshotFormat is bumped when fields are renamed or removed.
const snapshotFormat = 2

// Snapshot is the deck as it was drawn at one moment.
type Snapshot struct {
	Timestamp   time.Time        `json:"timestamp"`
	Format      int              `json:"format"`
	Terminal    TerminalInfo     `json:"terminal"`
	AppState    AppStateInfo     `json:"app_state"`
	Layout      LayoutInfo       `json:"layout"`
	Drag        DragInfo         `json:"drag"`
	Breakpoints []BreakpointInfo `json:"breakpoints"`
	Components  *Node            `json:"components"`
}

type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AppStateInfo is the modal state of the app.
type AppStateInfo struct {
	State         string `json:"state"`
	HasOverlay    bool   `json:"has_overlay"`
	OverlayType   string `json:"overlay_type,omitempty"`
	WindowCount   int    `json:"window_count"`
	FocusedWindow int    `json:"focused_window"`
	ErrorMessage  string `json:"error_message,omitempty"`
}

// LayoutInfo is the chrome geometry and the committed window widths.
type LayoutInfo struct {
	Mode          string          `json:"mode"`
	ContentWidth  int             `json:"content_width"`
	ContentHeight int             `json:"content_height"`
	MenuHeight    int             `json:"menu_height"`
	WindowLayout  []float64       `json:"window_layout"`
	Degradation   DegradationInfo `json:"degradation"`
}

type DegradationInfo struct {
	SimplifyTabs    bool `json:"simplify_tabs"`
	SingleLineMenu  bool `json:"single_line_menu"`
	HidePanelTitles bool `json:"hide_panel_titles"`
	HideDropHints   bool `json:"hide_drop_hints"`
	ShowMinWarning  bool `json:"show_min_warning"`
}

// DragInfo describes the pointer gesture in progress. Kind is "tab",
// "splitter" or "window_splitter"; Index is the dragged tab or splitter.
type DragInfo struct {
	Active bool   `json:"active"`
	Kind   string `json:"kind,omitempty"`
	Window int    `json:"window"`
	Index  int    `json:"index"`
}

// BreakpointInfo is one size threshold and whether the terminal is past it.
type BreakpointInfo struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	Active    bool   `json:"active"`
	Dimension string `json:"dimension"` // "width" or "height"
}

func NewSnapshot() *Snapshot {
	return &Snapshot{Timestamp: time.Now(), Format: snapshotFormat}
}

func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

func (s *Snapshot) WithAppState(info AppStateInfo) *Snapshot {
	s.AppState = info
	return s
}

func (s *Snapshot) WithDrag(info DragInfo) *Snapshot {
	s.Drag = info
	return s
}

func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// WithLayout records the chrome geometry for c, the features d turned off and
// a copy of the window layout.
func (s *Snapshot) WithLayout(c layout.Constraints, d layout.Degradation, windows layout.PanelsLayout) *Snapshot {
	s.Layout = LayoutInfo{
		Mode:          c.Mode.String(),
		ContentWidth:  c.Content.W,
		ContentHeight: c.Content.H,
		MenuHeight:    c.MenuHeight,
		WindowLayout:  windows.Clone(),
		Degradation: DegradationInfo{
			SimplifyTabs:    d.SimplifyTabs,
			SingleLineMenu:  d.SingleLineMenu,
			HidePanelTitles: d.HidePanelTitles,
			HideDropHints:   d.HideDropHints,
			ShowMinWarning:  d.ShowMinWarning,
		},
	}

	width := func(name string, threshold int, active bool) BreakpointInfo {
		return BreakpointInfo{Name: name, Threshold: threshold, Active: active, Dimension: "width"}
	}
	height := func(name string, threshold int, active bool) BreakpointInfo {
		return BreakpointInfo{Name: name, Threshold: threshold, Active: active, Dimension: "height"}
	}
	s.Breakpoints = []BreakpointInfo{
		width("simplify_tabs", layout.TabSimplifyWidth, d.SimplifyTabs),
		width("hide_drop_hints", layout.DropHintHideWidth, d.HideDropHints),
		height("hide_panel_titles", layout.PanelTitleHideHeight, d.HidePanelTitles),
		width("min_width", layout.MinWidth, c.TerminalWidth < layout.MinWidth),
		height("min_height", layout.MinHeight, c.TerminalHeight < layout.MinHeight),
	}
	return s
}

// ToText renders the snapshot for people: a header, the breakpoints and an
// indented component tree.
func (s *Snapshot) ToText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "paneldeck snapshot %s\n", s.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&b, "Terminal: %dx%d  State: %s\n", s.Terminal.Width, s.Terminal.Height, s.AppState.State)
	fmt.Fprintf(&b, "Mode: %s  Content: %dx%d  Windows: %v\n",
		s.Layout.Mode, s.Layout.ContentWidth, s.Layout.ContentHeight, s.Layout.WindowLayout)
	if s.Drag.Active {
		fmt.Fprintf(&b, "Drag: %s window=%d index=%d\n", s.Drag.Kind, s.Drag.Window, s.Drag.Index)
	}

	if len(s.Breakpoints) > 0 {
		b.WriteString("\nBreakpoints:\n")
	}
	for _, bp := range s.Breakpoints {
		mark := ' '
		if bp.Active {
			mark = 'X'
		}
		fmt.Fprintf(&b, "  [%c] %s (threshold: %d %s)\n", mark, bp.Name, bp.Threshold, bp.Dimension)
	}

	if s.Components != nil {
		b.WriteString("\nComponents:\n")
		writeNodeText(&b, s.Components, 0)
	}
	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	fmt.Fprintf(b, "%s%s", strings.Repeat("  ", indent), node.Type)
	if node.ID != "" {
		fmt.Fprintf(b, " [%s]", node.ID)
	}
	r := node.Bounds
	fmt.Fprintf(b, " @%d,%d %dx%d", r.X, r.Y, r.W, r.H)
	if !node.Visible {
		b.WriteString(" hidden")
	}
	if node.Label != "" {
		fmt.Fprintf(b, " %q", node.Label)
	}
	if c := node.Clipped; c != nil {
		fmt.Fprintf(b, " clipped %d->%d", c.Full, c.Shown)
	}
	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}
