package layout

// Width breakpoints
const (
	// MinWidth is the absolute minimum terminal width.
	MinWidth = 80

	// CompactWidth triggers compact mode features.
	CompactWidth = 100

	// StandardWidth is the threshold for standard layout.
	StandardWidth = 120

	// FullWidth is the threshold for full layout with all features.
	FullWidth = 160
)

// Height breakpoints
const (
	// MinHeight is the absolute minimum terminal height (standard terminal).
	MinHeight = 24

	// CompactHeight triggers compact mode features.
	CompactHeight = 30

	// StandardHeight is the threshold for standard layout.
	StandardHeight = 40

	// FullHeight is the threshold for full layout.
	FullHeight = 50
)

// Panel and splitter constraints
const (
	// SplitterWidth is the width of a draggable splitter column.
	SplitterWidth = 1

	// MinPanelWidth is the default floor for a panel. A panel at its floor is
	// rendered minified (an icon rail).
	MinPanelWidth = 4

	// MinWindowWidth is the floor for a window in the window-level split.
	MinWindowWidth = 30
)

// Chrome constraints
const (
	// TabBarHeight is the height of a window's tab strip.
	TabBarHeight = 1

	// MenuMinHeight is the minimum menu height.
	MenuMinHeight = 1

	// MenuStandardHeight is the standard menu height.
	MenuStandardHeight = 2

	// ErrBoxHeight is the fixed error box height.
	ErrBoxHeight = 1
)

// Drop zone constraints
const (
	// SideDropPercent is the default share of a window's width, at each edge,
	// that accepts a side drop.
	SideDropPercent = 15.0

	// WindowDropWidth is the width of the application-edge drop zone.
	WindowDropWidth = 12

	// WindowDropOffset is the number of rows at the top of the application
	// excluded from the application-edge drop zone.
	WindowDropOffset = 2
)

// Overlay constraints
const (
	// OverlayMaxWidth is the maximum overlay width.
	OverlayMaxWidth = 80

	// OverlayMinWidth is the minimum overlay width.
	OverlayMinWidth = 40

	// OverlayMargin is the minimum margin from terminal edges.
	OverlayMargin = 4
)
