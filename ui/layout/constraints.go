package layout

// Constraints holds the computed chrome geometry for one terminal size.
type Constraints struct {
	TerminalWidth  int
	TerminalHeight int

	Mode LayoutMode

	// Content is the region shared by all windows (tab bars included).
	Content Rect

	MenuHeight   int
	ErrBoxHeight int

	// ShowMinWarning is set when the terminal is below the supported minimum.
	ShowMinWarning bool
}

// ComputeConstraints calculates layout constraints for the given terminal dimensions.
func ComputeConstraints(width, height int) Constraints {
	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
		Mode:           DetermineMode(width, height),
		ErrBoxHeight:   ErrBoxHeight,
	}
	c.ShowMinWarning = width < MinWidth || height < MinHeight
	c.MenuHeight = computeMenuHeight(c.Mode)

	contentHeight := max(height-c.MenuHeight-c.ErrBoxHeight, 0)
	c.Content = Rect{X: 0, Y: 0, W: max(width, 0), H: contentHeight}
	return c
}

// PanelArea returns the part of a window below its tab bar.
func PanelArea(window Rect) Rect {
	return Rect{
		X: window.X,
		Y: window.Y + TabBarHeight,
		W: window.W,
		H: max(window.H-TabBarHeight, 0),
	}
}

// TabBarArea returns the tab strip row of a window.
func TabBarArea(window Rect) Rect {
	return Rect{X: window.X, Y: window.Y, W: window.W, H: min(TabBarHeight, window.H)}
}

func computeMenuHeight(mode LayoutMode) int {
	switch mode {
	case LayoutFull, LayoutStandard:
		return MenuStandardHeight
	default:
		return MenuMinHeight
	}
}

// ComputeOverlaySize calculates a constrained overlay width.
func ComputeOverlaySize(termWidth, preferredWidth int) int {
	maxW := termWidth - OverlayMargin*2
	return Clamp(preferredWidth, OverlayMinWidth, min(maxW, OverlayMaxWidth))
}
