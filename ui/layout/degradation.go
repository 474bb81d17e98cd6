package layout

// Degradation holds flags indicating which UI features should be hidden or simplified.
type Degradation struct {
	SimplifyTabs    bool // no padding around tab titles (width < 100)
	SingleLineMenu  bool // menu folds to one line (compact and minimal modes)
	HidePanelTitles bool // panel title rows dropped (height < 26)
	HideDropHints   bool // side drop zones not highlighted (width < 90)
	ShowMinWarning  bool
}

// Threshold constants for degradation
const (
	TabSimplifyWidth     = 100
	PanelTitleHideHeight = 26
	DropHintHideWidth    = 90
)

// ComputeDegradation calculates which UI features should be degraded.
func ComputeDegradation(c Constraints) Degradation {
	return Degradation{
		SimplifyTabs:    c.TerminalWidth < TabSimplifyWidth,
		SingleLineMenu:  c.MenuHeight <= MenuMinHeight,
		HidePanelTitles: c.TerminalHeight < PanelTitleHideHeight,
		HideDropHints:   c.TerminalWidth < DropHintHideWidth,
		ShowMinWarning:  c.ShowMinWarning,
	}
}

// TabPadding returns the horizontal padding on each side of a tab title.
func (d Degradation) TabPadding() int {
	if d.SimplifyTabs {
		return 0
	}
	return 1
}
