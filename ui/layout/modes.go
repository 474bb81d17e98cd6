// Package layout holds the geometry of the workspace screen: responsive
// chrome sizing, the resizable panel splitter and the percentage layouts it
// commits.
package layout

// LayoutMode represents the current layout mode based on terminal dimensions.
type LayoutMode int

const (
	// LayoutFull is for large terminals. Every panel title and hint is shown.
	LayoutFull LayoutMode = iota

	// LayoutStandard is the default comfortable layout.
	LayoutStandard

	// LayoutCompact trims tab padding and folds the menu to one line.
	LayoutCompact

	// LayoutMinimal is for terminals below minimum size.
	LayoutMinimal
)

// String returns the string representation of the layout mode.
func (m LayoutMode) String() string {
	switch m {
	case LayoutFull:
		return "full"
	case LayoutStandard:
		return "standard"
	case LayoutCompact:
		return "compact"
	case LayoutMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// DetermineMode picks the most restrictive of the width and height modes.
func DetermineMode(width, height int) LayoutMode {
	if width < MinWidth || height < MinHeight {
		return LayoutMinimal
	}
	return max(modeFor(width, FullWidth, StandardWidth, MinWidth),
		modeFor(height, FullHeight, StandardHeight, MinHeight))
}

func modeFor(v, full, standard, minimum int) LayoutMode {
	switch {
	case v >= full:
		return LayoutFull
	case v >= standard:
		return LayoutStandard
	case v >= minimum:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}
