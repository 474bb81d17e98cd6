package ui

import "github.com/charmbracelet/lipgloss"

// Semantic Color Palette

// UI chrome colors - structural elements
var (
	// Primary is the accent/focus color
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// BorderFocus is the border color for focused elements
	BorderFocus = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for secondary text (descriptions, labels)
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// BackgroundSubtle is for cards, overlays, etc.
	BackgroundSubtle = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#2a2a2a"}

	// BackgroundSelected is for the selected tab
	BackgroundSelected = lipgloss.AdaptiveColor{Light: "#dde4f0", Dark: "#3C3C4C"}

	// DropTarget tints the area a dragged tab would land in
	DropTarget = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"}

	// ErrorColor is used by the error box
	ErrorColor = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}
)

// Panel accent colors, assigned by kind.
var PanelColors = map[string]lipgloss.TerminalColor{
	"events":    lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"},
	"messages":  lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"},
	"search":    lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"},
	"bookmarks": lipgloss.AdaptiveColor{Light: "#EC4899", Dark: "#EC4899"},
}

// PanelColor returns the accent of a panel kind, or the primary color.
func PanelColor(kind string) lipgloss.TerminalColor {
	if c, ok := PanelColors[kind]; ok {
		return c
	}
	return Primary
}

const (
	IconMinified = "▸"
	// SplitterChar draws a resting splitter, SplitterActiveChar one being dragged.
	SplitterChar       = "│"
	SplitterActiveChar = "┃"
	// DropHintChar marks the gap a dragged tab would be inserted into.
	DropHintChar = "▌"
)

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
}{
	Primary:   lipgloss.NewStyle().Foreground(TextPrimary),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
}

var (
	tabStyle = lipgloss.NewStyle().
			Foreground(TextSecondary)
	selectedTabStyle = lipgloss.NewStyle().
				Foreground(TextPrimary).
				Background(BackgroundSelected).
				Bold(true)
	draggedTabStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Italic(true)
	tabGapStyle      = lipgloss.NewStyle().Foreground(Border)
	dropHintStyle    = lipgloss.NewStyle().Foreground(DropTarget).Bold(true)
	splitterStyle    = lipgloss.NewStyle().Foreground(Border)
	splitterActStyle = lipgloss.NewStyle().Foreground(Primary)
	dropZoneStyle    = lipgloss.NewStyle().Background(DropTarget)
)
