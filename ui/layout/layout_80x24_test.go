package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMinimumTerminal80x24 verifies all behavior at the minimum supported terminal size
func TestMinimumTerminal80x24(t *testing.T) {
	width := 80
	height := 24

	t.Run("mode is compact", func(t *testing.T) {
		assert.Equal(t, LayoutCompact, DetermineMode(width, height), "80x24 should be compact mode")
	})

	t.Run("constraints are valid", func(t *testing.T) {
		c := ComputeConstraints(width, height)

		assert.Equal(t, LayoutCompact, c.Mode)
		assert.False(t, c.ShowMinWarning, "80x24 should not show warning")

		assert.Positive(t, c.Content.W)
		assert.Positive(t, c.Content.H)
		assert.Equal(t, height, c.Content.H+c.MenuHeight+c.ErrBoxHeight, "chrome fills the terminal")
	})

	t.Run("degradation flags are set correctly", func(t *testing.T) {
		d := ComputeDegradation(ComputeConstraints(width, height))

		assert.True(t, d.SimplifyTabs, "should simplify tabs at 80x24")
		assert.True(t, d.SingleLineMenu, "should use single line menu at 80x24")
		assert.True(t, d.HidePanelTitles, "should hide panel titles at 80x24")
		assert.True(t, d.HideDropHints, "should hide drop hints at 80x24")
		assert.False(t, d.ShowMinWarning, "should not show min warning at 80x24")
	})

	t.Run("default panels fit", func(t *testing.T) {
		c := ComputeConstraints(width, height)
		panels := []Panel{{Title: "Events"}, {Title: "Messages"}, {Title: "Search"}, {Title: "Bookmarks"}}
		s := NewSplitter(StaticContainer(PanelArea(c.Content)), nil, panels, nil, nil)

		total := 0
		for _, w := range s.PanelWidths() {
			assert.GreaterOrEqual(t, w, MinPanelWidth)
			total += w
		}
		assert.Equal(t, width-SplitterWidth*(len(panels)-1), total)
	})
}

// TestBelowMinimumTerminal verifies behavior at sizes smaller than 80x24
func TestBelowMinimumTerminal(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"narrow terminal 70x30", 70, 30},
		{"short terminal 100x20", 100, 20},
		{"tiny terminal 60x15", 60, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ComputeConstraints(tt.width, tt.height)
			d := ComputeDegradation(c)

			assert.True(t, c.ShowMinWarning, "ShowMinWarning")
			assert.True(t, d.ShowMinWarning)
			assert.Equal(t, LayoutMinimal, c.Mode, "Mode should be minimal")
			assert.True(t, d.SingleLineMenu)
			assert.GreaterOrEqual(t, c.Content.H, 0)
		})
	}
}

// TestDegradationProgression verifies gradual degradation as terminal shrinks
func TestDegradationProgression(t *testing.T) {
	t.Run("full terminal 170x50", func(t *testing.T) {
		d := ComputeDegradation(ComputeConstraints(170, 50))
		assert.Equal(t, Degradation{}, d)
	})

	t.Run("standard terminal 120x40", func(t *testing.T) {
		d := ComputeDegradation(ComputeConstraints(120, 40))
		assert.Equal(t, Degradation{}, d)
	})

	t.Run("compact terminal 95x32", func(t *testing.T) {
		d := ComputeDegradation(ComputeConstraints(95, 32))

		assert.True(t, d.SimplifyTabs, "should simplify tabs (width < 100)")
		assert.True(t, d.SingleLineMenu, "compact mode folds the menu")
		assert.False(t, d.HideDropHints, "should keep drop hints (width >= 90)")
		assert.False(t, d.HidePanelTitles, "should keep panel titles (height >= 26)")
	})

	t.Run("small terminal 85x25", func(t *testing.T) {
		d := ComputeDegradation(ComputeConstraints(85, 25))

		assert.True(t, d.SimplifyTabs)
		assert.True(t, d.SingleLineMenu)
		assert.True(t, d.HideDropHints, "should hide drop hints (width < 90)")
		assert.True(t, d.HidePanelTitles, "should hide panel titles (height < 26)")
	})
}
