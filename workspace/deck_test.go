package workspace

import (
	"testing"

	"paneldeck/ui/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeck(t *testing.T, maxWindows int, titles ...string) *Deck {
	t.Helper()
	d := NewDeck(newTab(titles[0]), maxWindows, 0)
	for _, title := range titles[1:] {
		require.NoError(t, d.Windows[0].Add(newTab(title)))
	}
	return d
}

func deckTitles(d *Deck) [][]string {
	out := make([][]string, len(d.Windows))
	for i, w := range d.Windows {
		out[i] = tabTitles(w)
	}
	return out
}

func TestDeckMoveTabToNewWindow(t *testing.T) {
	d := newDeck(t, 3, "A", "B", "C")

	require.NoError(t, d.MoveTabToNewWindow(0, 1, 1))
	assert.Equal(t, [][]string{{"A", "C"}, {"B"}}, deckTitles(d))
	assert.InDeltaSlice(t, []float64{50, 50}, []float64(d.Layout), 0.01)
	assert.Equal(t, 1, d.Focused)
	assert.Equal(t, "B", d.FocusedWindow().SelectedTab().Title)
}

func TestDeckMoveTabToNewWindowScalesLayout(t *testing.T) {
	d := newDeck(t, 3, "A", "B", "C")
	require.NoError(t, d.MoveTabToNewWindow(0, 2, 1))
	require.NoError(t, d.SetLayout(layout.PanelsLayout{70, 30}))

	require.NoError(t, d.MoveTabToNewWindow(0, 1, 2))
	assert.Equal(t, [][]string{{"A"}, {"C"}, {"B"}}, deckTitles(d))
	assert.InDeltaSlice(t, []float64{46.67, 20, 33.33}, []float64(d.Layout), 0.01)
	assert.InDelta(t, 100, d.Layout.Sum(), 0.01)
}

func TestDeckMoveTabToNewWindowLimit(t *testing.T) {
	d := newDeck(t, 2, "A", "B", "C")
	require.NoError(t, d.MoveTabToNewWindow(0, 0, 0))

	err := d.MoveTabToNewWindow(1, 0, 2)
	assert.ErrorIs(t, err, ErrTooManyWindows)
	assert.Equal(t, [][]string{{"A"}, {"B", "C"}}, deckTitles(d))
}

func TestDeckMoveOnlyTabToNewWindowRelocates(t *testing.T) {
	d := newDeck(t, 2, "A", "B")
	require.NoError(t, d.MoveTabToNewWindow(0, 1, 1))
	require.False(t, d.CanAddWindow())

	require.NoError(t, d.MoveTabToNewWindow(1, 0, 0))
	assert.Equal(t, [][]string{{"B"}, {"A"}}, deckTitles(d))
	assert.Equal(t, 0, d.Focused)
	assert.InDeltaSlice(t, []float64{50, 50}, []float64(d.Layout), 0.01)
}

func TestDeckMoveTabToWindowDropsEmpty(t *testing.T) {
	d := newDeck(t, 3, "A", "B", "C")
	require.NoError(t, d.MoveTabToNewWindow(0, 1, 1))

	require.NoError(t, d.MoveTabToWindow(1, 0, 0))
	assert.Equal(t, [][]string{{"A", "C", "B"}}, deckTitles(d))
	assert.Equal(t, layout.PanelsLayout{100}, d.Layout)
	assert.Equal(t, 0, d.Focused)
	assert.Equal(t, "B", d.FocusedWindow().SelectedTab().Title)
}

func TestDeckMoveTabToWindowErrors(t *testing.T) {
	d := newDeck(t, 3, "A", "B")
	require.NoError(t, d.MoveTabToNewWindow(0, 1, 1))

	assert.ErrorIs(t, d.MoveTabToWindow(0, 0, 5), ErrWindowOutOfRange)
	assert.ErrorIs(t, d.MoveTabToWindow(0, 4, 1), ErrTabOutOfRange)

	d.Windows[1].MaxTabs = 1
	assert.ErrorIs(t, d.MoveTabToWindow(0, 0, 1), ErrTooManyTabs)
	assert.Equal(t, [][]string{{"A"}, {"B"}}, deckTitles(d))

	require.NoError(t, d.MoveTabToWindow(0, 0, 0), "same window is a no-op")
}

func TestDeckSetLayout(t *testing.T) {
	d := newDeck(t, 3, "A", "B")
	require.NoError(t, d.MoveTabToNewWindow(0, 1, 1))

	assert.ErrorIs(t, d.SetLayout(layout.PanelsLayout{100}), ErrInvalidLayout)
	require.NoError(t, d.SetLayout(layout.PanelsLayout{25, 75}))
	assert.Equal(t, layout.PanelsLayout{25, 75}, d.Layout)
}

func TestDeckValidateRepairs(t *testing.T) {
	d := newDeck(t, 3, "A", "B")
	d.Layout = layout.PanelsLayout{10, 20, 30}
	d.Focused = 7
	d.Windows[0].Selected = 9

	require.NoError(t, d.Validate())
	assert.Equal(t, layout.PanelsLayout{100}, d.Layout)
	assert.Equal(t, 0, d.Focused)
	assert.Equal(t, 1, d.Windows[0].Selected)

	d.Windows = append(d.Windows, NewWindow())
	assert.Error(t, d.Validate())
}

func TestDeckTitles(t *testing.T) {
	d := newDeck(t, 3, "A", "B", "C")
	require.NoError(t, d.MoveTabToNewWindow(0, 2, 1))
	assert.Equal(t, map[string]bool{"A": true, "B": true, "C": true}, d.Titles())
}

func TestDeckLocate(t *testing.T) {
	d := newDeck(t, 3, "A", "B", "C")
	require.NoError(t, d.MoveTabToNewWindow(0, 2, 1))
	id := d.Windows[1].Tabs[0].ID

	wi, ti, ok := d.Locate(id)
	require.True(t, ok)
	assert.Equal(t, []int{1, 0}, []int{wi, ti})

	wi, ti, ok = d.Locate("missing")
	assert.False(t, ok)
	assert.Equal(t, []int{-1, -1}, []int{wi, ti})
}
