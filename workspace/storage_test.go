package workspace

import (
	"encoding/json"
	"errors"
	"testing"

	"paneldeck/ui/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memState struct {
	data     json.RawMessage
	saves    int
	refresh  bool
	fail     error
	external json.RawMessage
}

func (m *memState) SaveDeck(data json.RawMessage) error {
	m.saves++
	m.data = data
	return nil
}

func (m *memState) GetDeck() json.RawMessage { return m.data }

func (m *memState) DeleteDeck() error {
	m.data = nil
	return nil
}

func (m *memState) RefreshFromDisk() (bool, error) {
	if m.fail != nil {
		return false, m.fail
	}
	if !m.refresh {
		return false, nil
	}
	m.refresh = false
	m.data = m.external
	return true, nil
}

func TestStorageRoundTrip(t *testing.T) {
	state := &memState{}
	s := NewStorage(state)

	d := newDeck(t, 3, "A", "B", "C")
	require.NoError(t, d.MoveTabToNewWindow(0, 2, 1))
	require.NoError(t, d.SetLayout(layout.PanelsLayout{60, 40}))
	require.NoError(t, s.SaveDeck(d))

	got, err := s.LoadDeck(3, 5)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, deckTitles(d), deckTitles(got))
	assert.Equal(t, layout.PanelsLayout{60, 40}, got.Layout)
	assert.Equal(t, 1, got.Focused)
	assert.Equal(t, 3, got.MaxWindows)
	assert.Equal(t, 5, got.Windows[0].MaxTabs)
	assert.Equal(t, 1, state.saves, "a clean load does not write")
}

func TestStorageLoadEmpty(t *testing.T) {
	s := NewStorage(&memState{})
	d, err := s.LoadDeck(3, 5)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestStorageLoadDropsInvalidTabs(t *testing.T) {
	state := &memState{}
	s := NewStorage(state)

	d := newDeck(t, 3, "A", "B", "C")
	require.NoError(t, d.MoveTabToNewWindow(0, 2, 1))
	require.NoError(t, d.SetLayout(layout.PanelsLayout{60, 40}))
	d.Windows[1].Tabs[0].Panels[0].Kind = "terminal"
	d.Windows[0].Tabs[1].Panels = nil
	require.NoError(t, s.SaveDeck(d))

	got, err := s.LoadDeck(3, 5)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, [][]string{{"A"}}, deckTitles(got))
	assert.Equal(t, layout.PanelsLayout{100}, got.Layout)
	assert.Equal(t, 0, got.Focused)
	assert.Equal(t, 2, state.saves, "cleaned deck is written back")
}

func TestStorageLoadGarbage(t *testing.T) {
	s := NewStorage(&memState{data: json.RawMessage(`[1,2`)})
	_, err := s.LoadDeck(3, 5)
	assert.Error(t, err)
}

func TestStorageDeleteAll(t *testing.T) {
	state := &memState{}
	s := NewStorage(state)
	require.NoError(t, s.SaveDeck(newDeck(t, 3, "A")))
	require.NoError(t, s.DeleteAll())

	d, err := s.LoadDeck(3, 5)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestStorageSyncFromDisk(t *testing.T) {
	state := &memState{}
	s := NewStorage(state)
	require.NoError(t, s.SaveDeck(newDeck(t, 3, "A")))

	_, synced, err := s.SyncFromDisk(3, 5)
	require.NoError(t, err)
	assert.False(t, synced)

	other := NewStorage(&memState{})
	require.NoError(t, other.SaveDeck(newDeck(t, 3, "X", "Y")))
	state.external = other.state.GetDeck()
	state.refresh = true

	d, synced, err := s.SyncFromDisk(3, 5)
	require.NoError(t, err)
	assert.True(t, synced)
	assert.Equal(t, [][]string{{"X", "Y"}}, deckTitles(d))

	state.fail = errors.New("disk gone")
	_, _, err = s.SyncFromDisk(3, 5)
	assert.ErrorContains(t, err, "disk gone")
}
