package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStateMissingFile(t *testing.T) {
	withHome(t)
	state := LoadState()
	assert.Empty(t, state.GetDeck())
	assert.Zero(t, state.GetHelpScreensSeen())
}

func TestSaveAndLoadState(t *testing.T) {
	dir := withHome(t)

	state := DefaultState()
	require.NoError(t, state.SaveDeck(json.RawMessage(`{"windows":[]}`)))
	require.NoError(t, state.SetHelpScreensSeen(3))
	assert.NoFileExists(t, filepath.Join(dir, StateFileName+".tmp"))

	loaded := LoadState()
	assert.JSONEq(t, `{"windows":[]}`, string(loaded.GetDeck()))
	assert.Equal(t, uint32(3), loaded.GetHelpScreensSeen())
	assert.False(t, loaded.GetLastModTime().IsZero())

	require.NoError(t, loaded.DeleteDeck())
	assert.Empty(t, LoadState().GetDeck())
}

func TestLoadStateCorrupt(t *testing.T) {
	dir := withHome(t)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, StateFileName), []byte("{"), 0644))

	state := LoadState()
	assert.Empty(t, state.GetDeck())
}

func TestRefreshFromDisk(t *testing.T) {
	dir := withHome(t)

	state := DefaultState()
	require.NoError(t, state.SaveDeck(json.RawMessage(`{"focused":0}`)))

	refreshed, err := state.RefreshFromDisk()
	require.NoError(t, err)
	assert.False(t, refreshed, "own write is not a change")

	other := LoadState()
	require.NoError(t, other.SaveDeck(json.RawMessage(`{"focused":1}`)))
	future := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(filepath.Join(dir, StateFileName), future, future))

	refreshed, err = state.RefreshFromDisk()
	require.NoError(t, err)
	assert.True(t, refreshed)
	assert.JSONEq(t, `{"focused":1}`, string(state.GetDeck()))

	refreshed, err = state.RefreshFromDisk()
	require.NoError(t, err)
	assert.False(t, refreshed)
}

func TestFileLock(t *testing.T) {
	dir := t.TempDir()
	lock := NewFileLock(filepath.Join(dir, StateFileName))

	require.NoError(t, lock.Lock())
	assert.Error(t, lock.RLock(), "already held")
	require.NoError(t, lock.Unlock())
	require.NoError(t, lock.Unlock(), "second unlock is a no-op")

	require.NoError(t, lock.RLock())
	require.NoError(t, lock.Unlock())
	assert.FileExists(t, filepath.Join(dir, lockFileName))
}
