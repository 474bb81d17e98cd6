package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"paneldeck/log"
)

const StateFileName = "state.json"

// DeckStorage persists the serialised deck: windows, tabs and layouts.
type DeckStorage interface {
	SaveDeck(deckJSON json.RawMessage) error
	GetDeck() json.RawMessage
	DeleteDeck() error
}

// AppState persists which one-time help screens were shown, as a bitmask.
type AppState interface {
	GetHelpScreensSeen() uint32
	SetHelpScreensSeen(seen uint32) error
}

type StateManager interface {
	DeckStorage
	AppState
}

// State is everything paneldeck remembers between runs. It is shared by every
// running instance through one file in the config directory.
type State struct {
	HelpScreensSeen uint32          `json:"help_screens_seen"`
	DeckData        json.RawMessage `json:"deck,omitempty"`

	// modTime is the file's mtime when this State last read or wrote it.
	modTime time.Time
}

func DefaultState() *State {
	return &State{}
}

func statePath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, StateFileName), nil
}

// readState parses the state file under a shared lock.
func readState(path string) (*State, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	lock := NewFileLock(path)
	if err := lock.RLock(); err != nil {
		return nil, fmt.Errorf("failed to acquire read lock: %w", err)
	}
	defer lock.Unlock()

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	s.modTime = info.ModTime()
	return &s, nil
}

// LoadState reads the state file, falling back to DefaultState when it is
// missing or unreadable.
func LoadState() *State {
	path, err := statePath()
	if err != nil {
		log.ErrorLog.Printf("%v", err)
		return DefaultState()
	}
	s, err := readState(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return DefaultState()
	case err != nil:
		log.WarningLog.Printf("using default state: %v", err)
		return DefaultState()
	}
	return s
}

// SaveState writes state under an exclusive lock. The file is replaced by
// rename so watchers never observe a partial write.
func SaveState(state *State) error {
	path, err := statePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := NewFileLock(path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace state: %w", err)
	}
	if info, err := os.Stat(path); err == nil {
		state.modTime = info.ModTime()
	}
	return nil
}

func (s *State) SaveDeck(deckJSON json.RawMessage) error {
	s.DeckData = deckJSON
	return SaveState(s)
}

func (s *State) GetDeck() json.RawMessage {
	return s.DeckData
}

func (s *State) DeleteDeck() error {
	s.DeckData = nil
	return SaveState(s)
}

func (s *State) GetHelpScreensSeen() uint32 {
	return s.HelpScreensSeen
}

func (s *State) SetHelpScreensSeen(seen uint32) error {
	s.HelpScreensSeen = seen
	return SaveState(s)
}

// GetLastModTime returns the file's mtime as of the last read or write.
func (s *State) GetLastModTime() time.Time {
	return s.modTime
}

// RefreshFromDisk reloads the state if another process has written the file
// since this State last saw it, and reports whether it did.
func (s *State) RefreshFromDisk() (bool, error) {
	path, err := statePath()
	if err != nil {
		return false, err
	}
	info, err := os.Stat(path)
	if err != nil || !info.ModTime().After(s.modTime) {
		return false, nil
	}

	fresh, err := readState(path)
	if err != nil {
		return false, err
	}
	s.HelpScreensSeen = fresh.HelpScreensSeen
	s.DeckData = fresh.DeckData
	s.modTime = fresh.modTime
	return true, nil
}
