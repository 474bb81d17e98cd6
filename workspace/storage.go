package workspace

import (
	"encoding/json"
	"fmt"

	"paneldeck/config"
	"paneldeck/log"
)

// Storage handles saving and loading the deck using the state interface
type Storage struct {
	state config.DeckStorage
}

// NewStorage creates a new storage instance
func NewStorage(state config.DeckStorage) *Storage {
	return &Storage{state: state}
}

// SaveDeck saves the deck to disk.
func (s *Storage) SaveDeck(d *Deck) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal deck: %w", err)
	}
	return s.state.SaveDeck(data)
}

// LoadDeck loads the deck from disk. It returns nil without error when
// nothing has been saved yet. Tabs that fail validation are dropped, and the
// cleaned deck is saved back.
func (s *Storage) LoadDeck(maxWindows, maxTabs int) (*Deck, error) {
	raw := s.state.GetDeck()
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var d Deck
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deck: %w", err)
	}

	skipped := d.dropInvalidTabs()
	if len(d.Windows) == 0 {
		return nil, nil
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	d.SetLimits(maxWindows, maxTabs)

	if skipped > 0 {
		log.InfoLog.Printf("Removed %d invalid workspace(s) from state", skipped)
		if err := s.SaveDeck(&d); err != nil {
			log.WarningLog.Printf("Failed to save cleaned state: %v", err)
		}
	}
	return &d, nil
}

// dropInvalidTabs removes tabs that cannot be repaired and the windows they
// leave empty. It returns how many tabs were removed.
func (d *Deck) dropInvalidTabs() int {
	skipped := 0
	for _, w := range d.Windows {
		if w == nil {
			continue
		}
		kept := w.Tabs[:0]
		for _, ws := range w.Tabs {
			if ws == nil {
				skipped++
				continue
			}
			if err := ws.Validate(); err != nil {
				log.WarningLog.Printf("Skipping invalid workspace %q: %v", ws.Title, err)
				skipped++
				continue
			}
			kept = append(kept, ws)
		}
		w.Tabs = kept
	}

	windows := d.Windows[:0]
	var l []float64
	for i, w := range d.Windows {
		if w == nil || w.Len() == 0 {
			continue
		}
		windows = append(windows, w)
		if i < len(d.Layout) {
			l = append(l, d.Layout[i])
		}
	}
	d.Windows = windows
	d.Layout = l
	return skipped
}

// DeleteAll removes the stored deck
func (s *Storage) DeleteAll() error {
	return s.state.DeleteDeck()
}

// StateSyncer is an optional interface for states that support sync from disk
type StateSyncer interface {
	RefreshFromDisk() (bool, error)
}

// SyncFromDisk reloads the deck if another process changed the state file.
// It returns the new deck and whether a sync occurred.
func (s *Storage) SyncFromDisk(maxWindows, maxTabs int) (*Deck, bool, error) {
	syncer, ok := s.state.(StateSyncer)
	if !ok {
		return nil, false, nil
	}

	refreshed, err := syncer.RefreshFromDisk()
	if err != nil {
		return nil, false, fmt.Errorf("failed to refresh state from disk: %w", err)
	}
	if !refreshed {
		return nil, false, nil
	}

	log.InfoLog.Printf("State file changed, reloading deck from disk")
	d, err := s.LoadDeck(maxWindows, maxTabs)
	if err != nil {
		return nil, true, fmt.Errorf("failed to load deck after refresh: %w", err)
	}
	return d, true, nil
}
