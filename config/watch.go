package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"paneldeck/log"

	"github.com/fsnotify/fsnotify"
)

// StateWatcher reports changes to state.json made by other processes. The
// directory is watched rather than the file because SaveState replaces the
// file by rename.
type StateWatcher struct {
	fsWatcher *fsnotify.Watcher
	name      string
	changes   chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// WatchState starts watching the state file in the config directory.
func WatchState() (*StateWatcher, error) {
	path, err := statePath()
	if err != nil {
		return nil, err
	}
	return watchFile(path)
}

func watchFile(path string) (*StateWatcher, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &StateWatcher{
		fsWatcher: fsWatcher,
		name:      filepath.Base(path),
		changes:   make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Changes delivers one value per burst of changes. Pending notifications are
// coalesced, so a slow reader sees at most one.
func (w *StateWatcher) Changes() <-chan struct{} {
	return w.changes
}

func (w *StateWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != w.name {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.WarningLog.Printf("state watcher error: %v", err)
		}
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *StateWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
	})
	return err
}
