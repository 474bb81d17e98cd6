// Package inspect describes the rendered deck as data. With PANELDECK_INSPECT=1
// the app writes a JSON snapshot of window and panel bounds, splitter
// positions and drag state after every layout change, so tools can follow the
// UI without reading the screen.
package inspect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Introspectable is implemented by components that can describe themselves.
type Introspectable interface {
	InspectNode() *Node
}

const (
	// EnvInspect enables snapshot writing when set to "1".
	EnvInspect = "PANELDECK_INSPECT"
	// EnvInspectFile overrides where snapshots are written.
	EnvInspectFile = "PANELDECK_INSPECT_FILE"
)

var (
	once    sync.Once
	enabled bool
	outPath string
)

func load() {
	once.Do(func() {
		enabled = os.Getenv(EnvInspect) == "1"
		outPath = os.Getenv(EnvInspectFile)
		if outPath == "" {
			outPath = filepath.Join(os.TempDir(), "paneldeck-inspect.json")
		}
	})
}

// IsEnabled reports whether snapshots are being written.
func IsEnabled() bool {
	load()
	return enabled
}

// OutputPath is where WriteSnapshot puts its file, whether or not writing is
// enabled.
func OutputPath() string {
	load()
	return outPath
}

// WriteSnapshot replaces the inspection file with s. It does nothing unless
// inspection is enabled.
func WriteSnapshot(s *Snapshot) error {
	if !IsEnabled() {
		return nil
	}
	return WriteSnapshotToPath(s, outPath)
}

// WriteSnapshotToPath writes s as indented JSON. The file is renamed into
// place so readers never see a partial snapshot.
func WriteSnapshotToPath(s *Snapshot, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
