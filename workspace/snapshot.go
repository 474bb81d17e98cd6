package workspace

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"paneldeck/ui/layout"
)

// snapshotVersion is bumped when the share format changes incompatibly.
const snapshotVersion = 1

// snapshotData is the shareable part of a workspace. IDs and timestamps are
// not shared; the importer gets fresh ones.
type snapshotData struct {
	Version int                 `json:"v"`
	Title   string              `json:"title"`
	Preset  string              `json:"preset,omitempty"`
	Panels  []PanelSpec         `json:"panels"`
	Layout  layout.PanelsLayout `json:"layout"`
}

// EncodeSnapshot serialises ws into a URL-safe string.
func EncodeSnapshot(ws *Workspace) (string, error) {
	data, err := json.Marshal(snapshotData{
		Version: snapshotVersion,
		Title:   ws.Title,
		Preset:  ws.Preset,
		Panels:  ws.Panels,
		Layout:  ws.Layout,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeSnapshot restores a workspace from EncodeSnapshot output. The result
// is a new workspace with its own ID.
func DecodeSnapshot(s string) (*Workspace, error) {
	s = strings.TrimSpace(s)
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	var data snapshotData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if data.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, data.Version)
	}
	if len(data.Layout) != len(data.Panels) {
		return nil, fmt.Errorf("%w: %d layout entries for %d panels", ErrInvalidSnapshot, len(data.Layout), len(data.Panels))
	}

	ws := New(Preset{Name: data.Preset, Panels: data.Panels, Layout: data.Layout}, data.Title)
	if err := ws.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return ws, nil
}
