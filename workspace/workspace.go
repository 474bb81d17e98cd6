// Package workspace holds the documents the layout engine arranges: a deck
// of side-by-side windows, each with an ordered list of workspace tabs, each
// workspace with its panels and their percentage layout.
package workspace

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"paneldeck/ui/layout"

	"github.com/google/uuid"
)

var (
	ErrTabOutOfRange    = errors.New("tab index out of range")
	ErrWindowOutOfRange = errors.New("window index out of range")
	ErrLastTab          = errors.New("cannot close the last tab")
	ErrNotClosable      = errors.New("workspace is not closable")
	ErrNotDuplicable    = errors.New("workspace cannot be duplicated")
	ErrTooManyTabs      = errors.New("too many tabs in window")
	ErrTooManyWindows   = errors.New("too many windows")
	ErrInvalidLayout    = errors.New("invalid panels layout")
	ErrInvalidSnapshot  = errors.New("invalid workspace snapshot")
	ErrNotFound         = errors.New("workspace not found")
)

// PanelKind names what a panel shows. The layout engine never looks at it.
type PanelKind string

const (
	PanelEvents    PanelKind = "events"
	PanelMessages  PanelKind = "messages"
	PanelSearch    PanelKind = "search"
	PanelBookmarks PanelKind = "bookmarks"
)

// Valid reports whether k is a known panel kind.
func (k PanelKind) Valid() bool {
	switch k {
	case PanelEvents, PanelMessages, PanelSearch, PanelBookmarks:
		return true
	}
	return false
}

// PanelSpec is the stored description of one panel.
type PanelSpec struct {
	Kind     PanelKind `json:"kind"`
	Title    string    `json:"title"`
	MinWidth int       `json:"min_width,omitempty"`
}

// Workspace is one tab: a titled set of panels and their layout.
type Workspace struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Preset     string              `json:"preset"`
	Panels     []PanelSpec         `json:"panels"`
	Layout     layout.PanelsLayout `json:"layout"`
	Closable   bool                `json:"closable"`
	Duplicable bool                `json:"duplicable"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// New creates a workspace from preset.
func New(preset Preset, title string) *Workspace {
	now := time.Now()
	return &Workspace{
		ID:         uuid.New().String(),
		Title:      title,
		Preset:     preset.Name,
		Panels:     slices.Clone(preset.Panels),
		Layout:     preset.initialLayout(),
		Closable:   true,
		Duplicable: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Duplicate returns a copy with a fresh ID and a " (copy)" title.
func (w *Workspace) Duplicate() (*Workspace, error) {
	if !w.Duplicable {
		return nil, fmt.Errorf("%q: %w", w.Title, ErrNotDuplicable)
	}
	now := time.Now()
	dup := *w
	dup.ID = uuid.New().String()
	dup.Title = w.Title + " (copy)"
	dup.Panels = slices.Clone(w.Panels)
	dup.Layout = w.Layout.Clone()
	dup.Closable = true
	dup.CreatedAt = now
	dup.UpdatedAt = now
	return &dup, nil
}

// SetLayout stores a committed layout. It must have one entry per panel; the
// entries are normalised to sum to 100.
func (w *Workspace) SetLayout(l layout.PanelsLayout) error {
	if len(l) != len(w.Panels) {
		return fmt.Errorf("%w: %d entries for %d panels", ErrInvalidLayout, len(l), len(w.Panels))
	}
	w.Layout = l.Normalize()
	w.UpdatedAt = time.Now()
	return nil
}

// Validate checks the workspace invariants and repairs the layout when it
// merely fails to add up.
func (w *Workspace) Validate() error {
	if w.ID == "" {
		return errors.New("workspace has no id")
	}
	if len(w.Panels) == 0 {
		return fmt.Errorf("workspace %q has no panels", w.Title)
	}
	for _, p := range w.Panels {
		if !p.Kind.Valid() {
			return fmt.Errorf("workspace %q: unknown panel kind %q", w.Title, p.Kind)
		}
	}
	if !w.Layout.Valid(len(w.Panels)) {
		if len(w.Layout) != len(w.Panels) {
			w.Layout = layout.EqualLayout(len(w.Panels))
		} else {
			w.Layout = w.Layout.Normalize()
		}
	}
	return nil
}

// LayoutPanels converts the stored panels to engine panels. floor is used for
// panels without their own minimum width.
func (w *Workspace) LayoutPanels(floor int) []layout.Panel {
	out := make([]layout.Panel, len(w.Panels))
	for i, p := range w.Panels {
		minW := p.MinWidth
		if minW <= 0 {
			minW = floor
		}
		out[i] = layout.Panel{Title: p.Title, MinWidth: minW}
	}
	return out
}
