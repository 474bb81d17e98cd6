package workspace

import (
	"fmt"
	"slices"

	"paneldeck/ui/dnd"
	"paneldeck/ui/layout"

	"github.com/google/uuid"
)

// Window is an ordered list of workspace tabs with one of them selected.
type Window struct {
	ID       string       `json:"id"`
	Tabs     []*Workspace `json:"tabs"`
	Selected int          `json:"selected"`

	// MaxTabs limits Add and Insert; zero means unlimited.
	MaxTabs int `json:"-"`
}

// NewWindow returns a window holding tabs, the first one selected.
func NewWindow(tabs ...*Workspace) *Window {
	return &Window{ID: uuid.New().String(), Tabs: tabs}
}

// Len returns the number of tabs.
func (w *Window) Len() int {
	return len(w.Tabs)
}

// SelectedTab returns the selected workspace, or nil for an empty window.
func (w *Window) SelectedTab() *Workspace {
	if w.Selected < 0 || w.Selected >= len(w.Tabs) {
		return nil
	}
	return w.Tabs[w.Selected]
}

func (w *Window) checkIndex(i int) error {
	if i < 0 || i >= len(w.Tabs) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrTabOutOfRange, i, len(w.Tabs))
	}
	return nil
}

// Select makes tab i the selected one.
func (w *Window) Select(i int) error {
	if err := w.checkIndex(i); err != nil {
		return err
	}
	w.Selected = i
	return nil
}

// SelectNext selects the next tab, wrapping around.
func (w *Window) SelectNext() {
	if n := len(w.Tabs); n > 0 {
		w.Selected = (w.Selected + 1) % n
	}
}

// SelectPrev selects the previous tab, wrapping around.
func (w *Window) SelectPrev() {
	if n := len(w.Tabs); n > 0 {
		w.Selected = (w.Selected - 1 + n) % n
	}
}

// Add appends ws and selects it.
func (w *Window) Add(ws *Workspace) error {
	return w.Insert(len(w.Tabs), ws)
}

// Insert puts ws at index at (clamped to the list) and selects it.
func (w *Window) Insert(at int, ws *Workspace) error {
	if w.MaxTabs > 0 && len(w.Tabs) >= w.MaxTabs {
		return fmt.Errorf("%w: limit is %d", ErrTooManyTabs, w.MaxTabs)
	}
	at = layout.Clamp(at, 0, len(w.Tabs))
	w.Tabs = slices.Insert(w.Tabs, at, ws)
	w.Selected = at
	return nil
}

// MoveTab moves the tab at from into the insertion gap to, which counts
// positions between tabs: 0 is before the first tab, Len() after the last.
// An out of range source is rejected; an out of range gap is clamped. The
// selected workspace stays selected.
func (w *Window) MoveTab(from, to int) error {
	if err := w.checkIndex(from); err != nil {
		return err
	}
	gap := layout.Clamp(to, 0, len(w.Tabs))
	final := dnd.FinalIndex(from, gap)
	if final == from {
		return nil
	}
	selected := w.SelectedTab()
	item := w.Tabs[from]
	w.Tabs = slices.Delete(w.Tabs, from, from+1)
	w.Tabs = slices.Insert(w.Tabs, final, item)
	w.Selected = max(slices.Index(w.Tabs, selected), 0)
	return nil
}

// MoveSelected shifts the selected tab by delta positions, stopping at the
// ends. It reports whether anything moved.
func (w *Window) MoveSelected(delta int) (bool, error) {
	if len(w.Tabs) == 0 || delta == 0 {
		return false, nil
	}
	from := w.Selected
	final := layout.Clamp(from+delta, 0, len(w.Tabs)-1)
	if final == from {
		return false, nil
	}
	gap := final
	if final > from {
		gap = final + 1
	}
	return true, w.MoveTab(from, gap)
}

// Close removes tab i. The last tab and non-closable tabs stay.
func (w *Window) Close(i int) error {
	if err := w.checkIndex(i); err != nil {
		return err
	}
	if len(w.Tabs) == 1 {
		return ErrLastTab
	}
	if !w.Tabs[i].Closable {
		return fmt.Errorf("%q: %w", w.Tabs[i].Title, ErrNotClosable)
	}
	_, err := w.Remove(i)
	return err
}

// Remove takes tab i out of the window without any closability checks, for
// moving it elsewhere. The window may end up empty.
func (w *Window) Remove(i int) (*Workspace, error) {
	if err := w.checkIndex(i); err != nil {
		return nil, err
	}
	ws := w.Tabs[i]
	w.Tabs = slices.Delete(w.Tabs, i, i+1)
	switch {
	case len(w.Tabs) == 0:
		w.Selected = 0
	case w.Selected > i || w.Selected >= len(w.Tabs):
		w.Selected--
	}
	return ws, nil
}

// Duplicate inserts a copy of tab i right after it and selects the copy.
func (w *Window) Duplicate(i int) (*Workspace, error) {
	if err := w.checkIndex(i); err != nil {
		return nil, err
	}
	dup, err := w.Tabs[i].Duplicate()
	if err != nil {
		return nil, err
	}
	if err := w.Insert(i+1, dup); err != nil {
		return nil, err
	}
	return dup, nil
}

// Titles returns the set of tab titles.
func (w *Window) Titles() map[string]bool {
	out := make(map[string]bool, len(w.Tabs))
	for _, t := range w.Tabs {
		out[t.Title] = true
	}
	return out
}
