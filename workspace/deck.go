package workspace

import (
	"fmt"
	"slices"

	"paneldeck/log"
	"paneldeck/ui/layout"
)

// Deck is the whole screen: side-by-side windows and the percentage layout of
// their widths.
type Deck struct {
	Windows []*Window           `json:"windows"`
	Layout  layout.PanelsLayout `json:"layout"`
	Focused int                 `json:"focused"`

	MaxWindows int `json:"-"`
	MaxTabs    int `json:"-"`
}

// NewDeck returns a deck with one window holding first.
func NewDeck(first *Workspace, maxWindows, maxTabs int) *Deck {
	d := &Deck{MaxWindows: maxWindows, MaxTabs: maxTabs}
	w := NewWindow(first)
	w.MaxTabs = maxTabs
	d.Windows = []*Window{w}
	d.Layout = layout.PanelsLayout{100}
	return d
}

// SetLimits applies window and tab limits, e.g. after loading from disk.
func (d *Deck) SetLimits(maxWindows, maxTabs int) {
	d.MaxWindows = maxWindows
	d.MaxTabs = maxTabs
	for _, w := range d.Windows {
		w.MaxTabs = maxTabs
	}
}

// FocusedWindow returns the window receiving keyboard input.
func (d *Deck) FocusedWindow() *Window {
	if len(d.Windows) == 0 {
		return nil
	}
	return d.Windows[layout.Clamp(d.Focused, 0, len(d.Windows)-1)]
}

func (d *Deck) checkWindow(i int) error {
	if i < 0 || i >= len(d.Windows) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrWindowOutOfRange, i, len(d.Windows))
	}
	return nil
}

// Focus moves keyboard focus to window i.
func (d *Deck) Focus(i int) error {
	if err := d.checkWindow(i); err != nil {
		return err
	}
	d.Focused = i
	return nil
}

// CanAddWindow reports whether another window may be opened.
func (d *Deck) CanAddWindow() bool {
	return d.MaxWindows <= 0 || len(d.Windows) < d.MaxWindows
}

// SetLayout stores a committed window layout.
func (d *Deck) SetLayout(l layout.PanelsLayout) error {
	if len(l) != len(d.Windows) {
		return fmt.Errorf("%w: %d entries for %d windows", ErrInvalidLayout, len(l), len(d.Windows))
	}
	d.Layout = l.Normalize()
	return nil
}

// MoveTabToWindow moves tab from window src to the end of window dst. A source
// window left empty is closed.
func (d *Deck) MoveTabToWindow(src, tab, dst int) error {
	if err := d.checkWindow(src); err != nil {
		return err
	}
	if err := d.checkWindow(dst); err != nil {
		return err
	}
	if src == dst {
		return nil
	}
	target := d.Windows[dst]
	if target.MaxTabs > 0 && target.Len() >= target.MaxTabs {
		return fmt.Errorf("%w: limit is %d", ErrTooManyTabs, target.MaxTabs)
	}
	ws, err := d.Windows[src].Remove(tab)
	if err != nil {
		return err
	}
	if err := target.Add(ws); err != nil {
		return err
	}
	log.InfoLog.Printf("moved tab %q from window %d to window %d", ws.Title, src, dst)
	d.Focused = dst
	d.dropEmpty()
	return nil
}

// MoveTabToNewWindow moves tab from window src into a new window inserted at
// position at (clamped). Moving the only tab of a window just relocates it.
func (d *Deck) MoveTabToNewWindow(src, tab, at int) error {
	if err := d.checkWindow(src); err != nil {
		return err
	}
	source := d.Windows[src]
	if err := source.checkIndex(tab); err != nil {
		return err
	}
	if !d.CanAddWindow() && source.Len() > 1 {
		return fmt.Errorf("%w: limit is %d", ErrTooManyWindows, d.MaxWindows)
	}
	ws, err := source.Remove(tab)
	if err != nil {
		return err
	}
	w := NewWindow(ws)
	w.MaxTabs = d.MaxTabs
	at = layout.Clamp(at, 0, len(d.Windows))
	d.insertWindow(at, w)
	log.InfoLog.Printf("moved tab %q from window %d to new window %d", ws.Title, src, at)
	d.Focused = at
	d.dropEmpty()
	return nil
}

// insertWindow gives the new window an equal share and scales the others
// down to make room.
func (d *Deck) insertWindow(at int, w *Window) {
	n := len(d.Windows)
	share := 100 / float64(n+1)
	base := d.Layout.Normalize()
	if len(base) != n {
		base = layout.EqualLayout(n)
	}
	scaled := make(layout.PanelsLayout, 0, n+1)
	for _, v := range base {
		scaled = append(scaled, v*float64(n)/float64(n+1))
	}
	d.Layout = slices.Insert(scaled, at, share)
	d.Windows = slices.Insert(d.Windows, at, w)
}

// dropEmpty closes windows without tabs, keeping focus on the same window.
func (d *Deck) dropEmpty() {
	focused := d.FocusedWindow()
	for i := len(d.Windows) - 1; i >= 0; i-- {
		if d.Windows[i].Len() > 0 {
			continue
		}
		d.Windows = slices.Delete(d.Windows, i, i+1)
		if i < len(d.Layout) {
			d.Layout = slices.Delete(d.Layout, i, i+1)
		}
	}
	if len(d.Layout) != len(d.Windows) {
		d.Layout = layout.EqualLayout(len(d.Windows))
	} else {
		d.Layout = d.Layout.Normalize()
	}
	d.Focused = max(slices.Index(d.Windows, focused), 0)
}

// Locate returns the window and tab index of the workspace with the given ID.
func (d *Deck) Locate(id string) (window, tab int, ok bool) {
	for i, w := range d.Windows {
		for j, ws := range w.Tabs {
			if ws.ID == id {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

// Titles returns every tab title in the deck.
func (d *Deck) Titles() map[string]bool {
	out := make(map[string]bool)
	for _, w := range d.Windows {
		for t := range w.Titles() {
			out[t] = true
		}
	}
	return out
}

// Validate repairs what can be repaired after loading and rejects the rest.
func (d *Deck) Validate() error {
	if len(d.Windows) == 0 {
		return fmt.Errorf("deck has no windows")
	}
	for i, w := range d.Windows {
		if w.Len() == 0 {
			return fmt.Errorf("window %d has no tabs", i)
		}
		for _, ws := range w.Tabs {
			if err := ws.Validate(); err != nil {
				return fmt.Errorf("window %d: %w", i, err)
			}
		}
		w.Selected = layout.Clamp(w.Selected, 0, w.Len()-1)
	}
	if !d.Layout.Valid(len(d.Windows)) {
		if len(d.Layout) == len(d.Windows) {
			d.Layout = d.Layout.Normalize()
		} else {
			d.Layout = layout.EqualLayout(len(d.Windows))
		}
	}
	d.Focused = layout.Clamp(d.Focused, 0, len(d.Windows)-1)
	return nil
}
