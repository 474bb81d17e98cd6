package workspace

import (
	"fmt"
	"strings"

	"paneldeck/ui/layout"
)

// Preset is a named starting arrangement of panels.
type Preset struct {
	Name        string
	Description string
	Panels      []PanelSpec
	Layout      layout.PanelsLayout
}

func (p Preset) initialLayout() layout.PanelsLayout {
	if p.Layout.Valid(len(p.Panels)) {
		return p.Layout.Clone()
	}
	return layout.EqualLayout(len(p.Panels))
}

var (
	eventsPanel    = PanelSpec{Kind: PanelEvents, Title: "Events"}
	messagesPanel  = PanelSpec{Kind: PanelMessages, Title: "Messages"}
	searchPanel    = PanelSpec{Kind: PanelSearch, Title: "Search"}
	bookmarksPanel = PanelSpec{Kind: PanelBookmarks, Title: "Bookmarks"}
)

// Presets lists the built-in presets. The first one is the default.
var Presets = []Preset{
	{
		Name:        "investigate",
		Description: "Events, messages, search and bookmarks",
		Panels:      []PanelSpec{eventsPanel, messagesPanel, searchPanel, bookmarksPanel},
		Layout:      layout.PanelsLayout{30, 35, 20, 15},
	},
	{
		Name:        "timeline",
		Description: "Events next to messages",
		Panels:      []PanelSpec{eventsPanel, messagesPanel},
		Layout:      layout.PanelsLayout{50, 50},
	},
	{
		Name:        "search",
		Description: "Search first, with events and bookmarks",
		Panels:      []PanelSpec{searchPanel, eventsPanel, bookmarksPanel},
		Layout:      layout.PanelsLayout{40, 40, 20},
	},
	{
		Name:        "messages",
		Description: "Messages only",
		Panels:      []PanelSpec{messagesPanel},
		Layout:      layout.PanelsLayout{100},
	},
}

// DefaultPreset returns the first built-in preset.
func DefaultPreset() Preset {
	return Presets[0]
}

// PresetByName finds a built-in preset.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// PresetFromKinds builds an ad-hoc preset from a list of panel kinds, e.g.
// the configured default panels.
func PresetFromKinds(kinds []string) (Preset, error) {
	if len(kinds) == 0 {
		return Preset{}, fmt.Errorf("no panels given")
	}
	p := Preset{Name: "custom", Description: strings.Join(kinds, ", ")}
	for _, k := range kinds {
		kind := PanelKind(strings.ToLower(strings.TrimSpace(k)))
		spec, ok := specFor(kind)
		if !ok {
			return Preset{}, fmt.Errorf("unknown panel kind %q", k)
		}
		p.Panels = append(p.Panels, spec)
	}
	p.Layout = layout.EqualLayout(len(p.Panels))
	return p, nil
}

func specFor(kind PanelKind) (PanelSpec, bool) {
	switch kind {
	case PanelEvents:
		return eventsPanel, true
	case PanelMessages:
		return messagesPanel, true
	case PanelSearch:
		return searchPanel, true
	case PanelBookmarks:
		return bookmarksPanel, true
	}
	return PanelSpec{}, false
}
