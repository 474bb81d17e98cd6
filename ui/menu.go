package ui

import (
	"strings"

	"paneldeck/keys"

	"github.com/charmbracelet/lipgloss"
)

var (
	menuKeyStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#655F5F", Dark: "#7F7A7A"})
	menuDescStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#7A7474", Dark: "#9C9494"})
	menuSepStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DDDADA", Dark: "#3C3C3C"})
	menuActionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
)

const (
	itemSeparator  = " • "
	groupSeparator = " │ "
)

// MenuState represents different states the menu can be in
type MenuState int

const (
	StateDefault MenuState = iota
	StateDragging
	StateOverlay
)

var (
	tabGroup     = []keys.KeyName{keys.KeyNew, keys.KeyDuplicate, keys.KeyClose, keys.KeyMoveTabLeft, keys.KeyMoveTabRight, keys.KeySplitOut}
	layoutGroup  = []keys.KeyName{keys.KeyFocusLeft, keys.KeyFocusRight, keys.KeyShrink, keys.KeyGrow}
	systemGroup  = []keys.KeyName{keys.KeyShare, keys.KeyHelp, keys.KeyQuit}
	dragGroup    = []keys.KeyName{keys.KeyEsc}
	overlayGroup = []keys.KeyName{keys.KeyEnter, keys.KeyEsc}
)

type Menu struct {
	groups        [][]keys.KeyName
	height, width int
	state         MenuState
	singleLine    bool

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

func NewMenu() *Menu {
	m := &Menu{keyDown: -1}
	m.updateGroups()
	return m
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetState updates the menu state and options accordingly
func (m *Menu) SetState(state MenuState) {
	m.state = state
	m.updateGroups()
}

func (m *Menu) State() MenuState {
	return m.state
}

// SetSingleLine drops the layout group when the chrome is folded.
func (m *Menu) SetSingleLine(single bool) {
	m.singleLine = single
	m.updateGroups()
}

func (m *Menu) updateGroups() {
	switch m.state {
	case StateDragging:
		m.groups = [][]keys.KeyName{dragGroup}
	case StateOverlay:
		m.groups = [][]keys.KeyName{overlayGroup}
	default:
		if m.singleLine {
			m.groups = [][]keys.KeyName{tabGroup, systemGroup}
		} else {
			m.groups = [][]keys.KeyName{tabGroup, layoutGroup, systemGroup}
		}
	}
}

func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// renderGroup draws one group of bindings. The tab actions group is
// highlighted while nothing modal is going on.
func (m *Menu) renderGroup(group []keys.KeyName, highlight bool) string {
	items := make([]string, 0, len(group))
	for _, k := range group {
		help := keys.GlobalkeyBindings[k].Help()
		ks, ds := menuKeyStyle, menuDescStyle
		if highlight {
			ks, ds = menuActionStyle, menuActionStyle
		}
		if m.keyDown == k {
			ks, ds = ks.Underline(true), ds.Underline(true)
		}
		items = append(items, ks.Render(help.Key)+" "+ds.Render(help.Desc))
	}
	return strings.Join(items, menuSepStyle.Render(itemSeparator))
}

// String centres the key hints in the menu area.
func (m *Menu) String() string {
	rendered := make([]string, len(m.groups))
	for i, group := range m.groups {
		rendered[i] = m.renderGroup(group, i == 0 && m.state == StateDefault)
	}
	line := strings.Join(rendered, menuSepStyle.Render(groupSeparator))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, line)
}
