// Package keys maps keyboard input to the application's actions.
package keys

import "github.com/charmbracelet/bubbles/key"

type KeyName int

const (
	KeyNew KeyName = iota
	KeyDuplicate
	KeyClose
	KeyNextTab
	KeyPrevTab
	KeyMoveTabLeft
	KeyMoveTabRight
	KeySplitOut

	KeyFocusLeft
	KeyFocusRight
	KeyWindowLeft
	KeyWindowRight
	KeyShrink
	KeyGrow

	KeyShare
	KeyHelp
	KeyQuit

	KeyUp
	KeyDown
	KeyEnter
	KeyEsc
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"n":          KeyNew,
	"d":          KeyDuplicate,
	"x":          KeyClose,
	"tab":        KeyNextTab,
	"shift+tab":  KeyPrevTab,
	"<":          KeyMoveTabLeft,
	">":          KeyMoveTabRight,
	"w":          KeySplitOut,
	"left":       KeyFocusLeft,
	"h":          KeyFocusLeft,
	"right":      KeyFocusRight,
	"l":          KeyFocusRight,
	"ctrl+left":  KeyWindowLeft,
	"H":          KeyWindowLeft,
	"ctrl+right": KeyWindowRight,
	"L":          KeyWindowRight,
	"[":          KeyShrink,
	"]":          KeyGrow,
	"y":          KeyShare,
	"?":          KeyHelp,
	"q":          KeyQuit,
	"up":         KeyUp,
	"k":          KeyUp,
	"down":       KeyDown,
	"j":          KeyDown,
	"enter":      KeyEnter,
	"esc":        KeyEsc,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyNew: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	KeyDuplicate: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "duplicate"),
	),
	KeyClose: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "close"),
	),
	KeyNextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	KeyPrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev tab"),
	),
	KeyMoveTabLeft: key.NewBinding(
		key.WithKeys("<"),
		key.WithHelp("<", "move left"),
	),
	KeyMoveTabRight: key.NewBinding(
		key.WithKeys(">"),
		key.WithHelp(">", "move right"),
	),
	KeySplitOut: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "new window"),
	),
	KeyFocusLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev panel"),
	),
	KeyFocusRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next panel"),
	),
	KeyWindowLeft: key.NewBinding(
		key.WithKeys("ctrl+left", "H"),
		key.WithHelp("H", "prev window"),
	),
	KeyWindowRight: key.NewBinding(
		key.WithKeys("ctrl+right", "L"),
		key.WithHelp("L", "next window"),
	),
	KeyShrink: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "shrink"),
	),
	KeyGrow: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "grow"),
	),
	KeyShare: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "share"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "select"),
	),
	KeyEsc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}
