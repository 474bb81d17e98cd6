package app

import (
	"fmt"
	"strings"

	"paneldeck/keys"
	"paneldeck/log"
	"paneldeck/ui"
	"paneldeck/ui/layout"
	"paneldeck/ui/overlay"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type helpText interface {
	// toContent returns the help UI content.
	toContent() string
	// mask returns the bit of this screen in the seen bitmask; zero means
	// the screen is shown every time.
	mask() uint32
}

type helpTypeGeneral struct{}

type helpTypeWorkspace struct{}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ui.Primary)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ui.TextPrimary)
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(ui.TextSecondary)
	descStyle   = lipgloss.NewStyle().Foreground(ui.TextMuted)
)

func helpLine(name keys.KeyName) string {
	h := keys.GlobalkeyBindings[name].Help()
	return fmt.Sprintf("%s %s", keyStyle.Render(fmt.Sprintf("%-10s", h.Key)), descStyle.Render(h.Desc))
}

func helpSection(header string, names ...keys.KeyName) string {
	lines := []string{headerStyle.Render(header)}
	for _, n := range names {
		lines = append(lines, helpLine(n))
	}
	return strings.Join(lines, "\n")
}

func (h helpTypeGeneral) toContent() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("paneldeck"),
		"",
		descStyle.Render("Drag a tab to reorder it, onto the edge of a neighbouring"),
		descStyle.Render("window to move it there, or onto the right edge of the"),
		descStyle.Render("screen to open it in a new window. Drag the lines between"),
		descStyle.Render("panels and windows to resize them."),
		"",
		helpSection("Tabs:", keys.KeyNew, keys.KeyDuplicate, keys.KeyClose, keys.KeyNextTab, keys.KeyPrevTab,
			keys.KeyMoveTabLeft, keys.KeyMoveTabRight, keys.KeySplitOut),
		"",
		helpSection("Layout:", keys.KeyFocusLeft, keys.KeyFocusRight, keys.KeyWindowLeft, keys.KeyWindowRight,
			keys.KeyShrink, keys.KeyGrow),
		"",
		helpSection("Other:", keys.KeyShare, keys.KeyHelp, keys.KeyQuit),
		"",
		descStyle.Render("Press any key to close"),
	)
}

func (h helpTypeGeneral) mask() uint32 {
	return 0
}

func (h helpTypeWorkspace) toContent() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("New workspace"),
		"",
		descStyle.Render("Each tab keeps its own panel layout. A panel dragged"),
		descStyle.Render("down to its minimum width folds into a narrow rail."),
		"",
		helpLine(keys.KeyShare),
		descStyle.Render("copies a snapshot that `paneldeck import` restores."),
		"",
		descStyle.Render("Press any key to close"),
	)
}

func (h helpTypeWorkspace) mask() uint32 {
	return 1 << 0
}

// showHelpScreen displays the help screen overlay if it hasn't been shown
// before. onDismiss runs when the screen closes, or right away when it is
// skipped.
func (m *home) showHelpScreen(helpType helpText, onDismiss func()) tea.Cmd {
	flag := helpType.mask()
	seen := m.appState.GetHelpScreensSeen()
	if flag != 0 && seen&flag != 0 {
		if onDismiss != nil {
			onDismiss()
		}
		return nil
	}
	if flag != 0 {
		if err := m.appState.SetHelpScreensSeen(seen | flag); err != nil {
			log.WarningLog.Printf("failed to save help screen state: %v", err)
		}
	}

	m.textOverlay = overlay.NewTextOverlay(helpType.toContent())
	m.textOverlay.OnDismiss = onDismiss
	m.textOverlay.SetWidth(layout.ComputeOverlaySize(m.constraints.TerminalWidth, 64))
	m.state = stateHelp
	m.menu.SetState(ui.StateOverlay)
	return nil
}

// handleHelpState closes the help overlay on any key.
func (m *home) handleHelpState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.textOverlay == nil || m.textOverlay.HandleKeyPress(msg) {
		m.textOverlay = nil
		m.state = stateDefault
		m.menu.SetState(ui.StateDefault)
	}
	return m, nil
}
