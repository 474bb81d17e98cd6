package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"paneldeck/config"
	"paneldeck/keys"
	"paneldeck/log"
	"paneldeck/ui"
	"paneldeck/ui/dnd"
	"paneldeck/ui/layout"
	"paneldeck/ui/overlay"
	"paneldeck/ui/pointer"
	"paneldeck/workspace"
	"paneldeck/workspace/wordgen"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context) error {
	appConfig := config.LoadConfig()
	appState := config.LoadState()

	h, err := newHome(ctx, appConfig, appState)
	if err != nil {
		return err
	}

	watcher, err := config.WatchState()
	if err != nil {
		log.WarningLog.Printf("state changes from other processes will not be picked up: %v", err)
	} else {
		h.watcher = watcher
		defer watcher.Close()
	}

	p := tea.NewProgram(
		h,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Presses, drags and the wheel
		tea.WithReportFocus(),
	)
	_, err = p.Run()
	log.GetProfiler().LogStats()
	return err
}

type state int

const (
	stateDefault state = iota
	// statePreset is the state when the user is picking the preset of a new workspace.
	statePreset
	// stateHelp is the state when a help screen is displayed.
	stateHelp
	// stateConfirm is the state when a confirmation modal is displayed.
	stateConfirm
)

func (s state) String() string {
	switch s {
	case statePreset:
		return "preset"
	case stateHelp:
		return "help"
	case stateConfirm:
		return "confirm"
	default:
		return "default"
	}
}

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	// storage saves and loads the deck to and from the app's state
	storage *workspace.Storage
	// appConfig stores persistent application configuration
	appConfig *config.Config
	// appState stores persistent application state like seen help screens
	appState config.AppState
	// watcher reports state file changes made by other processes; nil in tests
	watcher *config.StateWatcher

	// -- State --

	// state is the current discrete state of the application
	state state
	deck  *workspace.Deck

	// pendingSave indicates that a save is queued (for debouncing)
	pendingSave bool
	// Set by engine callbacks during an event and handled by flush.
	needRebuild bool
	needSave    bool
	needSync    bool
	pendingErr  error

	// -- Layout engine --

	constraints layout.Constraints
	degradation layout.Degradation

	router      *pointer.Router
	windowSplit *layout.Splitter
	windows     []*windowCtrl
	edge        *dnd.WindowSideDropTarget
	gesture     *dnd.Gesture
	// panelFocus remembers the focused panel of every workspace by ID.
	panelFocus map[string]int

	// -- UI Components --

	// menu displays the bottom menu
	menu *ui.Menu
	// errBox displays error messages
	errBox *ui.ErrBox
	// presetOverlay lets the user pick the panels of a new workspace
	presetOverlay *overlay.PresetSelectorOverlay
	// textOverlay displays text information
	textOverlay *overlay.TextOverlay
	// confirmationOverlay displays confirmation modals
	confirmationOverlay *overlay.ConfirmationOverlay
}

func newHome(ctx context.Context, appConfig *config.Config, appState *config.State) (*home, error) {
	storage := workspace.NewStorage(appState)

	deck, err := storage.LoadDeck(appConfig.MaxWindows, appConfig.MaxTabs)
	if err != nil {
		return nil, fmt.Errorf("failed to load windows: %w", err)
	}
	if deck == nil {
		preset, err := workspace.PresetFromKinds(appConfig.DefaultPanels)
		if err != nil {
			log.WarningLog.Printf("invalid default panels, using the default preset: %v", err)
			preset = workspace.DefaultPreset()
		}
		deck = workspace.NewDeck(workspace.New(preset, wordgen.Generate()), appConfig.MaxWindows, appConfig.MaxTabs)
	}

	m := &home{
		ctx:        ctx,
		storage:    storage,
		appConfig:  appConfig,
		appState:   appState,
		state:      stateDefault,
		deck:       deck,
		router:     pointer.NewRouter(),
		panelFocus: make(map[string]int),
		menu:       ui.NewMenu(),
		errBox:     ui.NewErrBox(),
	}
	m.edge = dnd.NewWindowSideDropTarget(layout.ContainerFunc(m.contentBounds), m.moveTabToNewWindow)
	m.rebuild()
	return m, nil
}

func (m *home) contentBounds() layout.Rect {
	return m.constraints.Content
}

// updateHandleWindowSizeEvent sets the sizes of the components.
// The components will try to render inside their bounds.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	// A resize never commits: drags in progress are abandoned.
	m.cancelGesture()

	m.constraints = layout.ComputeConstraints(msg.Width, msg.Height)
	m.degradation = layout.ComputeDegradation(m.constraints)

	m.menu.SetSize(msg.Width, m.constraints.MenuHeight)
	m.menu.SetSingleLine(m.degradation.SingleLineMenu)
	m.errBox.SetSize(msg.Width, m.constraints.ErrBoxHeight)

	overlayWidth := layout.ComputeOverlaySize(msg.Width, 60)
	if m.textOverlay != nil {
		m.textOverlay.SetWidth(overlayWidth)
	}
	if m.presetOverlay != nil {
		m.presetOverlay.SetWidth(overlayWidth)
	}
	if m.confirmationOverlay != nil {
		m.confirmationOverlay.SetWidth(min(overlayWidth, 50))
	}

	m.layoutWindows()
	log.LayoutTrace("resize: %dx%d mode=%s content=%+v", msg.Width, msg.Height, m.constraints.Mode, m.constraints.Content)
	m.writeInspectSnapshot()
}

func (m *home) Init() tea.Cmd {
	return m.waitForStateChange()
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideErrMsg:
		m.errBox.Clear()
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case saveDebounceMsg:
		m.pendingSave = false
		if err := m.storage.SaveDeck(m.deck); err != nil {
			return m, m.handleError(err)
		}
		return m, nil
	case stateChangedMsg:
		m.needSync = true
		return m, tea.Batch(m.flush(), m.waitForStateChange())
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.BlurMsg:
		// Losing focus is a pointer leave for whatever owns the gesture.
		m.router.Leave()
		cmd := m.flush()
		m.updateDragVisuals()
		return m, cmd
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case error:
		return m, m.handleError(msg)
	}
	return m, nil
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	m.cancelGesture()
	if err := m.storage.SaveDeck(m.deck); err != nil {
		return m, m.handleError(err)
	}
	return m, tea.Quit
}

// handleMenuHighlighting returns a command to highlight the pressed key in the menu.
// This is purely visual - it briefly underlines the corresponding menu item.
func (m *home) handleMenuHighlighting(msg tea.KeyMsg) tea.Cmd {
	if m.state != stateDefault {
		return nil
	}
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return nil
	}
	if name == keys.KeyUp || name == keys.KeyDown {
		return nil
	}
	return m.keydownCallback(name)
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (mod tea.Model, cmd tea.Cmd) {
	// Get the menu highlight command - this is batched with the action command later
	highlightCmd := m.handleMenuHighlighting(msg)

	switch m.state {
	case stateHelp:
		return m.handleHelpState(msg)
	case statePreset:
		return m.handlePresetState(msg)
	case stateConfirm:
		if m.confirmationOverlay.HandleKeyPress(msg) {
			m.confirmationOverlay = nil
			m.state = stateDefault
			m.menu.SetState(ui.StateDefault)
			return m, m.flush()
		}
		return m, nil
	}

	if msg.String() == "ctrl+c" {
		return m.handleQuit()
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	// A key press during a drag cancels it. Escape does nothing else.
	if m.router.Active() {
		m.router.Leave()
		cmd := m.flush()
		m.updateDragVisuals()
		if name == keys.KeyEsc {
			return m, cmd
		}
	}

	model, actionCmd := m.handleDefaultKey(name)
	return model, tea.Batch(highlightCmd, actionCmd, m.flush())
}

func (m *home) handleDefaultKey(name keys.KeyName) (tea.Model, tea.Cmd) {
	w := m.deck.FocusedWindow()
	ctrl := m.focusedCtrl()

	switch name {
	case keys.KeyQuit:
		return m.handleQuit()
	case keys.KeyHelp:
		return m, m.showHelpScreen(helpTypeGeneral{}, nil)
	case keys.KeyNew:
		if w.MaxTabs > 0 && w.Len() >= w.MaxTabs {
			return m, m.handleError(fmt.Errorf("%w: limit is %d", workspace.ErrTooManyTabs, w.MaxTabs))
		}
		m.presetOverlay = overlay.NewPresetSelectorOverlay(m.presets())
		m.presetOverlay.SetWidth(layout.ComputeOverlaySize(m.constraints.TerminalWidth, 60))
		m.state = statePreset
		m.menu.SetState(ui.StateOverlay)
		return m, nil
	case keys.KeyDuplicate:
		if _, err := w.Duplicate(w.Selected); err != nil {
			return m, m.handleError(err)
		}
		m.structureChanged()
	case keys.KeyClose:
		return m, m.closeSelected()
	case keys.KeyNextTab:
		w.SelectNext()
		m.structureChanged()
	case keys.KeyPrevTab:
		w.SelectPrev()
		m.structureChanged()
	case keys.KeyMoveTabLeft, keys.KeyMoveTabRight:
		delta := -1
		if name == keys.KeyMoveTabRight {
			delta = 1
		}
		moved, err := w.MoveSelected(delta)
		if err != nil {
			return m, m.handleError(err)
		}
		if moved {
			m.structureChanged()
		}
	case keys.KeySplitOut:
		if err := m.deck.MoveTabToNewWindow(m.deck.Focused, w.Selected, m.deck.Focused+1); err != nil {
			return m, m.handleError(err)
		}
		m.structureChanged()
	case keys.KeyFocusLeft:
		if ctrl != nil {
			ctrl.split.FocusPrev()
			m.rememberFocus(ctrl)
		}
	case keys.KeyFocusRight:
		if ctrl != nil {
			ctrl.split.FocusNext()
			m.rememberFocus(ctrl)
		}
	case keys.KeyWindowLeft:
		if m.deck.Focused > 0 {
			_ = m.deck.Focus(m.deck.Focused - 1)
		}
	case keys.KeyWindowRight:
		if m.deck.Focused < len(m.deck.Windows)-1 {
			_ = m.deck.Focus(m.deck.Focused + 1)
		}
	case keys.KeyShrink, keys.KeyGrow:
		if ctrl == nil {
			return m, nil
		}
		delta := 1
		if name == keys.KeyShrink {
			delta = -1
		}
		if err := resizeFocusedPanel(ctrl, delta); err != nil {
			return m, m.handleError(err)
		}
	case keys.KeyUp:
		if ctrl != nil {
			ctrl.split.ScrollFocused(-1)
		}
	case keys.KeyDown:
		if ctrl != nil {
			ctrl.split.ScrollFocused(1)
		}
	case keys.KeyShare:
		return m, m.shareSelected()
	}
	return m, nil
}

// resizeFocusedPanel grows (delta > 0) or shrinks the focused panel by moving
// its leading splitter; the first panel uses its trailing one.
func resizeFocusedPanel(ctrl *windowCtrl, delta int) error {
	focused := ctrl.split.Focused()
	if len(ctrl.splitter.Panels()) < 2 {
		return nil
	}
	if focused == 0 {
		return ctrl.splitter.Nudge(1, delta)
	}
	return ctrl.splitter.Nudge(focused, -delta)
}

func (m *home) presets() []workspace.Preset {
	presets := append([]workspace.Preset(nil), workspace.Presets...)
	if custom, err := workspace.PresetFromKinds(m.appConfig.DefaultPanels); err == nil {
		custom.Name = "configured"
		presets = append(presets, custom)
	}
	return presets
}

func (m *home) handlePresetState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.presetOverlay.HandleKeyPress(msg) {
		return m, nil
	}
	selected := m.presetOverlay.Selected
	m.presetOverlay = nil
	m.state = stateDefault
	m.menu.SetState(ui.StateDefault)
	if selected == "" {
		return m, nil
	}

	var preset workspace.Preset
	for _, p := range m.presets() {
		if p.Name == selected {
			preset = p
		}
	}
	ws := workspace.New(preset, wordgen.GenerateUnique(m.deck.Titles()))
	if err := m.deck.FocusedWindow().Add(ws); err != nil {
		return m, m.handleError(err)
	}
	log.InfoLog.Printf("created workspace %q with preset %q", ws.Title, preset.Name)
	m.structureChanged()
	return m, tea.Batch(m.flush(), m.showHelpScreen(helpTypeWorkspace{}, nil))
}

// closeSelected asks before closing the selected tab. Tabs that cannot be
// closed are reported right away.
func (m *home) closeSelected() tea.Cmd {
	w := m.deck.FocusedWindow()
	ws := w.SelectedTab()
	if ws == nil {
		return nil
	}
	if w.Len() == 1 {
		return m.handleError(workspace.ErrLastTab)
	}
	if !ws.Closable {
		return m.handleError(fmt.Errorf("%q: %w", ws.Title, workspace.ErrNotClosable))
	}
	// The deck may be reloaded from disk while the prompt is open, so the tab
	// is found again by ID on confirm.
	id, title := ws.ID, ws.Title
	message := fmt.Sprintf("[!] Close workspace '%s'?", title)
	return m.confirmAction(message, func() error {
		wi, ti, ok := m.deck.Locate(id)
		if !ok {
			return fmt.Errorf("%q: %w", title, workspace.ErrNotFound)
		}
		if err := m.deck.Windows[wi].Close(ti); err != nil {
			return err
		}
		m.structureChanged()
		return nil
	})
}

func (m *home) shareSelected() tea.Cmd {
	ws := m.deck.FocusedWindow().SelectedTab()
	if ws == nil {
		return nil
	}
	snapshot, err := workspace.EncodeSnapshot(ws)
	if err != nil {
		return m.handleError(err)
	}
	if err := clipboard.WriteAll(snapshot); err != nil {
		return m.handleError(fmt.Errorf("failed to copy to clipboard: %w", err))
	}
	log.InfoLog.Printf("copied snapshot of %q", ws.Title)
	return m.showMessage(fmt.Sprintf("copied '%s' to the clipboard", ws.Title))
}

// structureChanged marks the deck as changed: views are rebuilt and a save is
// scheduled at the end of the event.
func (m *home) structureChanged() {
	m.needRebuild = true
	m.needSave = true
}

// flush applies what engine callbacks requested during the event.
func (m *home) flush() tea.Cmd {
	var cmds []tea.Cmd
	if m.needSync && !m.router.Active() {
		m.needSync = false
		cmds = append(cmds, m.syncFromDisk())
	}
	if m.needRebuild {
		m.needRebuild = false
		m.rebuild()
	}
	if m.needSave {
		m.needSave = false
		cmds = append(cmds, m.requestSave())
		m.writeInspectSnapshot()
	}
	if m.pendingErr != nil {
		cmds = append(cmds, m.handleError(m.pendingErr))
		m.pendingErr = nil
	}
	return tea.Batch(cmds...)
}

// syncFromDisk replaces the deck when another process saved a newer one.
func (m *home) syncFromDisk() tea.Cmd {
	deck, synced, err := m.storage.SyncFromDisk(m.appConfig.MaxWindows, m.appConfig.MaxTabs)
	if err != nil {
		log.WarningLog.Printf("failed to sync from disk: %v", err)
		return nil
	}
	if synced && deck != nil {
		m.deck = deck
		m.needRebuild = true
	}
	return nil
}

func (m *home) waitForStateChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	changes := m.watcher.Changes()
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case <-changes:
			return stateChangedMsg{}
		}
	}
}

type keyupMsg struct{}

// keydownCallback clears the menu option highlighting after 500ms.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}

		return keyupMsg{}
	}
}

// hideErrMsg implements tea.Msg and clears the error text from the screen.
type hideErrMsg struct{}

// stateChangedMsg is sent when state.json changed on disk.
type stateChangedMsg struct{}

// saveDebounceMsg is sent after a debounce delay to trigger a save
type saveDebounceMsg struct{}

// saveDebounceDelay is how long to wait before saving after a change
const saveDebounceDelay = 500 * time.Millisecond

// errDisplayDuration is how long a message stays in the error box.
const errDisplayDuration = 3 * time.Second

// handleError handles all errors which get bubbled up to the app. sets the error message. We return a callback tea.Cmd that returns a hideErrMsg message
// which clears the error message after 3 seconds.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	return m.hideErrAfter()
}

// showMessage puts an informational message in the error box.
func (m *home) showMessage(msg string) tea.Cmd {
	m.errBox.SetError(errors.New(msg))
	return m.hideErrAfter()
}

func (m *home) hideErrAfter() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(errDisplayDuration):
		}

		return hideErrMsg{}
	}
}

// requestSave schedules a debounced save operation.
// If a save is already pending, this does nothing (the pending save will include all changes).
func (m *home) requestSave() tea.Cmd {
	if m.pendingSave {
		return nil // Already have a pending save
	}
	m.pendingSave = true
	return func() tea.Msg {
		time.Sleep(saveDebounceDelay)
		return saveDebounceMsg{}
	}
}

// confirmAction shows a confirmation modal and stores the action to execute on confirm
func (m *home) confirmAction(message string, action func() error) tea.Cmd {
	m.state = stateConfirm
	m.menu.SetState(ui.StateOverlay)

	m.confirmationOverlay = overlay.NewConfirmationOverlay(message)
	m.confirmationOverlay.SetWidth(50)

	m.confirmationOverlay.OnConfirm = func() {
		if action != nil {
			if err := action(); err != nil {
				m.pendingErr = err
			}
		}
	}
	return nil
}

func (m *home) View() string {
	start := time.Now()
	defer func() { log.GetProfiler().RecordFrame(time.Since(start)) }()

	content := m.constraints.Content
	if content.Empty() {
		return ""
	}
	if m.constraints.ShowMinWarning {
		msg := fmt.Sprintf("Terminal too small: %dx%d (need %dx%d)",
			m.constraints.TerminalWidth, m.constraints.TerminalHeight, layout.MinWidth, layout.MinHeight)
		return lipgloss.Place(m.constraints.TerminalWidth, m.constraints.TerminalHeight,
			lipgloss.Center, lipgloss.Center, ui.TextStyles.Muted.Render(msg))
	}

	mainView := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderWindows(),
		m.menu.String(),
		m.errBox.String(),
	)

	switch m.state {
	case statePreset:
		if m.presetOverlay == nil {
			log.ErrorLog.Printf("preset overlay is nil")
			return mainView
		}
		return overlay.PlaceOverlay(0, 0, m.presetOverlay.Render(), mainView, true, true)
	case stateHelp:
		if m.textOverlay == nil {
			log.ErrorLog.Printf("text overlay is nil")
			return mainView
		}
		return overlay.PlaceOverlay(0, 0, m.textOverlay.Render(), mainView, true, true)
	case stateConfirm:
		if m.confirmationOverlay == nil {
			log.ErrorLog.Printf("confirmation overlay is nil")
			return mainView
		}
		return overlay.PlaceOverlay(0, 0, m.confirmationOverlay.Render(), mainView, true, true)
	}
	return mainView
}
