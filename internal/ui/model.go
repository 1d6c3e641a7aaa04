// Package ui is the bubbletea front end: a tab bar over session lists,
// session details, the notes editor, transcripts and settings.
package ui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/polka/internal/autosave"
	"github.com/renato0307/polka/internal/domain"
	"github.com/renato0307/polka/internal/logging"
	"github.com/renato0307/polka/internal/ports"
	"github.com/renato0307/polka/internal/stores"
	"github.com/renato0307/polka/internal/theme"
)

const (
	defaultErrorClearDelay = 10 * time.Second
	// bounds the notes flush that runs when the editor is unmounted
	notesFlushTimeout = 5 * time.Second
	// tab bar, blank line, help line and two error lines
	chromeHeight = 5
)

type uiState int

const (
	stateMain uiState = iota
	stateConfirmingDelete
	stateCreatingSession
	stateSettingStatus
)

// viewRouter records the path the navigator routed to
type viewRouter struct {
	path string
}

func (r *viewRouter) Navigate(path string) {
	logging.Logger.Debug("Route changed", "path", path)
	r.path = path
}

// Options configure a Model
type Options struct {
	AutosaveDelay   time.Duration // 0 uses autosave.DefaultDelay
	ErrorClearDelay time.Duration // 0 uses ten seconds
	Settings        []SettingRow
}

// Model is the root bubbletea model. Each Model owns its own stores, so
// several can run side by side (one per SSH session).
type Model struct {
	archiveList     *SessionList
	client          ports.SessionClient
	deleteConfirmed *bool
	deleteForm      *Dialog
	deleteTarget    domain.Session
	done            chan struct{}
	errorManager    *ErrorManager
	flushTimeout    time.Duration
	height          int
	help            help.Model
	homeList        *SessionList
	keys            KeyMap
	lastStoreError  string
	libraryList     *SessionList
	navigator       *stores.Navigator
	notes           *NotesView
	notesOpts       autosave.Options
	router          *viewRouter
	saveErrCh       chan error
	sessionForm     *Dialog
	sessions        *stores.SessionsStore
	settings        []SettingRow
	shutdownOnce    sync.Once
	state           uiState
	statusForm      *Dialog
	transcript      *TranscriptView
	unsubscribe     func()
	updates         <-chan struct{}
	width           int
}

var _ ports.Router = (*viewRouter)(nil)

// NewModel creates the TUI over client
func NewModel(client ports.SessionClient, opts Options) *Model {
	sessions := stores.NewSessionsStore(client)
	updates, unsubscribe := sessions.Subscribe()
	router := &viewRouter{path: domain.PathHome}

	notesOpts := autosave.DefaultOptions()
	if opts.AutosaveDelay > 0 {
		notesOpts.Delay = opts.AutosaveDelay
	}
	errorClearDelay := opts.ErrorClearDelay
	if errorClearDelay <= 0 {
		errorClearDelay = defaultErrorClearDelay
	}

	return &Model{
		archiveList:  NewSessionList("Archive", scopeArchived),
		client:       client,
		done:         make(chan struct{}),
		errorManager: NewErrorManager(errorClearDelay),
		flushTimeout: notesFlushTimeout,
		help:         help.New(),
		homeList:     NewSessionList("Sessions", scopeActive),
		keys:         NewKeyMap(),
		libraryList:  NewSessionList("Library", scopeAll),
		navigator:    stores.NewNavigator(stores.NewTabsStore(), router),
		notesOpts:    notesOpts,
		router:       router,
		saveErrCh:    make(chan error, 4),
		sessions:     sessions,
		settings:     opts.Settings,
		state:        stateMain,
		unsubscribe:  unsubscribe,
		updates:      updates,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadSessions(),
		waitForChange(m.updates),
		waitForSaveError(m.saveErrCh, m.done),
	)
}

// Shutdown flushes the notes editor and stops background listeners.
// It is safe to call more than once.
func (m *Model) Shutdown(ctx context.Context) error {
	var err error
	if m.notes != nil {
		err = m.notes.Shutdown(ctx)
	}
	m.shutdownOnce.Do(func() {
		m.unsubscribe()
		close(m.done)
	})
	return err
}

func (m *Model) loadSessions() tea.Cmd {
	sessions := m.sessions
	return func() tea.Msg {
		sessions.Load(context.Background())
		return nil
	}
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return sessionsChangedMsg{}
	}
}

func waitForSaveError(ch <-chan error, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case err := <-ch:
			return saveErrorMsg{err: err}
		case <-done:
			return nil
		}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.state == stateMain {
			return m, nil
		}

	case sessionsChangedMsg:
		return m, m.handleSessionsChanged()

	case saveErrorMsg:
		m.errorManager.SetError(fmt.Errorf("failed to save notes: %w", msg.err))
		return m, tea.Batch(m.errorManager.ClearAfterDelay(), waitForSaveError(m.saveErrCh, m.done))

	case clearErrorMsg:
		if m.errorManager.handleClear(msg) {
			m.sessions.ClearError()
		}
		return m, nil

	case notesLoadedMsg:
		return m, m.handleNotesLoaded(msg)

	case transcriptLoadedMsg:
		return m, m.handleTranscriptLoaded(msg)

	case sessionCreatedMsg:
		if msg.session == nil {
			return m, nil
		}
		m.navigator.OpenSessionTab(msg.session.ID, msg.session.DisplayTitle())
		return m, m.syncRoute()

	case opDoneMsg:
		return m, m.handleOpDone(msg)

	case tea.BlurMsg:
		if m.notes != nil {
			return m, m.notes.Blur()
		}
		return m, nil
	}

	switch m.state {
	case stateConfirmingDelete:
		return m.updateConfirmingDelete(msg)
	case stateCreatingSession:
		return m.updateCreatingSession(msg)
	case stateSettingStatus:
		return m.updateSettingStatus(msg)
	}
	return m.updateMain(msg)
}

func (m *Model) route() domain.Route {
	return domain.ParseRoute(m.router.path)
}

func (m *Model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	route := m.route()
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.forwardToView(route, msg)
	}

	if key.Matches(keyMsg, m.keys.Application.ForceQuit) {
		return m.quit()
	}

	switch {
	case key.Matches(keyMsg, m.keys.Navigation.Back):
		m.navigator.Back()
		return m, m.syncRoute()
	case key.Matches(keyMsg, m.keys.Navigation.Forward):
		m.navigator.Forward()
		return m, m.syncRoute()
	case key.Matches(keyMsg, m.keys.Navigation.CloseTab):
		m.navigator.CloseTab(m.navigator.Tabs().State().ActiveTabID)
		return m, m.syncRoute()
	case key.Matches(keyMsg, m.keys.Navigation.NextTab):
		m.navigator.CycleTab(1)
		return m, m.syncRoute()
	case key.Matches(keyMsg, m.keys.Navigation.PrevTab):
		m.navigator.CycleTab(-1)
		return m, m.syncRoute()
	}

	if route.Kind == domain.RouteNotes {
		switch {
		case key.Matches(keyMsg, m.keys.Notes.Save):
			if m.notes != nil {
				return m, m.notes.SaveNow()
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.Notes.Leave):
			if !m.navigator.Back() {
				m.goHome()
			}
			return m, m.syncRoute()
		}
		return m, m.forwardToView(route, msg)
	}

	list := m.currentList(route)
	if list != nil && list.Filtering() {
		return m, list.Update(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.Quit):
		return m.quit()
	case key.Matches(keyMsg, m.keys.Application.DismissError):
		m.errorManager.ClearError()
		m.sessions.ClearError()
		return m, nil
	case key.Matches(keyMsg, m.keys.Navigation.Home):
		m.goHome()
		return m, m.syncRoute()
	case key.Matches(keyMsg, m.keys.Navigation.Library):
		m.openOrActivate("Library", domain.PathLibrary, domain.IconLibrary)
		return m, m.syncRoute()
	case key.Matches(keyMsg, m.keys.Navigation.Archive):
		m.openOrActivate("Archive", domain.PathArchive, domain.IconArchive)
		return m, m.syncRoute()
	case key.Matches(keyMsg, m.keys.Navigation.Settings):
		m.openOrActivate("Settings", domain.PathSettings, domain.IconSettings)
		return m, m.syncRoute()
	case key.Matches(keyMsg, m.keys.Session.New):
		m.sessionForm = NewDialog("New Session", NewSessionForm())
		m.state = stateCreatingSession
		return m, m.sessionForm.Init()
	}

	if target, ok := m.targetSession(route); ok {
		title := target.DisplayTitle()
		switch {
		case key.Matches(keyMsg, m.keys.Session.Open) && list != nil:
			m.navigator.OpenSessionTab(target.ID, title)
			return m, m.syncRoute()
		case key.Matches(keyMsg, m.keys.Session.Notes):
			m.navigator.OpenNotesTab(target.ID, "Notes · "+title)
			return m, m.syncRoute()
		case key.Matches(keyMsg, m.keys.Session.Transcript):
			m.navigator.OpenTranscriptTab(target.ID, "Transcript · "+title)
			return m, m.syncRoute()
		case key.Matches(keyMsg, m.keys.Session.SetStatus):
			m.statusForm = NewDialog("Set Status", NewStatusForm(target))
			m.state = stateSettingStatus
			return m, m.statusForm.Init()
		case key.Matches(keyMsg, m.keys.Session.Delete):
			confirmed := false
			m.deleteConfirmed = &confirmed
			m.deleteTarget = target
			m.deleteForm = NewDialog("Delete Session", newDeleteConfirmForm(target, m.deleteConfirmed))
			m.state = stateConfirmingDelete
			return m, m.deleteForm.Init()
		}
	}

	if list != nil {
		switch {
		case key.Matches(keyMsg, m.keys.Session.Sort):
			list.CycleSort()
			return m, list.SetSessions(m.sessions.State().Sessions)
		case key.Matches(keyMsg, m.keys.Session.Reverse):
			list.ReverseOrder()
			return m, list.SetSessions(m.sessions.State().Sessions)
		}
	}

	return m, m.forwardToView(route, msg)
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	ctx, cancel := context.WithTimeout(context.Background(), m.flushTimeout)
	defer cancel()
	if err := m.Shutdown(ctx); err != nil {
		logging.Logger.Error("Failed to save notes on quit", "error", err)
	}
	return m, tea.Quit
}

// goHome activates the home tab and points it back at the home path
func (m *Model) goHome() {
	tabs := m.navigator.Tabs()
	tabs.SetActiveTab(domain.HomeTabID)
	home := domain.HomeTab()
	tabs.UpdateTab(domain.HomeTabID, stores.TabUpdate{Icon: &home.Icon, Path: &home.Path, Title: &home.Title})
	m.navigator.NavigateTo(domain.PathHome)
}

// openOrActivate switches to the tab showing path, adding one if there is none
func (m *Model) openOrActivate(title, path string, icon domain.TabIcon) {
	for _, tab := range m.navigator.Tabs().State().Tabs {
		if tab.Path == path {
			m.navigator.ActivateTab(tab.ID)
			return
		}
	}
	m.navigator.OpenTab(title, path, icon)
}

func (m *Model) currentList(route domain.Route) *SessionList {
	switch route.Kind {
	case domain.RouteHome:
		return m.homeList
	case domain.RouteLibrary:
		return m.libraryList
	case domain.RouteArchive:
		return m.archiveList
	}
	return nil
}

// targetSession returns the session the session keys act on: the list
// selection, or the session shown by the current route
func (m *Model) targetSession(route domain.Route) (domain.Session, bool) {
	if list := m.currentList(route); list != nil {
		return list.Selected()
	}
	if route.SessionID != "" {
		return m.sessions.Find(route.SessionID)
	}
	return domain.Session{}, false
}

func (m *Model) sessionTitle(id string) string {
	if s, ok := m.sessions.Find(id); ok {
		return s.DisplayTitle()
	}
	return id
}

func (m *Model) forwardToView(route domain.Route, msg tea.Msg) tea.Cmd {
	if list := m.currentList(route); list != nil {
		return list.Update(msg)
	}
	switch route.Kind {
	case domain.RouteNotes:
		if m.notes != nil {
			return m.notes.Update(msg)
		}
	case domain.RouteTranscript:
		if m.transcript != nil {
			return m.transcript.Update(msg)
		}
	}
	return nil
}

// syncRoute mounts the view for the current route and unmounts the others.
// A notes editor is flushed before it is dropped, so reopening the same
// notes always loads what was typed. The flush gives up after flushTimeout
// and the failure shows in the error banner.
func (m *Model) syncRoute() tea.Cmd {
	route := m.route()
	var cmds []tea.Cmd

	if m.notes != nil && (route.Kind != domain.RouteNotes || route.SessionID != m.notes.SessionID()) {
		if err := m.flushNotes(); err != nil {
			logging.Logger.Error("Failed to save notes", "session_id", m.notes.SessionID(), "error", err)
		}
		m.notes = nil
	}
	if m.transcript != nil && (route.Kind != domain.RouteTranscript || route.SessionID != m.transcript.SessionID()) {
		m.transcript = nil
	}

	switch route.Kind {
	case domain.RouteNotes:
		if m.notes == nil {
			m.notes = NewNotesView(m.client, route.SessionID, "Notes · "+m.sessionTitle(route.SessionID), m.notesOpts, m.saveErrCh)
			cmds = append(cmds, m.notes.Load())
		}
	case domain.RouteTranscript:
		if m.transcript == nil {
			m.transcript = NewTranscriptView(m.client, route.SessionID, "Transcript · "+m.sessionTitle(route.SessionID))
			cmds = append(cmds, m.transcript.Load())
		}
	}
	m.resize()

	return tea.Batch(cmds...)
}

func (m *Model) flushNotes() error {
	ctx, cancel := context.WithTimeout(context.Background(), m.flushTimeout)
	defer cancel()
	return m.notes.Shutdown(ctx)
}

func (m *Model) handleSessionsChanged() tea.Cmd {
	st := m.sessions.State()
	cmds := []tea.Cmd{
		m.homeList.SetSessions(st.Sessions),
		m.libraryList.SetSessions(st.Sessions),
		m.archiveList.SetSessions(st.Sessions),
		waitForChange(m.updates),
	}
	if st.Error != "" && st.Error != m.lastStoreError {
		m.errorManager.SetMessage(st.Error)
		cmds = append(cmds, m.errorManager.ClearAfterDelay())
	}
	m.lastStoreError = st.Error
	return tea.Batch(cmds...)
}

func (m *Model) handleNotesLoaded(msg notesLoadedMsg) tea.Cmd {
	if m.notes == nil || m.notes.SessionID() != msg.sessionID {
		return nil
	}
	if msg.err != nil {
		m.errorManager.SetError(fmt.Errorf("failed to load notes: %w", msg.err))
		return m.errorManager.ClearAfterDelay()
	}
	return m.notes.HandleLoaded(msg)
}

func (m *Model) handleTranscriptLoaded(msg transcriptLoadedMsg) tea.Cmd {
	if m.transcript == nil || m.transcript.SessionID() != msg.sessionID {
		return nil
	}
	if msg.err != nil {
		m.errorManager.SetError(fmt.Errorf("failed to load transcript: %w", msg.err))
		return m.errorManager.ClearAfterDelay()
	}
	m.transcript.HandleLoaded(msg)
	return nil
}

func (m *Model) handleOpDone(msg opDoneMsg) tea.Cmd {
	if msg.err != nil {
		// the store error reaches the banner through handleSessionsChanged
		logging.Logger.Warn("Session operation failed", "op", msg.op, "session_id", msg.sessionID, "error", msg.err)
		return nil
	}
	if msg.op == opDelete {
		m.closeSessionTabs(msg.sessionID)
		return m.syncRoute()
	}
	return nil
}

// closeSessionTabs drops every tab that shows a deleted session
func (m *Model) closeSessionTabs(id string) {
	for _, tab := range m.navigator.Tabs().State().Tabs {
		if domain.ParseRoute(tab.Path).SessionID != id {
			continue
		}
		if tab.ID == domain.HomeTabID {
			m.goHome()
			continue
		}
		m.navigator.CloseTab(tab.ID)
	}
}

func (m *Model) updateCreatingSession(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.sessionForm.Update(msg)
	m.sessionForm = updated.(*Dialog)

	content, ok := m.sessionForm.Content().(*SessionForm)
	if !ok || !content.Completed {
		return m, cmd
	}

	result := content.Result()
	m.state = stateMain
	m.sessionForm = nil
	if result.Cancelled {
		return m, nil
	}

	sessions := m.sessions
	return m, func() tea.Msg {
		return sessionCreatedMsg{session: sessions.Create(context.Background(), result.Request)}
	}
}

func (m *Model) updateSettingStatus(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.statusForm.Update(msg)
	m.statusForm = updated.(*Dialog)

	content, ok := m.statusForm.Content().(*StatusForm)
	if !ok || !content.Completed {
		return m, cmd
	}

	result := content.Result()
	m.state = stateMain
	m.statusForm = nil
	if result.Cancelled {
		return m, nil
	}

	sessions := m.sessions
	req := result.Request
	logging.Logger.Info("Updating session status", "session_id", req.ID, "status", req.Status)
	return m, func() tea.Msg {
		err := sessions.UpdateStatus(context.Background(), req)
		return opDoneMsg{err: err, op: opUpdateStatus, sessionID: req.ID}
	}
}

func (m *Model) updateConfirmingDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && (keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c") {
		m.resetDelete()
		return m, nil
	}

	updated, cmd := m.deleteForm.Update(msg)
	m.deleteForm = updated.(*Dialog)

	form, ok := m.deleteForm.Content().(*huh.Form)
	if !ok {
		return m, cmd
	}
	switch form.State {
	case huh.StateAborted:
		m.resetDelete()
		return m, nil
	case huh.StateCompleted:
		confirmed := *m.deleteConfirmed
		id := m.deleteTarget.ID
		m.resetDelete()
		if !confirmed {
			return m, nil
		}
		logging.Logger.Info("Deleting session", "session_id", id)
		sessions := m.sessions
		return m, func() tea.Msg {
			err := sessions.Delete(context.Background(), id)
			return opDoneMsg{err: err, op: opDelete, sessionID: id}
		}
	}
	return m, cmd
}

func (m *Model) resetDelete() {
	m.state = stateMain
	m.deleteForm = nil
	m.deleteConfirmed = nil
	m.deleteTarget = domain.Session{}
}

func (m *Model) resize() {
	bodyHeight := max(m.height-chromeHeight, 1)
	for _, list := range []*SessionList{m.homeList, m.libraryList, m.archiveList} {
		list.SetSize(m.width, bodyHeight)
	}
	if m.notes != nil {
		m.notes.SetSize(m.width, bodyHeight)
	}
	if m.transcript != nil {
		m.transcript.SetSize(m.width, bodyHeight)
	}
	m.help.Width = m.width
}

func (m *Model) View() string {
	switch m.state {
	case stateConfirmingDelete:
		if m.deleteForm != nil {
			return m.deleteForm.View()
		}
	case stateCreatingSession:
		if m.sessionForm != nil {
			return m.sessionForm.View()
		}
	case stateSettingStatus:
		if m.statusForm != nil {
			return m.statusForm.View()
		}
	}

	route := m.route()
	view := renderTabBar(m.navigator.Tabs().State(), m.width) + "\n\n"
	view += m.viewBody(route) + "\n"
	view += m.help.ShortHelpView(m.helpBindings(route)) + "\n"

	if m.errorManager.HasError() {
		view += theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width))
	} else {
		view += " \n "
	}
	return view
}

func (m *Model) viewBody(route domain.Route) string {
	if list := m.currentList(route); list != nil {
		st := m.sessions.State()
		if st.Loading && len(st.Sessions) == 0 {
			return theme.MutedStyle.Render("Loading sessions...")
		}
		return list.View()
	}

	switch route.Kind {
	case domain.RouteSession:
		if s, ok := m.sessions.Find(route.SessionID); ok {
			return renderSessionDetail(s)
		}
		return theme.MutedStyle.Render("Session not found.")
	case domain.RouteNotes:
		if m.notes != nil {
			return m.notes.View()
		}
	case domain.RouteTranscript:
		if m.transcript != nil {
			return m.transcript.View()
		}
	case domain.RouteSettings:
		return renderSettings(m.settings)
	}
	return theme.MutedStyle.Render("Nothing to show here.")
}

func (m *Model) helpBindings(route domain.Route) []key.Binding {
	switch route.Kind {
	case domain.RouteNotes:
		return m.keys.NotesHelp()
	case domain.RouteSession, domain.RouteTranscript:
		return m.keys.DetailHelp()
	case domain.RouteHome, domain.RouteLibrary, domain.RouteArchive:
		return m.keys.ListHelp()
	}
	return []key.Binding{m.keys.Navigation.Back, m.keys.Navigation.CloseTab, m.keys.Application.Quit}
}
