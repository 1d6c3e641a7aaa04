package stores

import (
	"github.com/renato0307/polka/internal/domain"
	"github.com/renato0307/polka/internal/logging"
	"github.com/renato0307/polka/internal/ports"
)

// Navigator opens tabs and keeps the router and the history in step
type Navigator struct {
	router ports.Router
	tabs   *TabsStore
}

// NewNavigator creates a Navigator over tabs and router
func NewNavigator(tabs *TabsStore, router ports.Router) *Navigator {
	return &Navigator{router: router, tabs: tabs}
}

// Tabs returns the underlying tabs store
func (n *Navigator) Tabs() *TabsStore {
	return n.tabs
}

// OpenSessionTab shows a session in the active tab, or in a new tab when
// none is active. It returns the id of the tab now showing the session.
func (n *Navigator) OpenSessionTab(sessionID, title string) string {
	path := domain.SessionPath(sessionID)

	var tabID string
	if active, ok := n.tabs.State().ActiveTab(); ok {
		icon := domain.IconFileText
		n.tabs.UpdateTab(active.ID, TabUpdate{Icon: &icon, Path: &path, Title: &title})
		tabID = active.ID
	} else {
		closable := true
		tabID = n.tabs.AddTab(TabData{Closable: &closable, Icon: domain.IconFileText, Path: path, Title: title})
	}

	logging.Logger.Debug("Opened session tab", "session_id", sessionID, "tab_id", tabID)
	n.NavigateTo(path)
	return tabID
}

// OpenTab always adds a new closable tab and shows it
func (n *Navigator) OpenTab(title, path string, icon domain.TabIcon) string {
	closable := true
	tabID := n.tabs.AddTab(TabData{Closable: &closable, Icon: icon, Path: path, Title: title})
	n.NavigateTo(path)
	return tabID
}

// OpenNotesTab adds a tab with the notes editor of a session
func (n *Navigator) OpenNotesTab(sessionID, title string) string {
	return n.OpenTab(title, domain.NotesPath(sessionID), domain.IconMessageCircle)
}

// OpenTranscriptTab adds a tab with the transcript of a session
func (n *Navigator) OpenTranscriptTab(sessionID, title string) string {
	return n.OpenTab(title, domain.TranscriptPath(sessionID), domain.IconFileText)
}

// UpdateSessionTab renames the tab currently showing the session
func (n *Navigator) UpdateSessionTab(sessionID, title string) {
	path := domain.SessionPath(sessionID)
	for _, tab := range n.tabs.State().Tabs {
		if tab.Path == path {
			n.tabs.UpdateTab(tab.ID, TabUpdate{Title: &title})
			return
		}
	}
}

// NavigateTo routes to path and records it in history
func (n *Navigator) NavigateTo(path string) {
	n.router.Navigate(path)
	n.tabs.AddToHistory(path)
}

// Back steps back in history and routes there
func (n *Navigator) Back() bool {
	if !n.tabs.NavigateBack() {
		return false
	}
	n.router.Navigate(n.tabs.CurrentPath())
	return true
}

// Forward steps forward in history and routes there
func (n *Navigator) Forward() bool {
	if !n.tabs.NavigateForward() {
		return false
	}
	n.router.Navigate(n.tabs.CurrentPath())
	return true
}

// SyncActiveTab routes to the active tab's path, if there is an active tab
func (n *Navigator) SyncActiveTab() {
	if active, ok := n.tabs.State().ActiveTab(); ok {
		n.router.Navigate(active.Path)
	}
}

// ActivateTab activates a tab and routes to it, recording the visit
func (n *Navigator) ActivateTab(id string) bool {
	if !n.tabs.ActivateTab(id) {
		return false
	}
	if active, ok := n.tabs.State().ActiveTab(); ok {
		n.NavigateTo(active.Path)
	}
	return true
}

// CloseTab closes a tab and routes to whichever tab became active
func (n *Navigator) CloseTab(id string) {
	before := n.tabs.State().ActiveTabID
	n.tabs.CloseTab(id)
	if after := n.tabs.State().ActiveTabID; after != before {
		if active, ok := n.tabs.State().ActiveTab(); ok {
			n.NavigateTo(active.Path)
		}
	}
}

// CycleTab activates the tab delta positions away from the active one, wrapping around
func (n *Navigator) CycleTab(delta int) bool {
	st := n.tabs.State()
	if len(st.Tabs) == 0 {
		return false
	}
	idx := 0
	for i, tab := range st.Tabs {
		if tab.ID == st.ActiveTabID {
			idx = i
			break
		}
	}
	next := ((idx+delta)%len(st.Tabs) + len(st.Tabs)) % len(st.Tabs)
	return n.ActivateTab(st.Tabs[next].ID)
}
