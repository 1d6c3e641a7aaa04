package stores

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/renato0307/polka/internal/domain"
)

// TabsState is a snapshot of the tabs store. ActiveTabID "" means none.
type TabsState struct {
	ActiveTabID  string
	History      []string
	HistoryIndex int
	Tabs         []domain.Tab
}

// ActiveTab returns the active tab, if any
func (s TabsState) ActiveTab() (domain.Tab, bool) {
	for _, tab := range s.Tabs {
		if tab.ID == s.ActiveTabID {
			return tab, true
		}
	}
	return domain.Tab{}, false
}

// TabData describes a tab to open. Closable defaults to true when nil.
type TabData struct {
	Closable *bool
	Icon     domain.TabIcon
	Path     string
	Title    string
}

// TabUpdate holds the fields to merge into a tab; nil fields are left alone
type TabUpdate struct {
	Closable *bool
	Icon     *domain.TabIcon
	Path     *string
	Title    *string
}

// TabsStore owns the tab strip and the back/forward history.
// It tracks positions only; routing is done by the caller.
type TabsStore struct {
	mu    sync.Mutex
	state TabsState
	newID func() string
}

// NewTabsStore returns a store holding only the home tab
func NewTabsStore() *TabsStore {
	return &TabsStore{
		state: initialTabsState(),
		newID: func() string { return uuid.NewString() },
	}
}

func initialTabsState() TabsState {
	home := domain.HomeTab()
	return TabsState{
		ActiveTabID:  home.ID,
		History:      []string{home.Path},
		HistoryIndex: 0,
		Tabs:         []domain.Tab{home},
	}
}

// State returns a copy of the current state
func (s *TabsStore) State() TabsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TabsState{
		ActiveTabID:  s.state.ActiveTabID,
		History:      slices.Clone(s.state.History),
		HistoryIndex: s.state.HistoryIndex,
		Tabs:         slices.Clone(s.state.Tabs),
	}
}

// AddTab always opens a new tab, even when one with the same path exists,
// and makes it active. It returns the new tab id.
func (s *TabsStore) AddTab(data TabData) string {
	closable := true
	if data.Closable != nil {
		closable = *data.Closable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tab := domain.Tab{
		Closable: closable,
		Icon:     data.Icon,
		ID:       s.newID(),
		Path:     data.Path,
		Title:    data.Title,
	}
	s.state.Tabs = append(s.state.Tabs, tab)
	s.state.ActiveTabID = tab.ID
	return tab.ID
}

// CloseTab removes a closable tab. When the active tab closes, the tab that
// slides into its index becomes active, else its left neighbour, else the first.
func (s *TabsStore) CloseTab(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.state.Tabs, func(t domain.Tab) bool { return t.ID == id })
	if idx < 0 || !s.state.Tabs[idx].Closable {
		return
	}

	s.state.Tabs = slices.Delete(slices.Clone(s.state.Tabs), idx, idx+1)
	if s.state.ActiveTabID != id {
		return
	}

	switch {
	case idx < len(s.state.Tabs):
		s.state.ActiveTabID = s.state.Tabs[idx].ID
	case idx-1 >= 0 && idx-1 < len(s.state.Tabs):
		s.state.ActiveTabID = s.state.Tabs[idx-1].ID
	case len(s.state.Tabs) > 0:
		s.state.ActiveTabID = s.state.Tabs[0].ID
	default:
		s.state.ActiveTabID = ""
	}
}

// SetActiveTab sets the active id without checking that the tab exists
func (s *TabsStore) SetActiveTab(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActiveTabID = id
}

// ActivateTab activates id if such a tab exists
func (s *TabsStore) ActivateTab(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.ContainsFunc(s.state.Tabs, func(t domain.Tab) bool { return t.ID == id }) {
		return false
	}
	s.state.ActiveTabID = id
	return true
}

// UpdateTab merges the non-nil fields of update into the tab with id
func (s *TabsStore) UpdateTab(id string, update TabUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.state.Tabs, func(t domain.Tab) bool { return t.ID == id })
	if idx < 0 {
		return
	}

	tabs := slices.Clone(s.state.Tabs)
	tab := &tabs[idx]
	if update.Closable != nil {
		tab.Closable = *update.Closable
	}
	if update.Icon != nil {
		tab.Icon = *update.Icon
	}
	if update.Path != nil {
		tab.Path = *update.Path
	}
	if update.Title != nil {
		tab.Title = *update.Title
	}
	s.state.Tabs = tabs
}

// AddToHistory records a visit. Re-visiting the current entry is a no-op;
// otherwise forward entries are dropped first.
func (s *TabsStore) AddToHistory(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.History[s.state.HistoryIndex] == path {
		return
	}
	history := slices.Clone(s.state.History[:s.state.HistoryIndex+1])
	s.state.History = append(history, path)
	s.state.HistoryIndex = len(s.state.History) - 1
}

// NavigateBack moves the history index back one step
func (s *TabsStore) NavigateBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.HistoryIndex <= 0 {
		return false
	}
	s.state.HistoryIndex--
	return true
}

// NavigateForward moves the history index forward one step
func (s *TabsStore) NavigateForward() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.HistoryIndex >= len(s.state.History)-1 {
		return false
	}
	s.state.HistoryIndex++
	return true
}

func (s *TabsStore) CanNavigateBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.HistoryIndex > 0
}

func (s *TabsStore) CanNavigateForward() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.HistoryIndex < len(s.state.History)-1
}

// ClearHistory resets history to the home path only
func (s *TabsStore) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.History = []string{domain.PathHome}
	s.state.HistoryIndex = 0
}

// CurrentPath returns the history entry at the current index
func (s *TabsStore) CurrentPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.History[s.state.HistoryIndex]
}
