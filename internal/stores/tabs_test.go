package stores

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/polka/internal/domain"
)

func boolPtr(v bool) *bool { return &v }

// newSeqTabsStore returns a store whose tab ids are t1, t2, ...
func newSeqTabsStore() *TabsStore {
	s := NewTabsStore()
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("t%d", n)
	}
	return s
}

func assertTabsInvariants(t *testing.T, st TabsState) {
	t.Helper()
	assert.GreaterOrEqual(t, st.HistoryIndex, 0)
	assert.Less(t, st.HistoryIndex, len(st.History))
	if len(st.Tabs) == 0 {
		assert.Empty(t, st.ActiveTabID)
		return
	}
	_, ok := st.ActiveTab()
	assert.True(t, ok, "active tab %q must exist", st.ActiveTabID)
}

func TestTabsStore_InitialState(t *testing.T) {
	st := NewTabsStore().State()

	require.Len(t, st.Tabs, 1)
	assert.Equal(t, domain.HomeTab(), st.Tabs[0])
	assert.Equal(t, "home", st.ActiveTabID)
	assert.Equal(t, []string{"/app/home"}, st.History)
	assert.Equal(t, 0, st.HistoryIndex)
}

func TestTabsStore_AddTabNeverDeduplicates(t *testing.T) {
	s := NewTabsStore()

	id1 := s.AddTab(TabData{Title: "Notes", Path: "/app/notes/a", Icon: domain.IconMessageCircle})
	id2 := s.AddTab(TabData{Title: "Notes", Path: "/app/notes/a", Icon: domain.IconMessageCircle})

	st := s.State()
	assert.NotEqual(t, id1, id2)
	assert.Len(t, st.Tabs, 3)
	assert.Equal(t, id2, st.ActiveTabID)
	assert.True(t, st.Tabs[1].Closable, "closable defaults to true")
}

func TestTabsStore_AddTabExplicitNotClosable(t *testing.T) {
	s := NewTabsStore()

	id := s.AddTab(TabData{Title: "Pinned", Path: "/app/library", Closable: boolPtr(false)})
	s.CloseTab(id)

	assert.Len(t, s.State().Tabs, 2)
}

func TestTabsStore_CloseTabFallback(t *testing.T) {
	tests := []struct {
		name       string
		activate   string
		close      string
		wantActive string
	}{
		{"active middle falls to right neighbour", "t2", "t2", "t3"},
		{"active last falls to left neighbour", "t3", "t3", "t2"},
		{"inactive tab keeps active", "t1", "t3", "t1"},
		{"unknown id is a no-op", "t2", "nope", "t2"},
		{"home is not closable", "home", "home", "home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSeqTabsStore()
			s.AddTab(TabData{Title: "1", Path: "/1"})
			s.AddTab(TabData{Title: "2", Path: "/2"})
			s.AddTab(TabData{Title: "3", Path: "/3"})
			s.SetActiveTab(tt.activate)

			s.CloseTab(tt.close)

			st := s.State()
			assert.Equal(t, tt.wantActive, st.ActiveTabID)
			assertTabsInvariants(t, st)
		})
	}
}

func TestTabsStore_CloseLastRemainingTab(t *testing.T) {
	s := newSeqTabsStore()
	s.UpdateTab("home", TabUpdate{Closable: boolPtr(true)})

	s.CloseTab("home")

	st := s.State()
	assert.Empty(t, st.Tabs)
	assert.Empty(t, st.ActiveTabID)
}

func TestTabsStore_ActivateTab(t *testing.T) {
	s := newSeqTabsStore()
	s.AddTab(TabData{Title: "1", Path: "/1"})

	assert.True(t, s.ActivateTab("home"))
	assert.False(t, s.ActivateTab("missing"))
	assert.Equal(t, "home", s.State().ActiveTabID)

	s.SetActiveTab("missing")
	assert.Equal(t, "missing", s.State().ActiveTabID)
}

func TestTabsStore_UpdateTabMergesFields(t *testing.T) {
	s := newSeqTabsStore()
	id := s.AddTab(TabData{Title: "Untitled", Path: "/app/session/x", Icon: domain.IconFileText})

	title := "Linear Algebra"
	s.UpdateTab(id, TabUpdate{Title: &title})
	s.UpdateTab("missing", TabUpdate{Title: &title})

	tab, ok := s.State().ActiveTab()
	require.True(t, ok)
	assert.Equal(t, "Linear Algebra", tab.Title)
	assert.Equal(t, "/app/session/x", tab.Path)
	assert.Equal(t, domain.IconFileText, tab.Icon)
	assert.True(t, tab.Closable)
}

func TestTabsStore_AddToHistorySkipsCurrentEntry(t *testing.T) {
	s := NewTabsStore()

	s.AddToHistory("/app/library")
	before := s.State()
	s.AddToHistory("/app/library")

	after := s.State()
	assert.Equal(t, before.History, after.History)
	assert.Equal(t, before.HistoryIndex, after.HistoryIndex)
}

func TestTabsStore_AddToHistoryDropsForwardEntries(t *testing.T) {
	s := NewTabsStore()
	s.ClearHistory()
	s.AddToHistory("B")
	s.AddToHistory("C")
	// history = [home, B, C]
	require.True(t, s.NavigateBack())

	s.AddToHistory("D")

	st := s.State()
	assert.Equal(t, []string{"/app/home", "B", "D"}, st.History)
	assert.Equal(t, 2, st.HistoryIndex)
	assert.False(t, s.CanNavigateForward())
}

func TestTabsStore_BackThenForwardIsIdentity(t *testing.T) {
	s := NewTabsStore()
	s.AddToHistory("/a")
	s.AddToHistory("/b")
	s.AddToHistory("/c")
	require.True(t, s.NavigateBack())
	path, idx := s.CurrentPath(), s.State().HistoryIndex

	require.True(t, s.NavigateBack())
	require.True(t, s.NavigateForward())

	assert.Equal(t, path, s.CurrentPath())
	assert.Equal(t, idx, s.State().HistoryIndex)
}

func TestTabsStore_NavigationBoundaries(t *testing.T) {
	s := NewTabsStore()

	assert.False(t, s.CanNavigateBack())
	assert.False(t, s.CanNavigateForward())
	assert.False(t, s.NavigateBack())
	assert.False(t, s.NavigateForward())
	assert.Equal(t, "/app/home", s.CurrentPath())

	s.AddToHistory("/a")
	assert.True(t, s.CanNavigateBack())
	assert.False(t, s.CanNavigateForward())

	s.ClearHistory()
	st := s.State()
	assert.Equal(t, []string{"/app/home"}, st.History)
	assert.Equal(t, 0, st.HistoryIndex)
}

func TestTabsStore_StateIsACopy(t *testing.T) {
	s := NewTabsStore()

	st := s.State()
	st.Tabs[0].Title = "mutated"
	st.History[0] = "mutated"

	assert.Equal(t, "Home", s.State().Tabs[0].Title)
	assert.Equal(t, "/app/home", s.State().History[0])
}

func TestTabsStore_RandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := newSeqTabsStore()
	var opened []string

	for i := 0; i < 500; i++ {
		switch rng.Intn(6) {
		case 0, 1:
			opened = append(opened, s.AddTab(TabData{Title: "x", Path: fmt.Sprintf("/p/%d", rng.Intn(5))}))
		case 2:
			if len(opened) > 0 {
				id := opened[rng.Intn(len(opened))]
				s.CloseTab(id)
				opened = slices.DeleteFunc(opened, func(o string) bool { return o == id })
			}
		case 3:
			s.AddToHistory(fmt.Sprintf("/h/%d", rng.Intn(4)))
		case 4:
			s.NavigateBack()
		case 5:
			s.NavigateForward()
		}
		assertTabsInvariants(t, s.State())
	}
}
