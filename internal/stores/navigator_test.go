package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/polka/internal/domain"
	portsmocks "github.com/renato0307/polka/internal/ports/mocks"
)

func TestNavigator_OpenSessionTabRetargetsActiveTab(t *testing.T) {
	router := portsmocks.NewMockRouter(t)
	tabs := newSeqTabsStore()
	nav := NewNavigator(tabs, router)
	router.EXPECT().Navigate("/app/session/s1").Return().Once()

	tabID := nav.OpenSessionTab("s1", "Lecture 1")

	st := tabs.State()
	assert.Equal(t, "home", tabID)
	require.Len(t, st.Tabs, 1)
	assert.Equal(t, "Lecture 1", st.Tabs[0].Title)
	assert.Equal(t, "/app/session/s1", st.Tabs[0].Path)
	assert.Equal(t, domain.IconFileText, st.Tabs[0].Icon)
	assert.Equal(t, "/app/session/s1", tabs.CurrentPath())
}

func TestNavigator_OpenSessionTabAddsTabWhenNoneActive(t *testing.T) {
	router := portsmocks.NewMockRouter(t)
	tabs := newSeqTabsStore()
	tabs.SetActiveTab("")
	nav := NewNavigator(tabs, router)
	router.EXPECT().Navigate("/app/session/s1").Return().Once()

	tabID := nav.OpenSessionTab("s1", "Lecture 1")

	st := tabs.State()
	assert.Equal(t, "t1", tabID)
	assert.Len(t, st.Tabs, 2)
	assert.Equal(t, "t1", st.ActiveTabID)
}

func TestNavigator_OpenNotesAndTranscriptTabs(t *testing.T) {
	router := portsmocks.NewMockRouter(t)
	tabs := newSeqTabsStore()
	nav := NewNavigator(tabs, router)
	router.EXPECT().Navigate("/app/notes/s1").Return().Once()
	router.EXPECT().Navigate("/app/transcript/s1").Return().Once()

	notesID := nav.OpenNotesTab("s1", "Notes")
	transcriptID := nav.OpenTranscriptTab("s1", "Transcript")

	st := tabs.State()
	require.Len(t, st.Tabs, 3)
	assert.Equal(t, notesID, st.Tabs[1].ID)
	assert.Equal(t, domain.IconMessageCircle, st.Tabs[1].Icon)
	assert.Equal(t, domain.IconFileText, st.Tabs[2].Icon)
	assert.Equal(t, transcriptID, st.ActiveTabID)
	assert.Equal(t, []string{"/app/home", "/app/notes/s1", "/app/transcript/s1"}, st.History)
}

func TestNavigator_UpdateSessionTab(t *testing.T) {
	router := portsmocks.NewMockRouter(t)
	tabs := newSeqTabsStore()
	nav := NewNavigator(tabs, router)
	router.EXPECT().Navigate("/app/session/s1").Return()
	nav.OpenSessionTab("s1", "Untitled")

	nav.UpdateSessionTab("s1", "Renamed")
	nav.UpdateSessionTab("other", "Ignored")

	assert.Equal(t, "Renamed", tabs.State().Tabs[0].Title)
}

func TestNavigator_BackAndForwardRoute(t *testing.T) {
	router := portsmocks.NewMockRouter(t)
	tabs := newSeqTabsStore()
	nav := NewNavigator(tabs, router)
	router.EXPECT().Navigate("/app/library").Return().Once()
	router.EXPECT().Navigate("/app/home").Return().Once()
	router.EXPECT().Navigate("/app/library").Return().Once()

	nav.NavigateTo("/app/library")
	assert.True(t, nav.Back())
	assert.False(t, nav.Back())
	assert.True(t, nav.Forward())
	assert.False(t, nav.Forward())
}

func TestNavigator_SyncActiveTab(t *testing.T) {
	router := portsmocks.NewMockRouter(t)
	tabs := newSeqTabsStore()
	nav := NewNavigator(tabs, router)
	router.EXPECT().Navigate("/app/home").Return().Once()

	nav.SyncActiveTab()

	tabs.SetActiveTab("")
	nav.SyncActiveTab()
}

func TestNavigator_CloseAndCycleTabs(t *testing.T) {
	router := portsmocks.NewMockRouter(t)
	tabs := newSeqTabsStore()
	nav := NewNavigator(tabs, router)
	router.EXPECT().Navigate("/app/library").Return().Once()
	router.EXPECT().Navigate("/app/archive").Return().Once()
	nav.OpenTab("Library", domain.PathLibrary, domain.IconLibrary)
	nav.OpenTab("Archive", domain.PathArchive, domain.IconArchive)

	router.EXPECT().Navigate("/app/home").Return().Once()
	assert.True(t, nav.CycleTab(1))
	assert.Equal(t, "home", tabs.State().ActiveTabID)

	router.EXPECT().Navigate("/app/archive").Return().Once()
	assert.True(t, nav.CycleTab(-1))
	assert.Equal(t, "t2", tabs.State().ActiveTabID)

	router.EXPECT().Navigate("/app/library").Return().Once()
	nav.CloseTab("t2")
	assert.Equal(t, "t1", tabs.State().ActiveTabID)
}
