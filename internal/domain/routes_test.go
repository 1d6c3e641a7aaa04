package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"/app/home", Route{Kind: RouteHome}},
		{"/app/library", Route{Kind: RouteLibrary}},
		{"/app/archive", Route{Kind: RouteArchive}},
		{"/app/settings", Route{Kind: RouteSettings}},
		{"/app/session/01HX", Route{Kind: RouteSession, SessionID: "01HX"}},
		{"/app/notes/01HX", Route{Kind: RouteNotes, SessionID: "01HX"}},
		{"/app/transcript/01HX", Route{Kind: RouteTranscript, SessionID: "01HX"}},
		{"/app/session/", Route{Kind: RouteUnknown}},
		{"/app/session/a/b", Route{Kind: RouteUnknown}},
		{"/elsewhere", Route{Kind: RouteUnknown}},
		{"", Route{Kind: RouteUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRoute(tt.path))
		})
	}
}

func TestPathBuilders_RoundTrip(t *testing.T) {
	assert.Equal(t, Route{Kind: RouteSession, SessionID: "x"}, ParseRoute(SessionPath("x")))
	assert.Equal(t, Route{Kind: RouteNotes, SessionID: "x"}, ParseRoute(NotesPath("x")))
	assert.Equal(t, Route{Kind: RouteTranscript, SessionID: "x"}, ParseRoute(TranscriptPath("x")))
}

func TestHomeTab(t *testing.T) {
	tab := HomeTab()
	assert.Equal(t, "home", tab.ID)
	assert.Equal(t, "Home", tab.Title)
	assert.Equal(t, "/app/home", tab.Path)
	assert.Equal(t, IconHome, tab.Icon)
	assert.False(t, tab.Closable)
}
