package domain

import "strings"

const (
	PathArchive  = "/app/archive"
	PathHome     = "/app/home"
	PathLibrary  = "/app/library"
	PathSettings = "/app/settings"

	prefixNotes      = "/app/notes/"
	prefixSession    = "/app/session/"
	prefixTranscript = "/app/transcript/"
)

// RouteKind identifies which view a logical path shows
type RouteKind int

const (
	RouteUnknown RouteKind = iota
	RouteHome
	RouteLibrary
	RouteArchive
	RouteSettings
	RouteSession
	RouteNotes
	RouteTranscript
)

// Route is a parsed logical path
type Route struct {
	Kind      RouteKind
	SessionID string
}

func SessionPath(id string) string    { return prefixSession + id }
func NotesPath(id string) string      { return prefixNotes + id }
func TranscriptPath(id string) string { return prefixTranscript + id }

// ParseRoute maps a logical path to its view.
// Per-session paths need a non-empty id with no further segments.
func ParseRoute(path string) Route {
	switch path {
	case PathHome:
		return Route{Kind: RouteHome}
	case PathLibrary:
		return Route{Kind: RouteLibrary}
	case PathArchive:
		return Route{Kind: RouteArchive}
	case PathSettings:
		return Route{Kind: RouteSettings}
	}

	for prefix, kind := range map[string]RouteKind{
		prefixSession:    RouteSession,
		prefixNotes:      RouteNotes,
		prefixTranscript: RouteTranscript,
	} {
		if id, ok := strings.CutPrefix(path, prefix); ok {
			if id == "" || strings.Contains(id, "/") {
				return Route{Kind: RouteUnknown}
			}
			return Route{Kind: kind, SessionID: id}
		}
	}
	return Route{Kind: RouteUnknown}
}
