package ui

import "github.com/renato0307/polka/internal/domain"

// sessionsChangedMsg is sent when the sessions store notifies a change
type sessionsChangedMsg struct{}

// sessionCreatedMsg carries the result of the new session form
type sessionCreatedMsg struct {
	session *domain.Session
}

// Operations reported by opDoneMsg
const (
	opDelete       = "delete"
	opUpdateStatus = "update status"
)

// opDoneMsg reports the end of a store mutation started from the UI
type opDoneMsg struct {
	err       error
	op        string
	sessionID string
}

// notesLoadedMsg carries the notes of a session
type notesLoadedMsg struct {
	err       error
	markdown  string
	sessionID string
}

// saveErrorMsg is sent when a background notes save fails
type saveErrorMsg struct {
	err error
}

// transcriptLoadedMsg carries the transcript of a session
type transcriptLoadedMsg struct {
	err       error
	lines     []domain.TranscriptLine
	sessionID string
}
