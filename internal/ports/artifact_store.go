package ports

import "github.com/renato0307/polka/internal/domain"

// ArtifactStore manages the per-session folder holding notes and transcripts
type ArtifactStore interface {
	// CreateFolder makes the session folder, succeeding if it already exists
	CreateFolder(id string) error
	// RemoveFolder deletes the session folder; a missing folder is not an error
	RemoveFolder(id string) error

	// WriteNotes atomically replaces the notes file and returns its path
	WriteNotes(id, markdown string) (string, error)
	// ReadNotes returns "" when no notes exist
	ReadNotes(id string) (string, error)

	// AppendTranscriptLine appends one line and returns the transcript path
	AppendTranscriptLine(id string, line domain.TranscriptLine) (string, error)
	// ReadTranscript returns lines in append order, empty when none exist
	ReadTranscript(id string) ([]domain.TranscriptLine, error)
}
