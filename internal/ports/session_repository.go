package ports

import (
	"context"

	"github.com/renato0307/polka/internal/domain"
)

// SessionReader reads session rows
type SessionReader interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]domain.Session, error)
}

// SessionWriter creates and deletes session rows
type SessionWriter interface {
	Add(ctx context.Context, session domain.Session) error
	Delete(ctx context.Context, id string) error
}

// SessionMetadataUpdater updates single columns of a session row
type SessionMetadataUpdater interface {
	RaiseDuration(ctx context.Context, id string, durationMs int64) error
	SetNotesPath(ctx context.Context, id, path string) error
	SetTranscriptPath(ctx context.Context, id, path string) error
	UpdateStatus(ctx context.Context, id string, status domain.SessionStatus) error
}

// SessionRepository is the composite interface
type SessionRepository interface {
	SessionReader
	SessionWriter
	SessionMetadataUpdater
	Close() error
}
