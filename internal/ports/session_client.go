package ports

import (
	"context"

	"github.com/renato0307/polka/internal/domain"
)

// SessionClient is the command surface every front end talks to.
// It is served in-process by the native backend or over HTTP.
type SessionClient interface {
	ListSessions(ctx context.Context) ([]domain.Session, error)
	CreateSession(ctx context.Context, req domain.CreateSessionRequest) (*domain.Session, error)
	UpdateSessionStatus(ctx context.Context, req domain.UpdateSessionStatusRequest) error
	DeleteSession(ctx context.Context, id string) error

	AppendTranscriptLine(ctx context.Context, id string, line domain.TranscriptLine) error
	ReadTranscript(ctx context.Context, id string) ([]domain.TranscriptLine, error)

	WriteNotes(ctx context.Context, id, markdown string) error
	ReadNotes(ctx context.Context, id string) (string, error)
}
