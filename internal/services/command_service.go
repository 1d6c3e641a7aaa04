package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/renato0307/polka/internal/domain"
	"github.com/renato0307/polka/internal/logging"
	"github.com/renato0307/polka/internal/ports"
)

// CommandService is the in-process native backend behind ports.SessionClient.
// Rows live in the session repository, notes and transcripts in the artifact store.
type CommandService struct {
	artifacts ports.ArtifactStore
	events    ports.EventPublisher
	repo      ports.SessionRepository

	idMu    sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

var _ ports.SessionClient = (*CommandService)(nil)

// NewCommandService creates a new CommandService. events may be nil.
func NewCommandService(
	repo ports.SessionRepository,
	artifacts ports.ArtifactStore,
	events ports.EventPublisher,
) *CommandService {
	return &CommandService{
		artifacts: artifacts,
		entropy:   ulid.Monotonic(rand.Reader, 0),
		events:    events,
		now:       func() time.Time { return time.Now().UTC() },
		repo:      repo,
	}
}

func (s *CommandService) newID() (string, error) {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	id, err := ulid.New(ulid.Timestamp(s.now()), s.entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *CommandService) publish(kind string, data any) {
	if s.events == nil {
		return
	}
	s.events.Publish(kind, data)
}

// ListSessions returns every session, newest first
func (s *CommandService) ListSessions(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.repo.List(ctx)
	if err != nil {
		logging.Logger.Error("Failed to list sessions", "error", err)
		return nil, err
	}
	logging.Logger.Debug("Listed sessions", "count", len(sessions))
	return sessions, nil
}

// CreateSession stores a new draft session and creates its folder
func (s *CommandService) CreateSession(ctx context.Context, req domain.CreateSessionRequest) (*domain.Session, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	session := domain.Session{
		Course:    req.Course,
		CreatedAt: s.now().Unix(),
		ID:        id,
		Status:    domain.StatusDraft,
		Title:     req.Title,
	}

	logging.Logger.Info("Creating session", "session_id", id, "title", session.Title, "course", session.Course)

	if err := s.artifacts.CreateFolder(id); err != nil {
		logging.Logger.Error("Failed to create session folder", "session_id", id, "error", err)
		return nil, fmt.Errorf("failed to create session folder: %w", err)
	}
	if err := s.repo.Add(ctx, session); err != nil {
		logging.Logger.Error("Failed to add session", "session_id", id, "error", err)
		if rmErr := s.artifacts.RemoveFolder(id); rmErr != nil {
			logging.Logger.Warn("Failed to clean up session folder", "session_id", id, "error", rmErr)
		}
		return nil, err
	}

	s.publish(ports.EventSessionCreated, session)
	return &session, nil
}

// UpdateSessionStatus sets the status of an existing session
func (s *CommandService) UpdateSessionStatus(ctx context.Context, req domain.UpdateSessionStatusRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid status update: %w", err)
	}

	if err := s.repo.UpdateStatus(ctx, req.ID, req.Status); err != nil {
		logging.Logger.Error("Failed to update session status", "session_id", req.ID, "status", req.Status, "error", err)
		return err
	}

	logging.Logger.Info("Session status updated", "session_id", req.ID, "status", req.Status)
	s.publish(ports.EventSessionUpdated, map[string]any{"id": req.ID, "status": req.Status})
	return nil
}

// DeleteSession removes the row, then the session folder
func (s *CommandService) DeleteSession(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logging.Logger.Error("Failed to delete session", "session_id", id, "error", err)
		return err
	}

	// The row is gone, so a leftover folder is only logged
	if err := s.artifacts.RemoveFolder(id); err != nil {
		logging.Logger.Warn("Failed to remove session folder", "session_id", id, "error", err)
	}

	logging.Logger.Info("Session deleted", "session_id", id)
	s.publish(ports.EventSessionDeleted, map[string]string{"id": id})
	return nil
}

// AppendTranscriptLine appends a line and raises the duration to cover it
func (s *CommandService) AppendTranscriptLine(ctx context.Context, id string, line domain.TranscriptLine) error {
	if err := line.Validate(); err != nil {
		logging.Logger.Warn("Rejected transcript line", "session_id", id, "t_ms", line.TMs)
		return err
	}

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	path, err := s.artifacts.AppendTranscriptLine(id, line)
	if err != nil {
		logging.Logger.Error("Failed to append transcript line", "session_id", id, "error", err)
		return fmt.Errorf("failed to append transcript line: %w", err)
	}

	if session.TranscriptPath == nil || *session.TranscriptPath != path {
		if err := s.repo.SetTranscriptPath(ctx, id, path); err != nil {
			return err
		}
	}
	if int64(line.TMs) > session.DurationMs {
		if err := s.repo.RaiseDuration(ctx, id, int64(line.TMs)); err != nil {
			return err
		}
	}

	logging.Logger.Debug("Transcript line appended", "session_id", id, "t_ms", line.TMs)
	s.publish(ports.EventTranscriptAppended, map[string]any{"id": id, "line": line})
	return nil
}

// ReadTranscript returns the lines in append order
func (s *CommandService) ReadTranscript(ctx context.Context, id string) ([]domain.TranscriptLine, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	lines, err := s.artifacts.ReadTranscript(id)
	if err != nil {
		logging.Logger.Error("Failed to read transcript", "session_id", id, "error", err)
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}
	return lines, nil
}

// WriteNotes replaces the notes of a session
func (s *CommandService) WriteNotes(ctx context.Context, id, markdown string) error {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	path, err := s.artifacts.WriteNotes(id, markdown)
	if err != nil {
		logging.Logger.Error("Failed to write notes", "session_id", id, "error", err)
		return fmt.Errorf("failed to write notes: %w", err)
	}

	if session.NotesPath == nil || *session.NotesPath != path {
		if err := s.repo.SetNotesPath(ctx, id, path); err != nil {
			return err
		}
	}

	logging.Logger.Debug("Notes written", "session_id", id, "bytes", len(markdown))
	s.publish(ports.EventNotesUpdated, map[string]string{"id": id})
	return nil
}

// ReadNotes returns the notes of a session, "" when none were written
func (s *CommandService) ReadNotes(ctx context.Context, id string) (string, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return "", err
	}
	notes, err := s.artifacts.ReadNotes(id)
	if err != nil {
		logging.Logger.Error("Failed to read notes", "session_id", id, "error", err)
		return "", fmt.Errorf("failed to read notes: %w", err)
	}
	return notes, nil
}
