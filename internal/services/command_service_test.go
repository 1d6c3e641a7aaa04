package services

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/polka/internal/adapters/artifacts"
	"github.com/renato0307/polka/internal/adapters/storage"
	"github.com/renato0307/polka/internal/domain"
	"github.com/renato0307/polka/internal/ports"
	portsmocks "github.com/renato0307/polka/internal/ports/mocks"
)

type testBackend struct {
	events      *portsmocks.MockEventPublisher
	sessionsDir string
	service     *CommandService
}

func newTestBackend(t *testing.T) testBackend {
	t.Helper()
	dir := t.TempDir()

	repo, err := storage.NewSQLiteRepository(filepath.Join(dir, "polka.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	sessionsDir := filepath.Join(dir, "sessions")
	store, err := artifacts.NewFSStore(sessionsDir)
	require.NoError(t, err)

	events := portsmocks.NewMockEventPublisher(t)
	return testBackend{
		events:      events,
		sessionsDir: sessionsDir,
		service:     NewCommandService(repo, store, events),
	}
}

func (b testBackend) create(t *testing.T, title string) *domain.Session {
	t.Helper()
	b.events.EXPECT().Publish(ports.EventSessionCreated, mock.Anything).Return().Once()
	s, err := b.service.CreateSession(context.Background(), domain.CreateSessionRequest{Title: title})
	require.NoError(t, err)
	return s
}

func TestCommandService_CreateSession(t *testing.T) {
	b := newTestBackend(t)
	fixed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	b.service.now = func() time.Time { return fixed }
	b.events.EXPECT().Publish(ports.EventSessionCreated, mock.Anything).Return().Once()

	s, err := b.service.CreateSession(context.Background(), domain.CreateSessionRequest{
		Title:  "  Linear Algebra  ",
		Course: " MATH201 ",
	})

	require.NoError(t, err)
	assert.Len(t, s.ID, 26)
	assert.Equal(t, "Linear Algebra", s.Title)
	assert.Equal(t, "MATH201", s.Course)
	assert.Equal(t, fixed.Unix(), s.CreatedAt)
	assert.Equal(t, domain.StatusDraft, s.Status)
	assert.Zero(t, s.DurationMs)
	assert.Nil(t, s.NotesPath)
	assert.DirExists(t, filepath.Join(b.sessionsDir, s.ID))
}

func TestCommandService_CreateSession_RejectsEmptyTitle(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.service.CreateSession(context.Background(), domain.CreateSessionRequest{Title: "  "})

	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestCommandService_CreateSession_RemovesFolderWhenInsertFails(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)
	store := portsmocks.NewMockArtifactStore(t)
	svc := NewCommandService(repo, store, nil)
	boom := errors.New("disk full")

	store.EXPECT().CreateFolder(mock.Anything).Return(nil)
	repo.EXPECT().Add(mock.Anything, mock.Anything).Return(boom)
	store.EXPECT().RemoveFolder(mock.Anything).Return(nil)

	_, err := svc.CreateSession(context.Background(), domain.CreateSessionRequest{Title: "x"})

	assert.ErrorIs(t, err, boom)
}

func TestCommandService_ListSessions_NewestFirst(t *testing.T) {
	b := newTestBackend(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		at := base.Add(time.Duration(i) * time.Hour)
		b.service.now = func() time.Time { return at }
		b.create(t, title)
	}

	sessions, err := b.service.ListSessions(context.Background())

	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "third", sessions[0].Title)
	assert.Equal(t, "second", sessions[1].Title)
	assert.Equal(t, "first", sessions[2].Title)
}

func TestCommandService_UpdateSessionStatus(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	s := b.create(t, "Lecture")
	b.events.EXPECT().Publish(ports.EventSessionUpdated, mock.Anything).Return().Once()

	require.NoError(t, b.service.UpdateSessionStatus(ctx, domain.UpdateSessionStatusRequest{ID: s.ID, Status: domain.StatusRecording}))

	sessions, err := b.service.ListSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRecording, sessions[0].Status)

	err = b.service.UpdateSessionStatus(ctx, domain.UpdateSessionStatusRequest{ID: "missing", Status: domain.StatusComplete})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	err = b.service.UpdateSessionStatus(ctx, domain.UpdateSessionStatusRequest{ID: s.ID, Status: "paused"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestCommandService_DeleteSession(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	s := b.create(t, "Lecture")
	b.events.EXPECT().Publish(ports.EventNotesUpdated, mock.Anything).Return().Once()
	require.NoError(t, b.service.WriteNotes(ctx, s.ID, "notes"))
	b.events.EXPECT().Publish(ports.EventSessionDeleted, map[string]string{"id": s.ID}).Return().Once()

	require.NoError(t, b.service.DeleteSession(ctx, s.ID))

	assert.NoDirExists(t, filepath.Join(b.sessionsDir, s.ID))
	sessions, err := b.service.ListSessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	assert.ErrorIs(t, b.service.DeleteSession(ctx, s.ID), domain.ErrSessionNotFound)
}

func TestCommandService_Notes(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	s := b.create(t, "Lecture")

	notes, err := b.service.ReadNotes(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "", notes)

	b.events.EXPECT().Publish(ports.EventNotesUpdated, map[string]string{"id": s.ID}).Return().Twice()
	require.NoError(t, b.service.WriteNotes(ctx, s.ID, "# Eigenvalues"))
	require.NoError(t, b.service.WriteNotes(ctx, s.ID, "# Eigenvalues\n\ndet(A - λI) = 0"))

	notes, err = b.service.ReadNotes(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "# Eigenvalues\n\ndet(A - λI) = 0", notes)

	sessions, err := b.service.ListSessions(ctx)
	require.NoError(t, err)
	require.NotNil(t, sessions[0].NotesPath)
	assert.Equal(t, filepath.Join(b.sessionsDir, s.ID, "notes.md"), *sessions[0].NotesPath)

	_, err = b.service.ReadNotes(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, b.service.WriteNotes(ctx, "missing", "x"), domain.ErrSessionNotFound)
}

func TestCommandService_Transcript(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	s := b.create(t, "Lecture")

	lines, err := b.service.ReadTranscript(ctx, s.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	b.events.EXPECT().Publish(ports.EventTranscriptAppended, mock.Anything).Return().Times(3)
	want := []domain.TranscriptLine{
		{TMs: 1000, Speaker: "Prof", Text: "Hello"},
		{TMs: 9000, Speaker: "Prof", Text: "Today"},
		{TMs: 4000, Speaker: "Student", Text: "Late line"},
	}
	for _, l := range want {
		require.NoError(t, b.service.AppendTranscriptLine(ctx, s.ID, l))
	}

	lines, err = b.service.ReadTranscript(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, want, lines)

	sessions, err := b.service.ListSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(9000), sessions[0].DurationMs, "duration only grows")
	require.NotNil(t, sessions[0].TranscriptPath)

	assert.ErrorIs(t, b.service.AppendTranscriptLine(ctx, "missing", want[0]), domain.ErrSessionNotFound)
}

func TestCommandService_Transcript_RejectsOutOfRangeOffset(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	s := b.create(t, "Lecture")

	line := domain.TranscriptLine{TMs: math.MaxInt64 + 1, Text: "overflow"}
	assert.ErrorIs(t, b.service.AppendTranscriptLine(ctx, s.ID, line), domain.ErrInvalidTMs)

	lines, err := b.service.ReadTranscript(ctx, s.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	b.events.EXPECT().Publish(ports.EventTranscriptAppended, mock.Anything).Return().Once()
	require.NoError(t, b.service.AppendTranscriptLine(ctx, s.ID, domain.TranscriptLine{TMs: math.MaxInt64, Text: "edge"}))

	sessions, err := b.service.ListSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), sessions[0].DurationMs)
}

func TestCommandService_NilPublisher(t *testing.T) {
	dir := t.TempDir()
	repo, err := storage.NewSQLiteRepository(filepath.Join(dir, "polka.db"))
	require.NoError(t, err)
	defer repo.Close()
	store, err := artifacts.NewFSStore(filepath.Join(dir, "sessions"))
	require.NoError(t, err)

	svc := NewCommandService(repo, store, nil)
	s, err := svc.CreateSession(context.Background(), domain.CreateSessionRequest{Title: "x"})

	require.NoError(t, err)
	assert.NoError(t, svc.DeleteSession(context.Background(), s.ID))
}
