package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/polka/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "polka.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func addSession(t *testing.T, repo *SQLiteRepository, id string, createdAt int64) {
	t.Helper()
	require.NoError(t, repo.Add(context.Background(), domain.Session{
		CreatedAt: createdAt,
		ID:        id,
		Status:    domain.StatusDraft,
		Title:     "Session " + id,
	}))
}

func TestSQLiteRepository_AddAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, domain.Session{
		Course:    "CS101",
		CreatedAt: 1700000000,
		ID:        "s1",
		Status:    domain.StatusDraft,
		Title:     "Intro",
	}))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Intro", got.Title)
	assert.Equal(t, "CS101", got.Course)
	assert.Equal(t, int64(1700000000), got.CreatedAt)
	assert.Equal(t, domain.StatusDraft, got.Status)
	assert.Nil(t, got.NotesPath)
	assert.Nil(t, got.TranscriptPath)
	assert.Nil(t, got.AudioPath)
}

func TestSQLiteRepository_GetMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSQLiteRepository_ListNewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	addSession(t, repo, "a", 100)
	addSession(t, repo, "c", 300)
	addSession(t, repo, "b", 200)
	addSession(t, repo, "d", 300)

	sessions, err := repo.List(context.Background())

	require.NoError(t, err)
	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"d", "c", "b", "a"}, ids)
}

func TestSQLiteRepository_ListEmpty(t *testing.T) {
	repo := newTestRepository(t)

	sessions, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, sessions)
	assert.Empty(t, sessions)
}

func TestSQLiteRepository_UnknownStatusReadsAsDraft(t *testing.T) {
	repo := newTestRepository(t)
	addSession(t, repo, "s1", 100)
	require.NoError(t, repo.db.Exec("UPDATE sessions SET status = 'paused' WHERE id = ?", "s1").Error)

	got, err := repo.Get(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, got.Status)
}

func TestSQLiteRepository_UpdateStatus(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	addSession(t, repo, "s1", 100)

	require.NoError(t, repo.UpdateStatus(ctx, "s1", domain.StatusComplete))
	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusComplete, got.Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "missing", domain.StatusComplete), domain.ErrSessionNotFound)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	addSession(t, repo, "s1", 100)

	require.NoError(t, repo.Delete(ctx, "s1"))
	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "s1"), domain.ErrSessionNotFound)
}

func TestSQLiteRepository_ArtifactPaths(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	addSession(t, repo, "s1", 100)

	require.NoError(t, repo.SetNotesPath(ctx, "s1", "/data/s1/notes.md"))
	require.NoError(t, repo.SetTranscriptPath(ctx, "s1", "/data/s1/transcript.jsonl"))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got.NotesPath)
	require.NotNil(t, got.TranscriptPath)
	assert.Equal(t, "/data/s1/notes.md", *got.NotesPath)
	assert.Equal(t, "/data/s1/transcript.jsonl", *got.TranscriptPath)

	assert.ErrorIs(t, repo.SetNotesPath(ctx, "missing", "x"), domain.ErrSessionNotFound)
}

func TestSQLiteRepository_RaiseDurationNeverLowers(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	addSession(t, repo, "s1", 100)

	require.NoError(t, repo.RaiseDuration(ctx, "s1", 5000))
	require.NoError(t, repo.RaiseDuration(ctx, "s1", 3000))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(5000), got.DurationMs)

	assert.ErrorIs(t, repo.RaiseDuration(ctx, "missing", 1), domain.ErrSessionNotFound)
}

func TestWithRetry(t *testing.T) {
	t.Run("retries busy then succeeds", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			if calls < 2 {
				return sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return nil
		}, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			return fmt.Errorf("wrapped: %w", sqlite3.Error{Code: sqlite3.ErrLocked})
		}, 3)
		require.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("other errors return immediately", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := withRetry(func() error {
			calls++
			return boom
		}, 3)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})
}
