package artifacts

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/polka/internal/domain"
)

func newTestStore(t *testing.T) (*FSStore, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "sessions")
	store, err := NewFSStore(root)
	require.NoError(t, err)
	return store, root
}

func TestFSStore_FolderLifecycle(t *testing.T) {
	store, root := newTestStore(t)

	require.NoError(t, store.CreateFolder("s1"))
	assert.DirExists(t, filepath.Join(root, "s1"))
	require.NoError(t, store.CreateFolder("s1"))

	require.NoError(t, store.RemoveFolder("s1"))
	assert.NoDirExists(t, filepath.Join(root, "s1"))
	require.NoError(t, store.RemoveFolder("s1"))
}

func TestFSStore_RejectsTraversal(t *testing.T) {
	store, _ := newTestStore(t)

	for _, id := range []string{"", ".", "..", "../x", "a/b", `a\b`} {
		t.Run(id, func(t *testing.T) {
			assert.Error(t, store.CreateFolder(id))
			_, err := store.ReadNotes(id)
			assert.Error(t, err)
		})
	}
}

func TestFSStore_Notes(t *testing.T) {
	store, root := newTestStore(t)

	notes, err := store.ReadNotes("s1")
	require.NoError(t, err)
	assert.Equal(t, "", notes)

	path, err := store.WriteNotes("s1", "# Week 1\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "s1", "notes.md"), path)

	_, err = store.WriteNotes("s1", "# Week 1\n\nrevised")
	require.NoError(t, err)

	notes, err = store.ReadNotes("s1")
	require.NoError(t, err)
	assert.Equal(t, "# Week 1\n\nrevised", notes)

	entries, err := os.ReadDir(filepath.Join(root, "s1"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFSStore_Transcript(t *testing.T) {
	store, root := newTestStore(t)

	lines, err := store.ReadTranscript("s1")
	require.NoError(t, err)
	assert.Empty(t, lines)

	want := []domain.TranscriptLine{
		{TMs: 0, Speaker: "Prof", Text: "Good morning"},
		{TMs: 1500, Speaker: "Student", Text: "Question"},
	}
	for _, l := range want {
		path, err := store.AppendTranscriptLine("s1", l)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "s1", "transcript.jsonl"), path)
	}

	lines, err = store.ReadTranscript("s1")
	require.NoError(t, err)
	assert.Equal(t, want, lines)
}

func TestFSStore_ConcurrentAppends(t *testing.T) {
	store, _ := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.AppendTranscriptLine("s1", domain.TranscriptLine{TMs: uint64(i), Text: "x"})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	lines, err := store.ReadTranscript("s1")
	require.NoError(t, err)
	assert.Len(t, lines, 20)
}

func TestFSStore_CorruptTranscript(t *testing.T) {
	store, root := newTestStore(t)
	require.NoError(t, store.CreateFolder("s1"))
	require.NoError(t, os.WriteFile(filepath.Join(root, "s1", "transcript.jsonl"), []byte("{not json\n"), 0o644))

	_, err := store.ReadTranscript("s1")

	assert.Error(t, err)
}
