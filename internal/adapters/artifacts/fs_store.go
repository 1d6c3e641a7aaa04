package artifacts

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/renato0307/polka/internal/domain"
	"github.com/renato0307/polka/internal/ports"
)

const (
	notesFile      = "notes.md"
	transcriptFile = "transcript.jsonl"
)

// FSStore keeps session artifacts under <root>/<id>/
type FSStore struct {
	mu   sync.Mutex // serializes transcript appends
	root string
}

var _ ports.ArtifactStore = (*FSStore)(nil)

// NewFSStore creates the root directory if needed
func NewFSStore(root string) (*FSStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("artifacts: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("artifacts: mkdir root: %w", err)
	}
	return &FSStore{root: abs}, nil
}

// folder resolves the session folder, rejecting ids that would escape root
func (s *FSStore) folder(id string) (string, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("artifacts: invalid session id %q", id)
	}
	return filepath.Join(s.root, id), nil
}

// CreateFolder makes <root>/<id>
func (s *FSStore) CreateFolder(id string) error {
	dir, err := s.folder(id)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("artifacts: mkdir %s: %w", id, err)
	}
	return nil
}

// RemoveFolder deletes <root>/<id> and everything in it
func (s *FSStore) RemoveFolder(id string) error {
	dir, err := s.folder(id)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("artifacts: remove %s: %w", id, err)
	}
	return nil
}

// WriteNotes atomically writes content: tmp file, fsync, rename
func (s *FSStore) WriteNotes(id, markdown string) (string, error) {
	dir, err := s.folder(id)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("artifacts: mkdir: %w", err)
	}

	target := filepath.Join(dir, notesFile)
	tmp, err := os.CreateTemp(dir, ".polka-tmp-*")
	if err != nil {
		return "", fmt.Errorf("artifacts: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.WriteString(markdown); err != nil {
		return "", fmt.Errorf("artifacts: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return "", fmt.Errorf("artifacts: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("artifacts: close temp: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return "", fmt.Errorf("artifacts: rename: %w", err)
	}
	success = true
	return target, nil
}

// ReadNotes returns "" when the notes file does not exist
func (s *FSStore) ReadNotes(id string) (string, error) {
	dir, err := s.folder(id)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(dir, notesFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("artifacts: read notes %s: %w", id, err)
	}
	return string(data), nil
}

// AppendTranscriptLine appends one JSON object per line
func (s *FSStore) AppendTranscriptLine(id string, line domain.TranscriptLine) (string, error) {
	dir, err := s.folder(id)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(line)
	if err != nil {
		return "", fmt.Errorf("artifacts: encode line: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("artifacts: mkdir: %w", err)
	}
	path := filepath.Join(dir, transcriptFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("artifacts: open transcript: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("artifacts: append transcript: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("artifacts: close transcript: %w", err)
	}
	return path, nil
}

// ReadTranscript returns the lines in append order, or an empty slice
func (s *FSStore) ReadTranscript(id string) ([]domain.TranscriptLine, error) {
	dir, err := s.folder(id)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(dir, transcriptFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.TranscriptLine{}, nil
		}
		return nil, fmt.Errorf("artifacts: open transcript: %w", err)
	}
	defer f.Close()

	lines := []domain.TranscriptLine{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		var line domain.TranscriptLine
		if err := json.Unmarshal([]byte(raw), &line); err != nil {
			return nil, fmt.Errorf("artifacts: transcript %s line %d: %w", id, n, err)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("artifacts: scan transcript: %w", err)
	}
	return lines, nil
}
