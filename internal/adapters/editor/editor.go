// Package editor round-trips text through the user's external editor.
package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/renato0307/polka/internal/logging"
)

// DefaultEditor is used when nothing else names an editor
const DefaultEditor = "vi"

// Editor opens a temporary markdown file in an external program and
// returns what the user saved
type Editor struct {
	command string
	stderr  *os.File
	stdin   *os.File
	stdout  *os.File
}

// New creates an editor.
// Priority: command → $POLKA_EDITOR → $VISUAL → $EDITOR → vi
func New(command string) *Editor {
	return &Editor{
		command: Resolve(command),
		stderr:  os.Stderr,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
	}
}

// Resolve picks the editor command line
func Resolve(command string) string {
	if command != "" {
		return command
	}
	for _, key := range []string{"POLKA_EDITOR", "VISUAL", "EDITOR"} {
		if editor := os.Getenv(key); editor != "" {
			return editor
		}
	}
	return DefaultEditor
}

// Command returns the resolved editor command line
func (e *Editor) Command() string {
	return e.command
}

// Edit writes initial to a temp file named after name, waits for the
// editor to exit and returns the file contents
func (e *Editor) Edit(ctx context.Context, name, initial string) (string, error) {
	fields := strings.Fields(e.command)
	if len(fields) == 0 {
		return "", fmt.Errorf("no editor configured")
	}

	dir, err := os.MkdirTemp("", "polka-edit-")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, name+".md")
	if err := os.WriteFile(path, []byte(initial), 0600); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	logging.Logger.Info("Opening editor", "editor", e.command, "path", path)

	cmd := exec.CommandContext(ctx, fields[0], append(fields[1:], path)...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	if err := cmd.Run(); err != nil {
		logging.Logger.Warn("Editor exited with error", "error", err, "editor", e.command)
		return "", fmt.Errorf("editor %s failed: %w", fields[0], err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return string(data), nil
}
