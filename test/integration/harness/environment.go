package harness

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own POLKA_HOME.
type TestEnvironment struct {
	PolkaHome string
	extraEnv  map[string]string
	tb        testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp POLKA_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		PolkaHome: tb.TempDir(),
		extraEnv:  make(map[string]string),
		tb:        tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out POLKA_* variables and sets:
//   - POLKA_HOME to the temp directory
//   - POLKA_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "POLKA_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"POLKA_HOME="+e.PolkaHome,
		"POLKA_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.PolkaHome, "polka.db")
}

// SessionDir returns the folder holding the notes and transcript of a session.
func (e *TestEnvironment) SessionDir(id string) string {
	return filepath.Join(e.PolkaHome, "sessions", id)
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// WriteSettings writes settings.json into POLKA_HOME.
func (e *TestEnvironment) WriteSettings(settings map[string]any) {
	e.tb.Helper()
	data, err := json.Marshal(settings)
	if err != nil {
		e.tb.Fatalf("Failed to marshal settings: %v", err)
	}
	if err := os.WriteFile(filepath.Join(e.PolkaHome, "settings.json"), data, 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}
