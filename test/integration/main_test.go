// Package integration_test provides end-to-end tests for polka CLI commands.
// Tests compile the binary once via TestMain and run each test with an
// isolated POLKA_HOME to ensure test independence.
package integration_test

import (
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/renato0307/polka/test/integration/harness"
)

func TestMain(m *testing.M) {
	// Build binary once before all tests
	_, err := harness.BuildBinary()
	if err != nil {
		log.Fatalf("Failed to build binary: %v", err)
	}

	code := m.Run()

	harness.CleanupBinary()

	os.Exit(code)
}

type listedSession struct {
	Course     string  `json:"course"`
	DurationMs int64   `json:"duration_ms"`
	ID         string  `json:"id"`
	NotesPath  *string `json:"notes_path"`
	Status     string  `json:"status"`
	Title      string  `json:"title"`
}

// listSessions returns the sessions as printed by "sessions list --format json"
func listSessions(t *testing.T, env *harness.TestEnvironment, args ...string) []listedSession {
	t.Helper()
	result := harness.RunCommand(t, env, append([]string{"sessions", "list", "--format", "json"}, args...)...)
	harness.AssertSuccess(t, result)

	var sessions []listedSession
	harness.AssertValidJSON(t, result, &sessions)
	return sessions
}

// addSession creates a session and returns its id
func addSession(t *testing.T, env *harness.TestEnvironment, title string, args ...string) string {
	t.Helper()
	result := harness.RunCommand(t, env, append([]string{"sessions", "add", title}, args...)...)
	harness.AssertSuccess(t, result)

	for _, s := range listSessions(t, env) {
		if s.Title == title {
			return s.ID
		}
	}
	require.FailNow(t, "created session not listed", "title %q", title)
	return ""
}
