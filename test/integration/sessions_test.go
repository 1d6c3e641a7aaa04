package integration_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/polka/test/integration/harness"
)

func TestSessionsAdd(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "add with course",
			args:         []string{"sessions", "add", "Linear Algebra", "--course", "MATH101"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Session 'Linear Algebra' created")
				harness.AssertStderrEmpty(t, result)

				sessions := listSessions(t, env)
				require.Len(t, sessions, 1)
				assert.Equal(t, "MATH101", sessions[0].Course)
				assert.Equal(t, "draft", sessions[0].Status)
				assert.DirExists(t, env.SessionDir(sessions[0].ID))
			},
		},
		{
			name:         "add trims the title",
			args:         []string{"sessions", "add", "  Physics  "},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				sessions := listSessions(t, env)
				require.Len(t, sessions, 1)
				assert.Equal(t, "Physics", sessions[0].Title)
			},
		},
		{
			name:         "blank title is rejected",
			args:         []string{"sessions", "add", "   "},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertCommandError(t, result, "session title cannot be empty")
				assert.Empty(t, listSessions(t, env))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			result := harness.RunCommand(t, env, tt.args...)
			harness.AssertExitCode(t, result, tt.wantExitCode)
			tt.validate(t, env, result)
		})
	}
}

func TestSessionsList(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "sessions", "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Total: 0 sessions")

	algebra := addSession(t, env, "Algebra", "--course", "MATH101")
	addSession(t, env, "Biology", "--course", "BIO200")
	addSession(t, env, "Chemistry")

	t.Run("table lists everything", func(t *testing.T) {
		result := harness.RunCommand(t, env, "sessions", "list")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Algebra")
		harness.AssertStdoutContains(t, result, "Biology")
		harness.AssertStdoutContains(t, result, "Chemistry")
		harness.AssertStdoutContains(t, result, "Total: 3 sessions")
	})

	t.Run("sort by title ascending", func(t *testing.T) {
		sessions := listSessions(t, env, "--sort", "title", "--asc")
		require.Len(t, sessions, 3)
		assert.Equal(t, []string{"Algebra", "Biology", "Chemistry"},
			[]string{sessions[0].Title, sessions[1].Title, sessions[2].Title})
	})

	t.Run("search matches course", func(t *testing.T) {
		sessions := listSessions(t, env, "--search", "bio")
		require.Len(t, sessions, 1)
		assert.Equal(t, "Biology", sessions[0].Title)

		result := harness.RunCommand(t, env, "sessions", "list", "-s", "bio")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "BIO200")
		harness.AssertStdoutNotContains(t, result, "Algebra")
		harness.AssertStdoutNotContains(t, result, "Chemistry")
	})

	t.Run("status filter", func(t *testing.T) {
		harness.AssertSuccess(t, harness.RunCommand(t, env, "sessions", "status", algebra, "complete"))

		sessions := listSessions(t, env, "--status", "complete")
		require.Len(t, sessions, 1)
		assert.Equal(t, algebra, sessions[0].ID)
	})

	t.Run("invalid sort field", func(t *testing.T) {
		result := harness.RunCommand(t, env, "sessions", "list", "--sort", "colour")
		harness.AssertFailure(t, result)
	})
}

func TestSessionsStatus(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	id := addSession(t, env, "Algebra")

	result := harness.RunCommand(t, env, "sessions", "status", id, "recording")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "is now ● recording")

	sessions := listSessions(t, env)
	require.Len(t, sessions, 1)
	assert.Equal(t, "recording", sessions[0].Status)

	t.Run("unknown status", func(t *testing.T) {
		result := harness.RunCommand(t, env, "sessions", "status", id, "paused")
		harness.AssertFailure(t, result)
	})

	t.Run("unknown session", func(t *testing.T) {
		result := harness.RunCommand(t, env, "sessions", "status", "missing", "complete")
		harness.AssertCommandError(t, result, "session not found")
	})
}

func TestSessionsDel(t *testing.T) {
	t.Run("force deletes row and folder", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		id := addSession(t, env, "Algebra")
		require.DirExists(t, env.SessionDir(id))

		result := harness.RunCommand(t, env, "sessions", "del", id, "--force")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "deleted successfully")

		assert.Empty(t, listSessions(t, env))
		_, err := os.Stat(env.SessionDir(id))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("several ids at once", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		a := addSession(t, env, "Algebra")
		b := addSession(t, env, "Biology")
		addSession(t, env, "Chemistry")

		result := harness.RunCommand(t, env, "sessions", "del", a, b, "--force")
		harness.AssertSuccess(t, result)

		sessions := listSessions(t, env)
		require.Len(t, sessions, 1)
		assert.Equal(t, "Chemistry", sessions[0].Title)
	})

	t.Run("declined confirmation keeps the session", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		id := addSession(t, env, "Algebra")

		result := harness.RunCommandWithInput(t, env, "n\n", "sessions", "del", id)
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Cancelled")
		harness.AssertStdoutNotContains(t, result, "deleted successfully")
		assert.Len(t, listSessions(t, env), 1)
	})

	t.Run("confirmed deletion", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		id := addSession(t, env, "Algebra")

		result := harness.RunCommandWithInput(t, env, "y\n", "sessions", "del", id)
		harness.AssertSuccess(t, result)
		assert.Empty(t, listSessions(t, env))
	})

	t.Run("unknown id fails", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "sessions", "del", "missing", "--force")
		harness.AssertCommandError(t, result, "session not found")
	})
}
