package harness

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// describe formats a result for failure messages
func describe(result CommandResult) string {
	return fmt.Sprintf("exit %d\nstdout: %s\nstderr: %s", result.ExitCode, result.Stdout, result.Stderr)
}

// AssertSuccess verifies polka exited 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Zero(tb, result.ExitCode, "polka failed\n%s", describe(result))
}

// AssertFailure verifies polka exited non-zero.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotZero(tb, result.ExitCode, "polka unexpectedly succeeded\n%s", describe(result))
}

// AssertExitCode verifies polka exited with code.
func AssertExitCode(tb testing.TB, result CommandResult, code int) {
	tb.Helper()
	assert.Equal(tb, code, result.ExitCode, describe(result))
}

// AssertCommandError verifies polka reported a command error: exit 1 and an
// "Error:" line on stderr mentioning msg.
func AssertCommandError(tb testing.TB, result CommandResult, msg string) {
	tb.Helper()
	AssertExitCode(tb, result, 1)
	assert.True(tb, strings.HasPrefix(result.Stderr, "Error: "), "stderr should start with Error:\n%s", describe(result))
	assert.Contains(tb, result.Stderr, msg, describe(result))
}

// AssertStdoutContains verifies stdout contains s.
func AssertStdoutContains(tb testing.TB, result CommandResult, s string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, s, describe(result))
}

// AssertStdoutNotContains verifies stdout does not contain s.
func AssertStdoutNotContains(tb testing.TB, result CommandResult, s string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, s, describe(result))
}

// AssertStderrContains verifies stderr contains s.
func AssertStderrContains(tb testing.TB, result CommandResult, s string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, s, describe(result))
}

// AssertStdoutEmpty verifies nothing but whitespace was printed.
func AssertStdoutEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stdout), describe(result))
}

// AssertStderrEmpty verifies polka wrote nothing to stderr.
func AssertStderrEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stderr), describe(result))
}

// AssertValidJSON decodes stdout into target.
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target), describe(result))
}
