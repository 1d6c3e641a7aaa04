// Package harness provides utilities for integration testing the polka CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - POLKA_HOME: Isolated per test (temp directory)
//   - POLKA_DEBUG: Disabled to reduce noise
//   - POLKA_REMOTE: Cleared so commands use the local backend
package harness
