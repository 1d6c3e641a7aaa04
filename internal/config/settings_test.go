package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestLoadSettings_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("POLKA_HOME", t.TempDir())

	s, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, s)
	assert.Equal(t, time.Second, s.AutosaveDelay())
	assert.Equal(t, DefaultErrorClearDelay, s.ErrorClearDelaySeconds())
	assert.Zero(t, s.RequestTimeout())
}

func TestSaveAndLoadSettings(t *testing.T) {
	t.Setenv("POLKA_HOME", filepath.Join(t.TempDir(), "home"))
	in := &Settings{
		AutosaveDelayMs:  intPtr(250),
		RemoteURL:        "http://127.0.0.1:7420",
		RequestTimeoutMs: intPtr(5000),
	}

	require.NoError(t, SaveSettings(in))
	out, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, out.AutosaveDelay())
	assert.Equal(t, 5*time.Second, out.RequestTimeout())
	assert.Equal(t, "http://127.0.0.1:7420", out.RemoteURL)
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"debug": `},
		{"negative delay", `{"autosave_delay_ms": -1}`},
		{"bad remote scheme", `{"remote_url": "ftp://host"}`},
		{"remote without host", `{"remote_url": "http://"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadSettingsFrom(path)
			assert.Error(t, err)
		})
	}
}

func TestGetPolkaHome(t *testing.T) {
	t.Setenv("POLKA_HOME", "/tmp/polka-test")
	assert.Equal(t, "/tmp/polka-test", GetPolkaHome())
	assert.Equal(t, "/tmp/polka-test/polka.db", GetDBPath())
	assert.Equal(t, "/tmp/polka-test/sessions", GetSessionsDir())

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "notes"), ExpandPath("~/notes"))
}
