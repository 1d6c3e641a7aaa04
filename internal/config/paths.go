package config

import (
	"os"
	"path/filepath"
)

// GetPolkaHome returns POLKA_HOME or ~/.polka default
func GetPolkaHome() string {
	polkaHome := os.Getenv("POLKA_HOME")
	if polkaHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".polka"
		}
		return filepath.Join(homeDir, ".polka")
	}
	return ExpandPath(polkaHome)
}

// GetDBPath returns $POLKA_HOME/polka.db
func GetDBPath() string {
	return filepath.Join(GetPolkaHome(), "polka.db")
}

// GetSessionsDir returns $POLKA_HOME/sessions, the root of the per-session folders
func GetSessionsDir() string {
	return filepath.Join(GetPolkaHome(), "sessions")
}

// GetSettingsPath returns $POLKA_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetPolkaHome(), "settings.json")
}

// GetSSHDir returns $POLKA_HOME/ssh
func GetSSHDir() string {
	return filepath.Join(GetPolkaHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
