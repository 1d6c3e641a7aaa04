package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Defaults applied when neither a flag, an env var nor settings.json set a value
const (
	DefaultAutosaveDelayMs = 1000
	DefaultErrorClearDelay = 10
	DefaultHTTPAddr        = "127.0.0.1:7420"
	DefaultSSHAddr         = "127.0.0.1:23234"
)

// Settings represents the structure of $POLKA_HOME/settings.json.
// Nil pointers and empty strings mean "not set".
type Settings struct {
	AutosaveDelayMs  *int   `json:"autosave_delay_ms,omitempty"`
	Debug            *bool  `json:"debug,omitempty"`
	Editor           string `json:"editor,omitempty"`
	ErrorClearDelay  *int   `json:"error_clear_delay,omitempty"`
	HTTPAddr         string `json:"http_addr,omitempty"`
	MaxLogFiles      *int   `json:"max_log_files,omitempty"`
	RemoteURL        string `json:"remote_url,omitempty"`
	RequestTimeoutMs *int   `json:"request_timeout_ms,omitempty"`
	SSHAddr          string `json:"ssh_addr,omitempty"`
}

// Validate checks ranges and formats of the fields that are set
func (s *Settings) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.AutosaveDelayMs, validation.Min(0), validation.Max(60_000)),
		validation.Field(&s.ErrorClearDelay, validation.Min(1), validation.Max(3600)),
		validation.Field(&s.MaxLogFiles, validation.Min(0)),
		validation.Field(&s.RequestTimeoutMs, validation.Min(0)),
		validation.Field(&s.RemoteURL, validation.By(httpURL)),
	)
}

func httpURL(value any) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must be an http or https URL")
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}

// AutosaveDelay returns the effective debounce delay for the notes saver
func (s *Settings) AutosaveDelay() time.Duration {
	if s.AutosaveDelayMs != nil {
		return time.Duration(*s.AutosaveDelayMs) * time.Millisecond
	}
	return DefaultAutosaveDelayMs * time.Millisecond
}

// ErrorClearDelaySeconds returns the effective auto-clear delay for the error banner
func (s *Settings) ErrorClearDelaySeconds() int {
	if s.ErrorClearDelay != nil {
		return *s.ErrorClearDelay
	}
	return DefaultErrorClearDelay
}

// RequestTimeout returns the per-request timeout for the remote client, 0 meaning none
func (s *Settings) RequestTimeout() time.Duration {
	if s.RequestTimeoutMs != nil {
		return time.Duration(*s.RequestTimeoutMs) * time.Millisecond
	}
	return 0
}

// LoadSettings loads settings from $POLKA_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads and validates the settings file at path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.Editor != "" {
		settings.Editor = ExpandPath(settings.Editor)
	}

	return &settings, nil
}

// SaveSettings saves settings to $POLKA_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
