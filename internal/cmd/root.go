// Package cmd holds the kong command tree of the polka binary.
package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/polka/internal/config"
	"github.com/renato0307/polka/internal/logging"
)

// Value sources reported by the settings view
const (
	sourceDefault  = "default"
	sourceEnv      = "env"
	sourceFlag     = "flag"
	sourceSettings = "settings.json"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Remote      string           `help:"Talk to a polka server at this URL instead of the local database" env:"POLKA_REMOTE" placeholder:"URL"`

	Run        RunCmd        `cmd:"" help:"Start the polka TUI (default)" default:"1"`
	Sessions   SessionsCmd   `cmd:"sessions" help:"Manage sessions (list, add, status, del)"`
	Notes      NotesCmd      `cmd:"notes" help:"Read or replace session notes"`
	Transcript TranscriptCmd `cmd:"transcript" help:"Read or append to session transcripts"`
	Serve      ServeCmd      `cmd:"serve" help:"Serve the command API over HTTP"`
	ServeSSH   ServeSSHCmd   `cmd:"serve-ssh" help:"Serve the TUI over SSH"`

	// Internal fields (not flags)
	Container *Container        `kong:"-"`
	settings  *config.Settings  `kong:"-"`
	sources   map[string]string `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// Settings returns the loaded settings, never nil
func (c *CLI) Settings() *config.Settings {
	if c.settings == nil {
		c.settings = &config.Settings{}
	}
	return c.settings
}

// AfterApply resolves global settings, initializes logging and builds the container.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) AfterApply() error {
	settings := c.Settings()
	c.sources = map[string]string{
		"debug":         sourceDefault,
		"max_log_files": sourceDefault,
		"remote_url":    sourceDefault,
	}

	if c.Debug {
		c.sources["debug"] = sourceFlag
	} else if _, hasEnv := os.LookupEnv("POLKA_DEBUG"); hasEnv {
		c.sources["debug"] = sourceEnv
	} else if settings.Debug != nil {
		c.Debug = *settings.Debug
		c.sources["debug"] = sourceSettings
	}

	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		c.sources["max_log_files"] = sourceFlag
	} else if _, hasEnv := os.LookupEnv("POLKA_MAX_LOG_FILES"); hasEnv {
		c.sources["max_log_files"] = sourceEnv
	} else if settings.MaxLogFiles != nil {
		c.MaxLogFiles = *settings.MaxLogFiles
		c.sources["max_log_files"] = sourceSettings
	}

	if c.Remote != "" {
		if os.Getenv("POLKA_REMOTE") == c.Remote {
			c.sources["remote_url"] = sourceEnv
		} else {
			c.sources["remote_url"] = sourceFlag
		}
	} else if settings.RemoteURL != "" {
		c.Remote = settings.RemoteURL
		c.sources["remote_url"] = sourceSettings
	}

	if err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	// Container is created after logging so the GORM logger has somewhere to write
	container, err := NewContainer(c.Remote, settings.RequestTimeout())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	logging.Logger.Debug("CLI initialized",
		"remote", c.Remote,
		"polka_home", config.GetPolkaHome(),
		"debug", c.Debug)
	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// source returns where a global value came from
func (c *CLI) source(key string) string {
	if s, ok := c.sources[key]; ok {
		return s
	}
	return sourceDefault
}

// resolveInt applies flag > settings.json > default for an int option whose
// flag carries def as its kong default
func resolveInt(flagValue, def int, fromSettings *int) (int, string) {
	if flagValue != def {
		return flagValue, sourceFlag
	}
	if fromSettings != nil {
		return *fromSettings, sourceSettings
	}
	return def, sourceDefault
}

// resolveString applies flag > settings.json > default for a string option
func resolveString(flagValue, fromSettings, def string) (string, string) {
	if flagValue != "" {
		return flagValue, sourceFlag
	}
	if fromSettings != "" {
		return fromSettings, sourceSettings
	}
	return def, sourceDefault
}
