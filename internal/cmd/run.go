package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/polka/internal/adapters/editor"
	"github.com/renato0307/polka/internal/config"
	"github.com/renato0307/polka/internal/logging"
	"github.com/renato0307/polka/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	AutosaveDelayMs int `help:"Milliseconds of idle typing before notes are saved" default:"1000"`
	ErrorClearDelay int `help:"Seconds before error messages auto-clear" default:"10"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI, container *Container) error {
	opts := r.uiOptions(cli)

	logging.Logger.Info("Starting polka TUI",
		"remote", container.Remote,
		"autosave_delay", opts.AutosaveDelay.String(),
		"error_clear_delay", opts.ErrorClearDelay.String())

	model := ui.NewModel(container.Client, opts)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // Focus loss flushes the notes editor
	)

	_, runErr := p.Run()

	// Quitting from the UI already flushed; this covers every other exit path
	if err := model.Shutdown(context.Background()); err != nil {
		logging.Logger.Error("Failed to save notes on exit", "error", err)
	}

	if runErr != nil {
		logging.Logger.Error("TUI program error", "error", runErr)
		return fmt.Errorf("error running program: %w", runErr)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

// uiOptions resolves the TUI settings and records where each came from
func (r *RunCmd) uiOptions(cli *CLI) ui.Options {
	settings := cli.Settings()

	autosaveMs, autosaveSource := resolveInt(r.AutosaveDelayMs, config.DefaultAutosaveDelayMs, settings.AutosaveDelayMs)
	clearDelay, clearSource := resolveInt(r.ErrorClearDelay, config.DefaultErrorClearDelay, settings.ErrorClearDelay)

	return ui.Options{
		AutosaveDelay:   time.Duration(autosaveMs) * time.Millisecond,
		ErrorClearDelay: time.Duration(clearDelay) * time.Second,
		Settings: append(globalSettingRows(cli),
			ui.SettingRow{Key: "autosave_delay_ms", Source: autosaveSource, Value: strconv.Itoa(autosaveMs)},
			ui.SettingRow{Key: "error_clear_delay", Source: clearSource, Value: strconv.Itoa(clearDelay)},
		),
	}
}

// globalSettingRows describes the options resolved in CLI.AfterApply
func globalSettingRows(cli *CLI) []ui.SettingRow {
	settings := cli.Settings()

	timeout := "none"
	timeoutSource := sourceDefault
	if settings.RequestTimeoutMs != nil {
		timeout = settings.RequestTimeout().String()
		timeoutSource = sourceSettings
	}

	editorValue, editorSource := editor.Resolve(""), sourceDefault
	if _, ok := os.LookupEnv("POLKA_EDITOR"); !ok && settings.Editor != "" {
		editorValue, editorSource = settings.Editor, sourceSettings
	} else if editorValue != editor.DefaultEditor {
		editorSource = sourceEnv
	}

	homeSource := sourceDefault
	if _, ok := os.LookupEnv("POLKA_HOME"); ok {
		homeSource = sourceEnv
	}

	return []ui.SettingRow{
		{Key: "polka_home", Source: homeSource, Value: config.GetPolkaHome()},
		{Key: "remote_url", Source: cli.source("remote_url"), Value: cli.Remote},
		{Key: "request_timeout_ms", Source: timeoutSource, Value: timeout},
		{Key: "debug", Source: cli.source("debug"), Value: strconv.FormatBool(cli.Debug)},
		{Key: "max_log_files", Source: cli.source("max_log_files"), Value: strconv.Itoa(cli.MaxLogFiles)},
		{Key: "editor", Source: editorSource, Value: editorValue},
	}
}
