package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/polka/internal/autosave"
	"github.com/renato0307/polka/internal/logging"
	"github.com/renato0307/polka/internal/ports"
	"github.com/renato0307/polka/internal/theme"
)

// NotesView edits the markdown notes of one session. Changes are persisted
// by a debounced saver; failures are pushed to errCh.
type NotesView struct {
	client    ports.SessionClient
	editor    textarea.Model
	errCh     chan<- error
	opts      autosave.Options
	saver     *autosave.Saver[string]
	sessionID string
	title     string
}

// NewNotesView creates an editor for sessionID. Call Load to fetch the notes.
func NewNotesView(client ports.SessionClient, sessionID, title string, opts autosave.Options, errCh chan<- error) *NotesView {
	editor := textarea.New()
	editor.Placeholder = "Start typing your notes..."
	editor.ShowLineNumbers = false
	editor.CharLimit = 0

	return &NotesView{
		client:    client,
		editor:    editor,
		errCh:     errCh,
		opts:      opts,
		sessionID: sessionID,
		title:     title,
	}
}

// SessionID returns the session being edited
func (v *NotesView) SessionID() string {
	return v.sessionID
}

// Loaded reports whether the notes arrived and the editor is live
func (v *NotesView) Loaded() bool {
	return v.saver != nil
}

// Load fetches the notes in the background
func (v *NotesView) Load() tea.Cmd {
	client, id := v.client, v.sessionID
	return func() tea.Msg {
		md, err := client.ReadNotes(context.Background(), id)
		return notesLoadedMsg{err: err, markdown: md, sessionID: id}
	}
}

// HandleLoaded fills the editor and starts the saver
func (v *NotesView) HandleLoaded(msg notesLoadedMsg) tea.Cmd {
	v.editor.SetValue(msg.markdown)

	opts := v.opts
	errCh := v.errCh
	opts.OnError = func(err error) {
		select {
		case errCh <- err:
		default:
		}
	}

	client, id := v.client, v.sessionID
	v.saver = autosave.New(func(ctx context.Context, md string) error {
		return client.WriteNotes(ctx, id, md)
	}, msg.markdown, opts)

	logging.Logger.Debug("Notes editor ready", "session_id", id, "bytes", len(msg.markdown))
	return v.editor.Focus()
}

// SetSize sizes the editor
func (v *NotesView) SetSize(width, height int) {
	v.editor.SetWidth(width)
	v.editor.SetHeight(max(height-2, 1))
}

// Update forwards msg to the editor and schedules a save when the text changed
func (v *NotesView) Update(msg tea.Msg) tea.Cmd {
	if v.saver == nil {
		return nil
	}
	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	if value := v.editor.Value(); value != v.saver.Value() {
		v.saver.Update(value)
	}
	return cmd
}

// SaveNow saves pending changes immediately
func (v *NotesView) SaveNow() tea.Cmd {
	saver := v.saver
	if saver == nil {
		return nil
	}
	return func() tea.Msg {
		_ = saver.SaveImmediately(context.Background())
		return nil
	}
}

// Blur flushes pending changes when the terminal loses focus
func (v *NotesView) Blur() tea.Cmd {
	saver := v.saver
	if saver == nil {
		return nil
	}
	return func() tea.Msg {
		_ = saver.Hide(context.Background())
		return nil
	}
}

// Shutdown stops the saver, flushing pending changes on the caller's goroutine
func (v *NotesView) Shutdown(ctx context.Context) error {
	if v.saver == nil {
		return nil
	}
	return v.saver.Close(ctx)
}

func (v *NotesView) View() string {
	header := theme.SubtitleStyle.Render(v.title)
	if v.saver == nil {
		return header + "\n\n" + theme.MutedStyle.Render("Loading notes...")
	}

	var status string
	switch {
	case v.saver.IsSaving():
		status = theme.SavingStyle.Render("saving...")
	case v.saver.HasUnsavedChanges():
		status = theme.MutedStyle.Render("unsaved changes")
	default:
		status = theme.MutedStyle.Render("saved")
	}

	return fmt.Sprintf("%s  %s\n\n%s", header, status, v.editor.View())
}
