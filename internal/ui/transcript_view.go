package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/polka/internal/domain"
	"github.com/renato0307/polka/internal/ports"
	"github.com/renato0307/polka/internal/theme"
)

// TranscriptView shows the transcript of one session in a scrollable viewport
type TranscriptView struct {
	client    ports.SessionClient
	loaded    bool
	lines     []domain.TranscriptLine
	sessionID string
	title     string
	viewport  viewport.Model
}

// NewTranscriptView creates a view for sessionID. Call Load to fetch the lines.
func NewTranscriptView(client ports.SessionClient, sessionID, title string) *TranscriptView {
	return &TranscriptView{
		client:    client,
		sessionID: sessionID,
		title:     title,
		viewport:  viewport.New(0, 0),
	}
}

// SessionID returns the session shown
func (v *TranscriptView) SessionID() string {
	return v.sessionID
}

// Load fetches the transcript in the background
func (v *TranscriptView) Load() tea.Cmd {
	client, id := v.client, v.sessionID
	return func() tea.Msg {
		lines, err := client.ReadTranscript(context.Background(), id)
		return transcriptLoadedMsg{err: err, lines: lines, sessionID: id}
	}
}

// HandleLoaded renders the lines into the viewport
func (v *TranscriptView) HandleLoaded(msg transcriptLoadedMsg) {
	v.lines = msg.lines
	v.loaded = true
	v.viewport.SetContent(renderTranscript(v.lines))
}

// SetSize sizes the viewport
func (v *TranscriptView) SetSize(width, height int) {
	v.viewport.Width = width
	v.viewport.Height = max(height-2, 1)
}

// Update forwards scrolling input to the viewport
func (v *TranscriptView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

func (v *TranscriptView) View() string {
	header := theme.SubtitleStyle.Render(v.title)
	if !v.loaded {
		return header + "\n\n" + theme.MutedStyle.Render("Loading transcript...")
	}
	return fmt.Sprintf("%s  %s\n\n%s", header,
		theme.MutedStyle.Render(fmt.Sprintf("%d lines", len(v.lines))),
		v.viewport.View())
}

func renderTranscript(lines []domain.TranscriptLine) string {
	if len(lines) == 0 {
		return theme.MutedStyle.Render("No transcript yet.")
	}
	var b strings.Builder
	for i, line := range lines {
		view := line.View(i)
		b.WriteString(theme.TimestampStyle.Render("[" + domain.FormatTimestamp(view.Timestamp) + "]"))
		b.WriteByte(' ')
		if view.Speaker != "" {
			b.WriteString(theme.SpeakerStyle.Render(view.Speaker + ":"))
			b.WriteByte(' ')
		}
		b.WriteString(view.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
