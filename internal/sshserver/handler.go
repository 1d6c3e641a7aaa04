package sshserver

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"github.com/renato0307/polka/internal/logging"
	"github.com/renato0307/polka/internal/ui"
)

type contextKey string

const (
	modelKey   contextKey = "polka.model"
	startedKey contextKey = "polka.started"
)

// teaHandler creates a fresh model, with its own stores and saver, for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model := ui.NewModel(s.client, s.uiOptions)
	sess.Context().SetValue(modelKey, model)
	sess.Context().SetValue(startedKey, time.Now())

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	}
}

// cleanupMiddleware runs after the program of a session has exited and
// flushes whatever the notes editor still holds
func cleanupMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())
			if model, ok := sess.Context().Value(modelKey).(*ui.Model); ok {
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				if err := model.Shutdown(ctx); err != nil {
					logging.Logger.Error("Failed to flush notes for SSH session",
						"session_id", sessionID,
						"error", err)
				}
				cancel()
			}

			var duration time.Duration
			if started, ok := sess.Context().Value(startedKey).(time.Time); ok {
				duration = time.Since(started)
			}
			logging.Logger.Info("SSH session ended",
				"session_id", sessionID,
				"duration", duration.String())

			next(sess)
		}
	}
}
