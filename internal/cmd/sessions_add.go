package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/polka/internal/domain"
	"github.com/renato0307/polka/internal/logging"
)

// SessionsAddCmd creates a session
type SessionsAddCmd struct {
	Course string `help:"Course the session belongs to" short:"c"`
	Title  string `arg:"" help:"Title of the session"`
}

// Run executes the add command
func (s *SessionsAddCmd) Run(container *Container) error {
	req := domain.CreateSessionRequest{Course: s.Course, Title: s.Title}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}

	logging.Logger.Info("Executing sessions add command", "title", req.Title, "course", req.Course)
	session, err := container.Client.CreateSession(context.Background(), req)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	fmt.Printf("Session '%s' created (%s)\n", session.DisplayTitle(), session.ID)
	return nil
}
