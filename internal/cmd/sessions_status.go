package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/polka/internal/domain"
	"github.com/renato0307/polka/internal/logging"
)

// SessionsStatusCmd sets the status of a session
type SessionsStatusCmd struct {
	ID     string `arg:"" help:"Session ID"`
	Status string `arg:"" help:"New status" enum:"draft,recording,complete,archived"`
}

// Run executes the status command
func (s *SessionsStatusCmd) Run(container *Container) error {
	status, err := domain.ParseSessionStatus(s.Status)
	if err != nil {
		return err
	}

	req := domain.UpdateSessionStatusRequest{ID: s.ID, Status: status}
	if err := req.Validate(); err != nil {
		return err
	}

	logging.Logger.Info("Executing sessions status command", "session_id", s.ID, "status", status)
	if err := container.Client.UpdateSessionStatus(context.Background(), req); err != nil {
		return fmt.Errorf("failed to update session status: %w", err)
	}

	fmt.Printf("Session '%s' is now %s %s\n", s.ID, status.Symbol(), status)
	return nil
}
