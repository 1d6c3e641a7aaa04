package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/renato0307/polka/internal/logging"
	"github.com/renato0307/polka/internal/stores"
)

// SessionsDelCmd deletes sessions together with their notes and transcripts
type SessionsDelCmd struct {
	Force bool     `help:"Force deletion without confirmation" short:"f"`
	IDs   []string `arg:"" name:"id" help:"IDs of the sessions to delete"`
}

// Run executes the del command
func (s *SessionsDelCmd) Run(container *Container) error {
	logging.Logger.Info("Executing sessions del command", "ids", s.IDs, "force", s.Force)

	if !s.Force && !confirmDeletion(os.Stdin, os.Stdout, s.IDs) {
		logging.Logger.Info("User cancelled session deletion", "ids", s.IDs)
		fmt.Println("Cancelled")
		return nil
	}

	store := stores.NewSessionsStore(container.Client)
	if err := store.BulkDelete(context.Background(), s.IDs); err != nil {
		logging.Logger.Error("Failed to delete sessions", "ids", s.IDs, "error", err)
		return fmt.Errorf("failed to delete sessions: %w", err)
	}

	for _, id := range s.IDs {
		fmt.Printf("Session '%s' deleted successfully\n", id)
	}
	return nil
}

// confirmDeletion asks on out and reads a y/N answer from in
func confirmDeletion(in io.Reader, out io.Writer, ids []string) bool {
	fmt.Fprintf(out, "WARNING: This will delete %d session(s) and their notes and transcripts:\n", len(ids))
	for _, id := range ids {
		fmt.Fprintf(out, "  - %s\n", id)
	}
	fmt.Fprint(out, "\nContinue? (y/N): ")

	response, _ := bufio.NewReader(in).ReadString('\n')
	response = strings.TrimSpace(response)
	return response == "y" || response == "Y"
}
