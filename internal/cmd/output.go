package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/renato0307/polka/internal/domain"
)

func printJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

// findSession looks a session up by id; the command surface has no single-session read
func findSession(container *Container, id string) (domain.Session, bool) {
	sessions, err := container.Client.ListSessions(context.Background())
	if err != nil {
		return domain.Session{}, false
	}
	for _, s := range sessions {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Session{}, false
}
