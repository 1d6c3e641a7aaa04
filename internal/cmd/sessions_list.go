package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/renato0307/polka/internal/domain"
	"github.com/renato0307/polka/internal/logging"
	"github.com/renato0307/polka/internal/stores"
)

// SessionsListCmd lists sessions
type SessionsListCmd struct {
	Asc    bool   `help:"Sort ascending instead of descending"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Search string `help:"Only sessions whose title or course contains this text" short:"s"`
	Sort   string `help:"Sort by created_at, title, duration_ms or status" enum:"created_at,title,duration_ms,status" default:"created_at"`
	Status string `help:"Only sessions with this status" enum:",draft,recording,complete,archived" default:""`
}

// Run executes the list command
func (s *SessionsListCmd) Run(container *Container) error {
	query, err := s.query()
	if err != nil {
		return err
	}

	sessions, err := container.Client.ListSessions(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	sessions = query.Apply(sessions)
	logging.Logger.Debug("Listing sessions", "count", len(sessions), "sort", s.Sort, "status", s.Status)

	if s.Format == "json" {
		return printJSON(os.Stdout, sessions)
	}
	return printSessionsTable(os.Stdout, sessions)
}

func (s *SessionsListCmd) query() (stores.Query, error) {
	field, err := stores.ParseSortField(s.Sort)
	if err != nil {
		return stores.Query{}, err
	}

	q := stores.Query{
		Order:  stores.OrderDesc,
		Search: s.Search,
		SortBy: field,
	}
	if s.Asc {
		q.Order = stores.OrderAsc
	}
	if s.Status != "" {
		status, err := domain.ParseSessionStatus(s.Status)
		if err != nil {
			return stores.Query{}, err
		}
		q.Status = status
	}
	return q, nil
}

func printSessionsTable(out io.Writer, sessions []domain.Session) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCOURSE\tSTATUS\tDURATION\tCREATED")
	for _, sess := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s %s\t%s\t%s\n",
			sess.ID,
			sess.DisplayTitle(),
			sess.Course,
			sess.Status.Symbol(),
			sess.Status,
			domain.FormatDuration(sess.DurationMs),
			time.Unix(sess.CreatedAt, 0).Format("2006-01-02 15:04"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nTotal: %d sessions\n", len(sessions))
	return nil
}
