package stores

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/renato0307/polka/internal/domain"
)

// SortField names a sortable session column
type SortField string

const (
	SortCreatedAt SortField = "created_at"
	SortDuration  SortField = "duration_ms"
	SortStatus    SortField = "status"
	SortTitle     SortField = "title"
)

// SortOrder is asc or desc
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ParseSortField accepts the column names used on the command line
func ParseSortField(s string) (SortField, error) {
	switch f := SortField(s); f {
	case SortCreatedAt, SortDuration, SortStatus, SortTitle:
		return f, nil
	}
	return "", fmt.Errorf("unknown sort field %q (use created_at, title, duration_ms or status)", s)
}

// Query filters and orders a session list for the library views.
// The zero value keeps everything, newest first.
type Query struct {
	Order  SortOrder
	Search string
	SortBy SortField
	Status domain.SessionStatus // empty matches all
}

// Matches reports whether session passes the search and status filters
func (q Query) Matches(session domain.Session) bool {
	if q.Status != "" && session.Status != q.Status {
		return false
	}
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(session.Title), needle) ||
		strings.Contains(strings.ToLower(session.Course), needle)
}

// Apply returns a new filtered, stably sorted slice
func (q Query) Apply(sessions []domain.Session) []domain.Session {
	out := make([]domain.Session, 0, len(sessions))
	for _, session := range sessions {
		if q.Matches(session) {
			out = append(out, session)
		}
	}

	by := q.SortBy
	if by == "" {
		by = SortCreatedAt
	}
	compare := compareBy(by)
	if q.Order == OrderAsc {
		slices.SortStableFunc(out, compare)
	} else {
		slices.SortStableFunc(out, func(a, b domain.Session) int { return compare(b, a) })
	}
	return out
}

func compareBy(field SortField) func(a, b domain.Session) int {
	switch field {
	case SortTitle:
		return func(a, b domain.Session) int {
			return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case SortDuration:
		return func(a, b domain.Session) int { return cmp.Compare(a.DurationMs, b.DurationMs) }
	case SortStatus:
		return func(a, b domain.Session) int {
			return cmp.Compare(strings.ToLower(string(a.Status)), strings.ToLower(string(b.Status)))
		}
	default:
		return func(a, b domain.Session) int { return cmp.Compare(a.CreatedAt, b.CreatedAt) }
	}
}
