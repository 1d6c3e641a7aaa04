package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/polka/internal/domain"
)

func librarySessions() []domain.Session {
	return []domain.Session{
		{ID: "1", Title: "beta", Course: "Physics", CreatedAt: 100, DurationMs: 300, Status: domain.StatusComplete},
		{ID: "2", Title: "Alpha", Course: "Math", CreatedAt: 300, DurationMs: 100, Status: domain.StatusDraft},
		{ID: "3", Title: "gamma", Course: "math", CreatedAt: 200, DurationMs: 200, Status: domain.StatusArchived},
		{ID: "4", Title: "Delta", Course: "", CreatedAt: 200, DurationMs: 100, Status: domain.StatusDraft},
	}
}

func ids(sessions []domain.Session) []string {
	out := make([]string, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.ID)
	}
	return out
}

func TestQuery_Apply(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"zero value newest first, stable on ties", Query{}, []string{"2", "3", "4", "1"}},
		{"created asc", Query{SortBy: SortCreatedAt, Order: OrderAsc}, []string{"1", "3", "4", "2"}},
		{"title ignores case", Query{SortBy: SortTitle, Order: OrderAsc}, []string{"2", "1", "4", "3"}},
		{"duration desc", Query{SortBy: SortDuration, Order: OrderDesc}, []string{"1", "3", "2", "4"}},
		{"status asc", Query{SortBy: SortStatus, Order: OrderAsc}, []string{"3", "1", "2", "4"}},
		{"search matches course case-insensitively", Query{Search: "MATH", Order: OrderAsc}, []string{"3", "2"}},
		{"search matches title", Query{Search: "elt"}, []string{"4"}},
		{"status filter", Query{Status: domain.StatusDraft}, []string{"2", "4"}},
		{"search and status", Query{Search: "math", Status: domain.StatusDraft}, []string{"2"}},
		{"no match", Query{Search: "chemistry"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.query.Apply(librarySessions())))
		})
	}
}

func TestQuery_ApplyDoesNotMutateInput(t *testing.T) {
	in := librarySessions()

	_ = Query{SortBy: SortTitle, Order: OrderAsc}.Apply(in)

	assert.Equal(t, librarySessions(), in)
}

func TestParseSortField(t *testing.T) {
	f, err := ParseSortField("duration_ms")
	require.NoError(t, err)
	assert.Equal(t, SortDuration, f)

	_, err = ParseSortField("size")
	assert.Error(t, err)
}
