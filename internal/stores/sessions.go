package stores

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/polka/internal/domain"
	"github.com/renato0307/polka/internal/logging"
	"github.com/renato0307/polka/internal/ports"
)

// Fallback messages used when a failure carries no text
const (
	MsgCreateFailed = "Failed to create session"
	MsgDeleteFailed = "Failed to delete session"
	MsgLoadFailed   = "Failed to load sessions"
	MsgUpdateFailed = "Failed to update session status"
)

// bulkConcurrency bounds in-flight remote calls for bulk actions
const bulkConcurrency = 4

// SessionsState is a snapshot of the sessions store
type SessionsState struct {
	Error    string
	Loading  bool
	Sessions []domain.Session
}

// SessionsStore is the single source of truth for the session list.
//
// Remote calls run outside the lock; each result is applied under the lock
// in one step, so readers never see a half-applied action.
type SessionsStore struct {
	client ports.SessionClient

	mu          sync.Mutex
	state       SessionsState
	subscribers map[chan struct{}]struct{}
}

// NewSessionsStore creates an empty store backed by client
func NewSessionsStore(client ports.SessionClient) *SessionsStore {
	return &SessionsStore{
		client:      client,
		state:       SessionsState{Sessions: []domain.Session{}},
		subscribers: make(map[chan struct{}]struct{}),
	}
}

// State returns a deep copy of the current state
func (s *SessionsStore) State() SessionsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionsState{
		Error:    s.state.Error,
		Loading:  s.state.Loading,
		Sessions: cloneSessions(s.state.Sessions),
	}
}

// Find returns a copy of the session with id
func (s *SessionsStore) Find(id string) (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, session := range s.state.Sessions {
		if session.ID == id {
			return session.Clone(), true
		}
	}
	return domain.Session{}, false
}

// Active returns the sessions that are not archived, in store order
func (s *SessionsStore) Active() []domain.Session {
	return s.filter(func(session domain.Session) bool { return !session.IsArchived() })
}

// Archived returns the archived sessions, in store order
func (s *SessionsStore) Archived() []domain.Session {
	return s.filter(domain.Session.IsArchived)
}

func (s *SessionsStore) filter(keep func(domain.Session) bool) []domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Session{}
	for _, session := range s.state.Sessions {
		if keep(session) {
			out = append(out, session.Clone())
		}
	}
	return out
}

// Subscribe returns a channel that receives a value after every state change.
// Notifications coalesce. The returned func unsubscribes and closes the channel.
func (s *SessionsStore) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, ch)
			close(ch)
			s.mu.Unlock()
		})
	}
}

// mutate applies fn under the lock and notifies subscribers
func (s *SessionsStore) mutate(fn func(*SessionsState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	for ch := range s.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Load replaces the session list with the remote one.
// On failure the previous list is kept and Error is set.
func (s *SessionsStore) Load(ctx context.Context) {
	s.mutate(func(st *SessionsState) {
		st.Loading = true
		st.Error = ""
	})

	sessions, err := s.client.ListSessions(ctx)
	if err != nil {
		logging.Logger.Error("Failed to load sessions", "error", err)
		s.mutate(func(st *SessionsState) {
			st.Error = errorMessage(err, MsgLoadFailed)
			st.Loading = false
		})
		return
	}

	logging.Logger.Debug("Sessions loaded", "count", len(sessions))
	s.mutate(func(st *SessionsState) {
		st.Sessions = cloneSessions(sessions)
		st.Loading = false
	})
}

// Create adds a session and prepends it to the list.
// It returns nil on failure; callers must check before using the result.
func (s *SessionsStore) Create(ctx context.Context, req domain.CreateSessionRequest) *domain.Session {
	s.mutate(func(st *SessionsState) {
		st.Loading = true
		st.Error = ""
	})

	session, err := s.client.CreateSession(ctx, req)
	if err == nil && session == nil {
		err = errors.New(MsgCreateFailed)
	}
	if err != nil {
		logging.Logger.Error("Failed to create session", "title", req.Title, "error", err)
		s.mutate(func(st *SessionsState) {
			st.Error = errorMessage(err, MsgCreateFailed)
			st.Loading = false
		})
		return nil
	}

	created := session.Clone()
	s.mutate(func(st *SessionsState) {
		st.Sessions = append([]domain.Session{created.Clone()}, st.Sessions...)
		st.Loading = false
	})
	logging.Logger.Info("Session created", "session_id", created.ID)
	return &created
}

// UpdateStatus changes a session's status once the remote accepts it.
// The error is recorded and also returned.
func (s *SessionsStore) UpdateStatus(ctx context.Context, req domain.UpdateSessionStatusRequest) error {
	s.mutate(func(st *SessionsState) { st.Error = "" })

	if err := s.client.UpdateSessionStatus(ctx, req); err != nil {
		logging.Logger.Error("Failed to update session status", "session_id", req.ID, "status", req.Status, "error", err)
		s.mutate(func(st *SessionsState) { st.Error = errorMessage(err, MsgUpdateFailed) })
		return err
	}

	s.mutate(func(st *SessionsState) {
		for i := range st.Sessions {
			if st.Sessions[i].ID == req.ID {
				st.Sessions[i].Status = req.Status
			}
		}
	})
	return nil
}

// Delete removes a session once the remote accepts it. Loading is never touched.
// The error is recorded and also returned.
func (s *SessionsStore) Delete(ctx context.Context, id string) error {
	s.mutate(func(st *SessionsState) { st.Error = "" })

	if err := s.client.DeleteSession(ctx, id); err != nil {
		logging.Logger.Error("Failed to delete session", "session_id", id, "error", err)
		s.mutate(func(st *SessionsState) { st.Error = errorMessage(err, MsgDeleteFailed) })
		return err
	}

	s.mutate(func(st *SessionsState) {
		kept := st.Sessions[:0:0]
		for _, session := range st.Sessions {
			if session.ID != id {
				kept = append(kept, session)
			}
		}
		st.Sessions = kept
	})
	return nil
}

// ClearError clears the error without other side effects
func (s *SessionsStore) ClearError() {
	s.mutate(func(st *SessionsState) { st.Error = "" })
}

// BulkUpdateStatus runs UpdateStatus for every id and joins the failures
func (s *SessionsStore) BulkUpdateStatus(ctx context.Context, ids []string, status domain.SessionStatus) error {
	return s.bulk(ids, func(id string) error {
		return s.UpdateStatus(ctx, domain.UpdateSessionStatusRequest{ID: id, Status: status})
	})
}

// BulkDelete runs Delete for every id and joins the failures
func (s *SessionsStore) BulkDelete(ctx context.Context, ids []string) error {
	return s.bulk(ids, func(id string) error {
		return s.Delete(ctx, id)
	})
}

func (s *SessionsStore) bulk(ids []string, action func(id string) error) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	g.SetLimit(bulkConcurrency)

	for _, id := range ids {
		g.Go(func() error {
			if err := action(id); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

func errorMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}

func cloneSessions(in []domain.Session) []domain.Session {
	out := make([]domain.Session, len(in))
	for i, session := range in {
		out[i] = session.Clone()
	}
	return out
}
