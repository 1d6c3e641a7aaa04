// Package autosave persists a frequently changing value with a debounce,
// at most one save in flight, and a final flush on close.
package autosave

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/renato0307/polka/internal/logging"
)

// DefaultDelay is the quiet period before a change is saved
const DefaultDelay = time.Second

// SaveFunc persists one value
type SaveFunc[T any] func(ctx context.Context, value T) error

// Options configure a Saver
type Options struct {
	Delay       time.Duration
	OnError     func(error) // called after a failed save, in addition to logging
	SaveOnClose bool
	SaveOnHide  bool
}

// DefaultOptions returns a one second delay with both flush triggers enabled
func DefaultOptions() Options {
	return Options{
		Delay:       DefaultDelay,
		SaveOnClose: true,
		SaveOnHide:  true,
	}
}

// Saver debounces saves of a value of type T.
//
// Update records a new value and re-arms the timer. When the timer fires the
// latest value is saved. A save requested while another runs marks it pending;
// the running save then makes one more attempt with the latest value.
type Saver[T any] struct {
	opts Options
	save SaveFunc[T]

	mu       sync.Mutex
	closed   bool
	current  T
	pending  bool
	saving   bool
	snapshot T
	timer    *time.Timer
	inflight sync.WaitGroup
}

// New creates a Saver whose last-persisted value is initial
func New[T any](save SaveFunc[T], initial T, opts Options) *Saver[T] {
	if opts.Delay < 0 {
		opts.Delay = 0
	}
	return &Saver[T]{
		current:  initial,
		opts:     opts,
		save:     save,
		snapshot: initial,
	}
}

// Value returns the latest value passed to Update
func (s *Saver[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update records v and schedules a save after the quiet period.
// Returning to the last-persisted value cancels the scheduled save.
func (s *Saver[T]) Update(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.current = v
	s.stopTimerLocked()

	if reflect.DeepEqual(v, s.snapshot) {
		return
	}
	s.timer = time.AfterFunc(s.opts.Delay, s.fire)
}

// HasUnsavedChanges reports whether the latest value differs from the last persisted one
func (s *Saver[T]) HasUnsavedChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !reflect.DeepEqual(s.current, s.snapshot)
}

// IsSaving reports whether a save is running
func (s *Saver[T]) IsSaving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving
}

// SaveImmediately cancels the timer and saves the latest value on the caller's
// goroutine. If a save is already running it is marked pending and nil is returned.
func (s *Saver[T]) SaveImmediately(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.stopTimerLocked()
	s.mu.Unlock()

	return s.perform(ctx)
}

// Hide flushes unsaved changes when the view loses visibility
func (s *Saver[T]) Hide(ctx context.Context) error {
	if !s.opts.SaveOnHide || !s.HasUnsavedChanges() {
		return nil
	}
	return s.SaveImmediately(ctx)
}

// Close stops the saver. It waits for a running save and then, if enabled,
// saves any remaining change. Later calls to Update are ignored.
func (s *Saver[T]) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.stopTimerLocked()
	s.mu.Unlock()

	s.inflight.Wait()

	s.mu.Lock()
	value := s.current
	unsaved := !reflect.DeepEqual(value, s.snapshot)
	s.mu.Unlock()

	if !s.opts.SaveOnClose || !unsaved {
		return nil
	}

	logging.Logger.Debug("Saving unsaved changes on close")
	if err := s.save(ctx, value); err != nil {
		s.report(err)
		return err
	}
	s.mu.Lock()
	s.snapshot = value
	s.mu.Unlock()
	return nil
}

func (s *Saver[T]) fire() {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}
	_ = s.perform(context.Background())
}

// perform runs one save plus the pending chain behind it. Once Close has
// started it does nothing; Close makes the final save itself.
func (s *Saver[T]) perform(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	if s.saving {
		s.pending = true
		s.mu.Unlock()
		return nil
	}
	value := s.current
	if reflect.DeepEqual(value, s.snapshot) {
		s.mu.Unlock()
		return nil
	}
	s.saving = true
	s.inflight.Add(1)
	s.mu.Unlock()

	defer s.inflight.Done()

	for {
		err := s.save(ctx, value)
		if err != nil {
			s.report(err)
		}

		s.mu.Lock()
		if err == nil {
			s.snapshot = value
		}
		retry := s.pending && !reflect.DeepEqual(s.current, s.snapshot)
		s.pending = false
		if !retry {
			s.saving = false
			s.mu.Unlock()
			return err
		}
		value = s.current
		s.mu.Unlock()
	}
}

func (s *Saver[T]) report(err error) {
	logging.Logger.Error("Auto-save failed", "error", err)
	if s.opts.OnError != nil {
		s.opts.OnError(err)
	}
}

func (s *Saver[T]) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
