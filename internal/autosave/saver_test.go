package autosave

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a SaveFunc that records every value it is given
type recorder struct {
	mu    sync.Mutex
	err   error
	gate  chan struct{}
	saved []string
}

func (r *recorder) save(ctx context.Context, v string) error {
	if r.gate != nil {
		<-r.gate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, v)
	return r.err
}

func (r *recorder) values() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.saved...)
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Delay = 20 * time.Millisecond
	return opts
}

func TestSaver_DebouncesToLatestValue(t *testing.T) {
	rec := &recorder{}
	s := New(rec.save, "", testOptions())

	s.Update("a")
	s.Update("ab")
	s.Update("abc")

	require.Eventually(t, func() bool { return len(rec.values()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []string{"abc"}, rec.values())
	assert.False(t, s.HasUnsavedChanges())
}

func TestSaver_ReturningToSavedValueCancels(t *testing.T) {
	rec := &recorder{}
	s := New(rec.save, "same", testOptions())

	s.Update("changed")
	assert.True(t, s.HasUnsavedChanges())
	s.Update("same")

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, rec.values())
	assert.False(t, s.HasUnsavedChanges())
}

func TestSaver_SaveImmediatelyCancelsTimer(t *testing.T) {
	rec := &recorder{}
	s := New(rec.save, "", testOptions())

	s.Update("now")
	require.NoError(t, s.SaveImmediately(context.Background()))

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, []string{"now"}, rec.values())
}

func TestSaver_SaveImmediatelyWithoutChangesIsNoop(t *testing.T) {
	rec := &recorder{}
	s := New(rec.save, "x", testOptions())

	require.NoError(t, s.SaveImmediately(context.Background()))

	assert.Empty(t, rec.values())
}

func TestSaver_PendingSaveRunsAfterInFlight(t *testing.T) {
	rec := &recorder{gate: make(chan struct{})}
	s := New(rec.save, "", testOptions())

	done := make(chan error, 1)
	s.Update("first")
	go func() { done <- s.SaveImmediately(context.Background()) }()
	require.Eventually(t, s.IsSaving, time.Second, time.Millisecond)

	s.Update("second")
	require.NoError(t, s.SaveImmediately(context.Background()), "a save in flight marks the request pending")

	close(rec.gate)
	require.NoError(t, <-done)

	assert.Equal(t, []string{"first", "second"}, rec.values())
	assert.False(t, s.IsSaving())
	assert.False(t, s.HasUnsavedChanges())
}

func TestSaver_ErrorIsReportedAndChangesKept(t *testing.T) {
	rec := &recorder{err: errors.New("disk full")}
	var reported []error
	var mu sync.Mutex
	opts := testOptions()
	opts.OnError = func(err error) {
		mu.Lock()
		reported = append(reported, err)
		mu.Unlock()
	}
	s := New(rec.save, "", opts)

	s.Update("v")
	err := s.SaveImmediately(context.Background())

	assert.EqualError(t, err, "disk full")
	assert.True(t, s.HasUnsavedChanges())
	mu.Lock()
	assert.Len(t, reported, 1)
	mu.Unlock()
}

func TestSaver_CloseFlushesChanges(t *testing.T) {
	rec := &recorder{}
	opts := testOptions()
	opts.Delay = time.Hour
	s := New(rec.save, "", opts)

	s.Update("unsaved")
	require.NoError(t, s.Close(context.Background()))
	s.Update("ignored")

	assert.Equal(t, []string{"unsaved"}, rec.values())
	assert.Equal(t, "unsaved", s.Value())
	assert.NoError(t, s.Close(context.Background()))
}

func TestSaver_CloseWaitsForInFlightSave(t *testing.T) {
	rec := &recorder{gate: make(chan struct{})}
	opts := testOptions()
	opts.Delay = time.Hour
	s := New(rec.save, "", opts)

	s.Update("first")
	go func() { _ = s.SaveImmediately(context.Background()) }()
	require.Eventually(t, s.IsSaving, time.Second, time.Millisecond)

	s.Update("second")
	closed := make(chan error, 1)
	go func() { closed <- s.Close(context.Background()) }()

	select {
	case <-closed:
		t.Fatal("Close returned while a save was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(rec.gate)
	select {
	case err := <-closed:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Close did not return after the save finished")
	}

	assert.Equal(t, []string{"first", "second"}, rec.values())
	assert.False(t, s.HasUnsavedChanges())
}

func TestSaver_SaveStartingAfterCloseIsSkipped(t *testing.T) {
	rec := &recorder{}
	opts := testOptions()
	opts.Delay = time.Hour
	opts.SaveOnClose = false
	s := New(rec.save, "", opts)

	s.Update("late")
	require.NoError(t, s.Close(context.Background()))

	// a timer or SaveImmediately caller that passed its closed check just
	// before Close lands here
	require.NoError(t, s.perform(context.Background()))

	assert.Empty(t, rec.values())
	assert.False(t, s.IsSaving())
}

func TestSaver_CloseWithoutSaveOnClose(t *testing.T) {
	rec := &recorder{}
	opts := testOptions()
	opts.Delay = time.Hour
	opts.SaveOnClose = false
	s := New(rec.save, "", opts)

	s.Update("dropped")
	require.NoError(t, s.Close(context.Background()))

	assert.Empty(t, rec.values())
}

func TestSaver_Hide(t *testing.T) {
	tests := []struct {
		name       string
		saveOnHide bool
		update     bool
		want       []string
	}{
		{"flushes unsaved changes", true, true, []string{"draft"}},
		{"disabled", false, true, nil},
		{"nothing to save", true, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			opts := testOptions()
			opts.Delay = time.Hour
			opts.SaveOnHide = tt.saveOnHide
			s := New(rec.save, "", opts)
			if tt.update {
				s.Update("draft")
			}

			require.NoError(t, s.Hide(context.Background()))

			assert.Equal(t, tt.want, rec.values())
		})
	}
}
