package domain

import (
	"fmt"
	"math"
)

// TranscriptLine is one timestamped utterance in a session transcript
type TranscriptLine struct {
	Speaker string `json:"speaker"`
	TMs     uint64 `json:"t_ms"`
	Text    string `json:"text"`
}

// Validate rejects offsets that do not fit a session duration
func (l TranscriptLine) Validate() error {
	if l.TMs > math.MaxInt64 {
		return fmt.Errorf("t_ms %d: %w", l.TMs, ErrInvalidTMs)
	}
	return nil
}

// TranscriptLineView is the display form of a transcript line
type TranscriptLineView struct {
	ID           string
	IsBookmarked bool
	Speaker      string
	Text         string
	Timestamp    uint64 // whole seconds
}

// View converts a line at position index into its display form
func (l TranscriptLine) View(index int) TranscriptLineView {
	return TranscriptLineView{
		ID:        fmt.Sprintf("line-%d-%d", l.TMs, index),
		Speaker:   l.Speaker,
		Text:      l.Text,
		Timestamp: l.TMs / 1000,
	}
}

// FormatTimestamp renders seconds as mm:ss, or h:mm:ss past the hour
func FormatTimestamp(seconds uint64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatDuration renders a millisecond duration the same way as FormatTimestamp
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return FormatTimestamp(uint64(ms) / 1000)
}
