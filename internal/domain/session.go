package domain

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SessionStatus represents the lifecycle state of a recording session
type SessionStatus string

const (
	StatusArchived  SessionStatus = "archived"
	StatusComplete  SessionStatus = "complete"
	StatusDraft     SessionStatus = "draft"
	StatusRecording SessionStatus = "recording"
)

// Status symbols (Unicode)
const (
	SymbolArchived  = "▪"
	SymbolComplete  = "✓"
	SymbolDraft     = "○"
	SymbolRecording = "●"
)

// AllStatuses lists the statuses in lifecycle order
var AllStatuses = []SessionStatus{
	StatusDraft,
	StatusRecording,
	StatusComplete,
	StatusArchived,
}

// ParseSessionStatus accepts exactly the four lowercase status values
func ParseSessionStatus(s string) (SessionStatus, error) {
	switch SessionStatus(s) {
	case StatusDraft, StatusRecording, StatusComplete, StatusArchived:
		return SessionStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Symbol returns the unicode marker shown next to a session
func (s SessionStatus) Symbol() string {
	switch s {
	case StatusRecording:
		return SymbolRecording
	case StatusComplete:
		return SymbolComplete
	case StatusArchived:
		return SymbolArchived
	default:
		return SymbolDraft
	}
}

// Valid reports whether s is one of the known statuses
func (s SessionStatus) Valid() bool {
	_, err := ParseSessionStatus(string(s))
	return err == nil
}

// Session represents a recorded lecture or meeting (domain entity)
type Session struct {
	AudioPath      *string       `json:"audio_path"`
	Course         string        `json:"course"`
	CreatedAt      int64         `json:"created_at"`
	DurationMs     int64         `json:"duration_ms"`
	ID             string        `json:"id"`
	NotesPath      *string       `json:"notes_path"`
	Status         SessionStatus `json:"status"`
	Title          string        `json:"title"`
	TranscriptPath *string       `json:"transcript_path"`
}

// Clone returns a copy that shares no pointers with s
func (s Session) Clone() Session {
	s.AudioPath = cloneString(s.AudioPath)
	s.NotesPath = cloneString(s.NotesPath)
	s.TranscriptPath = cloneString(s.TranscriptPath)
	return s
}

// IsArchived reports whether the session lives in the archive view
func (s Session) IsArchived() bool {
	return s.Status == StatusArchived
}

// DisplayTitle returns the title, prefixed with the course when one is set
func (s Session) DisplayTitle() string {
	if s.Course == "" {
		return s.Title
	}
	return s.Course + " · " + s.Title
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// CreateSessionRequest carries the user input for a new session
type CreateSessionRequest struct {
	Course string `json:"course"`
	Title  string `json:"title"`
}

// Normalize trims surrounding whitespace from every field
func (r *CreateSessionRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Course = strings.TrimSpace(r.Course)
}

// Validate checks the request after normalization
func (r CreateSessionRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrEmptyTitle
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 200)),
		validation.Field(&r.Course, validation.Length(0, 100)),
	)
}

// UpdateSessionStatusRequest changes the status of one session
type UpdateSessionStatusRequest struct {
	ID     string        `json:"id"`
	Status SessionStatus `json:"status"`
}

// Validate checks that the id is present and the status is known
func (r UpdateSessionStatusRequest) Validate() error {
	if r.Status != "" && !r.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, r.Status)
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.Status, validation.Required),
	)
}
