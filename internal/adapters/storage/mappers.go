package storage

import (
	"github.com/renato0307/polka/internal/domain"
	"github.com/renato0307/polka/internal/logging"
)

// sessionModelToDomain converts a SessionModel (GORM) to domain.Session.
// Unknown stored statuses read back as draft.
func sessionModelToDomain(m SessionModel) domain.Session {
	status, err := domain.ParseSessionStatus(m.Status)
	if err != nil {
		logging.Logger.Warn("Unknown session status in database, using draft",
			"session_id", m.ID, "status", m.Status)
		status = domain.StatusDraft
	}

	return domain.Session{
		AudioPath:      m.AudioPath,
		Course:         m.Course,
		CreatedAt:      m.CreatedAt,
		DurationMs:     m.DurationMs,
		ID:             m.ID,
		NotesPath:      m.NotesPath,
		Status:         status,
		Title:          m.Title,
		TranscriptPath: m.TranscriptPath,
	}
}

// domainToSessionModel converts a domain.Session to SessionModel (GORM)
func domainToSessionModel(s domain.Session) SessionModel {
	return SessionModel{
		AudioPath:      s.AudioPath,
		Course:         s.Course,
		CreatedAt:      s.CreatedAt,
		DurationMs:     s.DurationMs,
		ID:             s.ID,
		NotesPath:      s.NotesPath,
		Status:         string(s.Status),
		Title:          s.Title,
		TranscriptPath: s.TranscriptPath,
	}
}
