package storage

import "time"

// SessionModel is the GORM model for sessions table
type SessionModel struct {
	AudioPath      *string   `gorm:"default:null"`
	Course         string    `gorm:"not null;default:''"`
	CreatedAt      int64     `gorm:"not null;autoCreateTime:false;index:idx_created_at"`
	DurationMs     int64     `gorm:"not null;default:0"`
	ID             string    `gorm:"primaryKey"`
	NotesPath      *string   `gorm:"default:null"`
	Status         string    `gorm:"not null;default:'draft';index:idx_status"`
	Title          string    `gorm:"not null"`
	TranscriptPath *string   `gorm:"default:null"`
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }
