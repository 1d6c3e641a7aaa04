package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/polka/internal/domain"
	"github.com/renato0307/polka/internal/logging"
	"github.com/renato0307/polka/internal/ports"
)

const maxRetries = 3

// SQLiteRepository implements ports.SessionRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SessionRepository = (*SQLiteRepository)(nil)

// gormLogger routes GORM output to the polka logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("POLKA_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if strings.HasPrefix(dbPath, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the CLI read while `polka serve` writes
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&SessionModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate Session schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements SessionReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	var model SessionModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
		}
		return nil, err
	}

	session := sessionModelToDomain(model)
	return &session, nil
}

// List implements SessionReader.List, newest first
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Session, error) {
	var models []SessionModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]domain.Session, 0, len(models))
	for _, m := range models {
		sessions = append(sessions, sessionModelToDomain(m))
	}
	return sessions, nil
}

// Add implements SessionWriter.Add
func (r *SQLiteRepository) Add(ctx context.Context, session domain.Session) error {
	model := domainToSessionModel(session)
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to add session: %w", err)
		}
		return nil
	}, maxRetries)
}

// Delete implements SessionWriter.Delete
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&SessionModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
		}
		return nil
	}, maxRetries)
}

// UpdateStatus implements SessionMetadataUpdater.UpdateStatus
func (r *SQLiteRepository) UpdateStatus(ctx context.Context, id string, status domain.SessionStatus) error {
	return r.updateColumn(ctx, id, "status", string(status))
}

// SetNotesPath implements SessionMetadataUpdater.SetNotesPath
func (r *SQLiteRepository) SetNotesPath(ctx context.Context, id, path string) error {
	return r.updateColumn(ctx, id, "notes_path", path)
}

// SetTranscriptPath implements SessionMetadataUpdater.SetTranscriptPath
func (r *SQLiteRepository) SetTranscriptPath(ctx context.Context, id, path string) error {
	return r.updateColumn(ctx, id, "transcript_path", path)
}

// RaiseDuration implements SessionMetadataUpdater.RaiseDuration.
// The stored duration never decreases.
func (r *SQLiteRepository) RaiseDuration(ctx context.Context, id string, durationMs int64) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var model SessionModel
			if err := tx.Select("id", "duration_ms").Where("id = ?", id).First(&model).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
				}
				return err
			}
			if durationMs <= model.DurationMs {
				return nil
			}
			return tx.Model(&SessionModel{}).Where("id = ?", id).Update("duration_ms", durationMs).Error
		})
	}, maxRetries)
}

func (r *SQLiteRepository) updateColumn(ctx context.Context, id, column string, value any) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&SessionModel{}).Where("id = ?", id).Update(column, value)
		if result.Error != nil {
			return fmt.Errorf("failed to update %s: %w", column, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
		}
		return nil
	}, maxRetries)
}

// withRetry retries fn while SQLite reports the database busy or locked
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}
		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
