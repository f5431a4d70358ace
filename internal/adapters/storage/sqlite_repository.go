package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/logging"
	"github.com/hyperfocus/hyperfocus/internal/ports"
)

// SQLiteRepository implements ports.LocalRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.LocalRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the hyperfocus logger for GORM
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

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("HYPERFOCUS_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the local state database
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
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

	// WAL lets the TUI and one-shot CLI commands share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&TargetDurationModel{}, &CredentialModel{}, &PreferenceModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Local store opened", "path", dbPath)

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

// GetTargetDuration implements TargetDurationStore.GetTargetDuration.
// A session without an annotation returns nil, nil.
func (r *SQLiteRepository) GetTargetDuration(ctx context.Context, sessionID int) (*int, error) {
	var model TargetDurationModel
	found := true

	err := withRetry(func() error {
		err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&model).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			found = false
			return nil
		}
		return err
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to read target duration for session %d: %w", sessionID, err)
	}
	if !found {
		return nil, nil
	}

	minutes := model.Minutes
	return &minutes, nil
}

// SetTargetDuration implements TargetDurationStore.SetTargetDuration
func (r *SQLiteRepository) SetTargetDuration(ctx context.Context, sessionID int, minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: target duration must be positive", domain.ErrValidation)
	}

	model := TargetDurationModel{SessionID: sessionID, Minutes: minutes}
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"minutes", "updated_at"}),
		}).Create(&model).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to save target duration for session %d: %w", sessionID, err)
	}

	logging.Logger.Debug("Target duration saved", "session_id", sessionID, "minutes", minutes)
	return nil
}

// ClearTargetDuration implements TargetDurationStore.ClearTargetDuration.
// Clearing a missing annotation is not an error.
func (r *SQLiteRepository) ClearTargetDuration(ctx context.Context, sessionID int) error {
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&TargetDurationModel{}).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to clear target duration for session %d: %w", sessionID, err)
	}
	return nil
}

// GetCredential implements CredentialStore.GetCredential
func (r *SQLiteRepository) GetCredential(ctx context.Context) (*domain.Credential, error) {
	var model CredentialModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", credentialRowID).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to read credential: %w", err)
	}

	cred := credentialModelToDomain(model)
	return &cred, nil
}

// SaveCredential implements CredentialStore.SaveCredential
func (r *SQLiteRepository) SaveCredential(ctx context.Context, cred domain.Credential) error {
	if cred.Token.AccessToken == "" {
		return fmt.Errorf("%w: empty access token", domain.ErrValidation)
	}

	model := domainToCredentialModel(cred)
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"access_token", "email", "token_type", "updated_at"}),
		}).Create(&model).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

// ClearCredential implements CredentialStore.ClearCredential
func (r *SQLiteRepository) ClearCredential(ctx context.Context) error {
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", credentialRowID).Delete(&CredentialModel{}).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}

// GetPreference implements PreferenceStore.GetPreference
func (r *SQLiteRepository) GetPreference(ctx context.Context, key string) (string, bool, error) {
	var model PreferenceModel
	found := true

	err := withRetry(func() error {
		err := r.db.WithContext(ctx).Where("pref_key = ?", key).First(&model).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			found = false
			return nil
		}
		return err
	}, 3)
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %s: %w", key, err)
	}

	return model.Value, found, nil
}

// SetPreference implements PreferenceStore.SetPreference
func (r *SQLiteRepository) SetPreference(ctx context.Context, key, value string) error {
	model := PreferenceModel{Key: key, Value: value}
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pref_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&model).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to save preference %s: %w", key, err)
	}
	return nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
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
