package repository

import (
	"context"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// hitCounterSQL increments a fixed-window counter in one statement. A row
// whose window has ended restarts at 1. Supported by PostgreSQL and by
// SQLite 3.35+.
const hitCounterSQL = `
INSERT INTO rate_limit_counters (bucket_key, hits, window_start_ms, expires_at_ms)
VALUES (?, 1, ?, ?)
ON CONFLICT (bucket_key) DO UPDATE SET
	hits = CASE WHEN rate_limit_counters.expires_at_ms <= excluded.window_start_ms
		THEN 1 ELSE rate_limit_counters.hits + 1 END,
	window_start_ms = CASE WHEN rate_limit_counters.expires_at_ms <= excluded.window_start_ms
		THEN excluded.window_start_ms ELSE rate_limit_counters.window_start_ms END,
	expires_at_ms = CASE WHEN rate_limit_counters.expires_at_ms <= excluded.window_start_ms
		THEN excluded.expires_at_ms ELSE rate_limit_counters.expires_at_ms END
RETURNING hits, expires_at_ms`

// RateLimitRepository implements RateLimitRepository interface using GORM
type RateLimitRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRateLimitRepository creates a new RateLimitRepository instance
func NewRateLimitRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *RateLimitRepository {
	return &RateLimitRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Hit counts one request against key inside the current window
func (r *RateLimitRepository) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	if window <= 0 {
		return 0, time.Time{}, errs.NewValidationError("window", "must be positive")
	}

	now := r.timeProvider.Now()
	startMs := now.UnixMilli()
	expiresMs := now.Add(window).UnixMilli()

	var counter model.RateLimitCounter
	err := r.db.WithContext(ctx).Raw(hitCounterSQL, key, startMs, expiresMs).Scan(&counter).Error
	if err != nil {
		if r.errorClassifier.IsLockError(err) {
			return 0, time.Time{}, fmt.Errorf("%w: %s", errs.ErrTransientConflict, err.Error())
		}
		r.logger.Error("Failed to record rate limit hit", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return 0, time.Time{}, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	return counter.Hits, time.UnixMilli(counter.ExpiresAtMs).UTC(), nil
}

// PurgeExpired removes counters whose window ended before cutoff
func (r *RateLimitRepository) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at_ms < ?", cutoff.UnixMilli()).
		Delete(&model.RateLimitCounter{})
	if result.Error != nil {
		r.logger.Error("Failed to purge rate limit counters", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Purged expired rate limit counters", map[string]any{
			"count": result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}
