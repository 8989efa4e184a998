package persistence

import (
	"context"
	"time"
)

// RateLimitRepository is a shared expiring counter store so limits hold
// across every instance of the service
type RateLimitRepository interface {
	// Hit atomically increments the counter for key. A counter whose window
	// has elapsed restarts at 1 with a fresh window.
	Hit(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)

	// PurgeExpired deletes counters whose window ended before cutoff
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
