package middleware

import (
	"net/http"
	"strconv"
	"time"

	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/persistence"
	"github.com/gin-gonic/gin"
)

// RateLimit counts requests per client address in a fixed window held by the
// shared counter store, so the limit spans every instance. When the store
// fails the request is let through and the failure logged.
func RateLimit(
	store persistence.RateLimitRepository,
	scope string,
	limit int64,
	window time.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()
		count, resetAt, err := store.Hit(c.Request.Context(), key, window)
		if err != nil {
			logger.Error("Rate limit store unavailable", map[string]any{
				"scope": scope,
				"error": err.Error(),
			})
			c.Next()
			return
		}

		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > limit {
			retryAfter := timeProvider.Until(resetAt).Std()
			seconds := int64(retryAfter / time.Second)
			if retryAfter%time.Second != 0 {
				seconds++
			}
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.FormatInt(seconds, 10))
			logger.Warn("Rate limit exceeded", map[string]any{
				"scope":     scope,
				"client_ip": c.ClientIP(),
				"count":     count,
			})
			abort(c, http.StatusTooManyRequests, errs.ErrRateLimited, "Too many requests")
			return
		}
		c.Next()
	}
}
