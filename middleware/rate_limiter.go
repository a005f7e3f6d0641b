package middleware

import (
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"school-platform/pkg/apperrors"
)

// RateLimiterConfig holds the configuration for rate limiting
type RateLimiterConfig struct {
	MaxRequests   int           // Maximum number of requests allowed per window
	Window        time.Duration // Time window for rate limiting
	BlockDuration time.Duration // Duration to block the IP after exceeding limits
}

type ipCounter struct {
	count        int
	windowStart  time.Time
	blockedUntil time.Time
}

// RateLimiterMiddleware limits requests per client IP. State lives in
// process memory, matching the storage fallback model: serverless
// containers and the long-lived server each enforce it per process.
func RateLimiterMiddleware(cfg RateLimiterConfig) echo.MiddlewareFunc {
	var mu sync.Mutex
	counters := make(map[string]*ipCounter)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			now := time.Now()

			mu.Lock()
			entry, ok := counters[ip]
			if !ok {
				entry = &ipCounter{windowStart: now}
				counters[ip] = entry
			}

			if entry.blockedUntil.After(now) {
				mu.Unlock()
				return apperrors.NewTooManyRequests(
					apperrors.ErrCodeLoginLimitExceeded,
					"Too many requests from this IP, please try again later",
				)
			}

			if now.Sub(entry.windowStart) > cfg.Window {
				entry.count = 0
				entry.windowStart = now
			}

			entry.count++
			if entry.count > cfg.MaxRequests {
				entry.blockedUntil = now.Add(cfg.BlockDuration)
				mu.Unlock()
				return apperrors.NewTooManyRequests(
					apperrors.ErrCodeLoginLimitExceeded,
					"Too many requests from this IP, please try again later",
				)
			}
			mu.Unlock()

			return next(c)
		}
	}
}
