package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Payphone-Digital/content-gateway/config"
	"github.com/Payphone-Digital/content-gateway/internal/constants"
	ctxutil "github.com/Payphone-Digital/content-gateway/pkg/context"
	"github.com/Payphone-Digital/content-gateway/pkg/logger"
	"github.com/gin-gonic/gin"
)

// RateLimiter is a sliding window limiter keyed by client and collection, so
// one busy collection does not starve reads of another.
type RateLimiter struct {
	mu        sync.Mutex
	hits      map[string][]time.Time
	limit     int
	window    time.Duration
	lastSweep time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		hits:   make(map[string][]time.Time),
		limit:  cfg.Request,
		window: time.Duration(cfg.Duration) * time.Second,
	}
}

// Allow records a hit for key at now unless the window is full. It returns
// the hits left in the window and when the oldest counted hit expires.
func (rl *RateLimiter) Allow(key string, now time.Time) (remaining int, reset time.Time, ok bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweep(now)

	hits := prune(rl.hits[key], now.Add(-rl.window))
	if len(hits) >= rl.limit {
		rl.hits[key] = hits
		return 0, hits[0].Add(rl.window), false
	}

	hits = append(hits, now)
	rl.hits[key] = hits
	return rl.limit - len(hits), hits[0].Add(rl.window), true
}

// sweep drops idle keys, at most once per window.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.window {
		return
	}
	rl.lastSweep = now

	cutoff := now.Add(-rl.window)
	for key, hits := range rl.hits {
		if len(hits) == 0 || !hits[len(hits)-1].After(cutoff) {
			delete(rl.hits, key)
		}
	}
}

// prune drops hits at or before cutoff. hits is in ascending order.
func prune(hits []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	return hits[i:]
}

// RateLimit limits content reads per client IP and collection using the
// configured request count and window.
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	limiter := NewRateLimiter(cfg)

	return func(c *gin.Context) {
		key := c.ClientIP()
		if collection := c.Param("collection"); collection != "" {
			key += "|" + collection
		}

		remaining, reset, ok := limiter.Allow(key, time.Now())

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Request))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if !ok {
			ctx := ctxutil.WithCollection(c.Request.Context(), c.Param("collection"))
			logger.WarnWithContext(ctx, "Rate limit exceeded").
				String("client_ip", c.ClientIP()).
				String("path", c.Request.URL.Path).
				Int("max_requests", cfg.Request).
				Int("window_seconds", cfg.Duration).
				Log()

			retryAfter := time.Until(reset).Seconds()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, constants.BuildDomainErrorResponse(
				"RATE_LIMITED", constants.MsgRateLimited, gin.H{"retry_after": retryAfter},
			))
			return
		}

		c.Next()
	}
}
