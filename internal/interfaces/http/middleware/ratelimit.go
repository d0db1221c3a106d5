package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/telebill/telebill/internal/shared/errors"
	"github.com/telebill/telebill/internal/shared/logger"
	"github.com/telebill/telebill/internal/shared/utils"
)

const rateLimitTimeout = 500 * time.Millisecond

// windowCounter increments the counter for key and returns the new value.
// ttl applies to a freshly created key.
type windowCounter interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

type redisCounter struct {
	client *redis.Client
}

// Incr sends INCR and EXPIRE in one MULTI so a counter never outlives its window.
func (r *redisCounter) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// RateLimiter is a fixed-window per-IP limiter. Counters live in Redis so all
// instances share them.
type RateLimiter struct {
	counter windowCounter
	name    string
	limit   int
	window  time.Duration
	logger  logger.Interface
}

// NewRateLimiter creates a Redis-backed limiter. A nil client or a
// non-positive limit turns the middleware into a no-op. Windows are whole
// seconds, at least one.
func NewRateLimiter(redisClient *redis.Client, name string, limit int, window time.Duration, log logger.Interface) *RateLimiter {
	window = window.Truncate(time.Second)
	if window < time.Second {
		window = time.Second
	}
	rl := &RateLimiter{name: name, limit: limit, window: window, logger: log}
	if redisClient != nil {
		rl.counter = &redisCounter{client: redisClient}
	}
	return rl
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
// When Redis is unreachable requests are let through.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.counter == nil || rl.limit <= 0 {
			c.Next()
			return
		}

		windowBucket := time.Now().Unix() / int64(rl.window/time.Second)
		key := fmt.Sprintf("ratelimit:%s:%s:%d", rl.name, c.ClientIP(), windowBucket)

		ctx, cancel := context.WithTimeout(c.Request.Context(), rateLimitTimeout)
		defer cancel()

		count, err := rl.counter.Incr(ctx, key, rl.window+time.Second)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "limiter", rl.name, "error", err)
			c.Next()
			return
		}

		if count > int64(rl.limit) {
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError("Too many requests. Please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
