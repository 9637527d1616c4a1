package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// counterStore is the slice of Redis the limiter needs. Tests swap in an
// in-memory implementation.
type counterStore interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, window time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)
}

type redisCounter struct {
	client *redis.Client
}

func (r redisCounter) Incr(ctx context.Context, key string) (int64, error) {
	return r.client.Incr(ctx, key).Result()
}

func (r redisCounter) Expire(ctx context.Context, key string, window time.Duration) error {
	return r.client.Expire(ctx, key, window).Err()
}

func (r redisCounter) TTL(ctx context.Context, key string) (time.Duration, error) {
	return r.client.TTL(ctx, key).Result()
}

type RateLimiter struct {
	store counterStore
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{store: redisCounter{client: client}}
}

// Limit caps requests per client IP within the window. Redis being down
// must never take the API down with it, so counter errors let the
// request through.
func (rl *RateLimiter) Limit(keySuffix string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:%s:%s", keySuffix, c.ClientIP())

		count, err := rl.store.Incr(c, key)
		if err != nil {
			c.Next()
			return
		}

		if count == 1 {
			rl.store.Expire(c, key, window)
		}

		if count > int64(limit) {
			ttl, _ := rl.store.TTL(c, key)

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests",
				"retry_after": fmt.Sprintf("%.0f seconds", ttl.Seconds()),
			})
			return
		}
		c.Next()
	}
}
