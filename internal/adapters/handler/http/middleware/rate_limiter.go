package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/kanso-fit/internal/metrics"
)

const rateLimitPrefix = "kanso_fit:rate_limit:"

// RateLimiterMiddleware allows limit requests per client IP in each fixed
// window. When Redis cannot be reached every request is let through.
func RateLimiterMiddleware(rdb *redis.Client, limit int, window time.Duration, m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := rateLimitPrefix + c.ClientIP()

		var incr *redis.IntCmd
		var ttl *redis.DurationCmd
		_, err := rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, key)
			ttl = pipe.TTL(ctx, key)
			return nil
		})
		if err != nil {
			log.Warnf("[RATE] redis unavailable, request not limited: %v", err)
			c.Next()
			return
		}

		count := incr.Val()
		remaining := ttl.Val()
		if remaining <= 0 {
			// fresh key, or a key left without expiry by an earlier failure
			if err := rdb.Expire(ctx, key, window).Err(); err != nil {
				log.Warnf("[RATE] could not set window on %s: %v", key, err)
				rdb.Del(ctx, key)
				c.Next()
				return
			}
			remaining = window
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", max(0, int64(limit)-count)))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(remaining).Unix()))

		if count > int64(limit) {
			if m != nil {
				m.CounterRateLimited.Inc()
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "too many requests, slow down",
				"retry_in_s": int(remaining.Seconds()),
			})
			return
		}

		c.Next()
	}
}
