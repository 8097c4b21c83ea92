package middleware

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"vigia/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Redis     *redis.Client
	Requests  int           // Number of requests allowed
	Window    time.Duration // Time window
	KeyPrefix string        // Redis key prefix
	SkipPaths []string      // Paths to skip rate limiting
}

// RateLimiter limits requests per client IP using a sliding window
// log in Redis. Redis failures fail open: the dashboard stays usable
// when the limiter's backing store is down.
type RateLimiter struct {
	config RateLimitConfig
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyPrefix == "" {
		config.KeyPrefix = "rate_limit"
	}

	return &RateLimiter{config: config}
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		if rl.shouldSkipPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:ip:%s", rl.config.KeyPrefix, c.ClientIP())

		allowed, remaining, resetTime, err := rl.checkRateLimit(c.Request.Context(), key)
		if err != nil {
			logrus.Errorf("Rate limit check failed: %v", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			retryAfter := int(time.Until(resetTime).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			utils.RateLimitResponse(c)
			c.Abort()
			return
		}

		c.Next()
	})
}

// checkRateLimit implements a sliding window log over a Redis sorted set
func (rl *RateLimiter) checkRateLimit(ctx context.Context, key string) (allowed bool, remaining int, resetTime time.Time, err error) {
	now := time.Now()
	window := rl.config.Window

	pipe := rl.config.Redis.Pipeline()

	expiredBefore := now.Add(-window).UnixNano()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", expiredBefore))

	countCmd := pipe.ZCard(ctx, key)

	pipe.ZAdd(ctx, key, &redis.Z{
		Score:  float64(now.UnixNano()),
		Member: fmt.Sprintf("%d", now.UnixNano()),
	})

	pipe.Expire(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := int(countCmd.Val())
	resetTime = now.Add(window)

	if count >= rl.config.Requests {
		return false, 0, resetTime, nil
	}

	remaining = rl.config.Requests - count - 1
	if remaining < 0 {
		remaining = 0
	}

	return true, remaining, resetTime, nil
}

func (rl *RateLimiter) shouldSkipPath(path string) bool {
	for _, skipPath := range rl.config.SkipPaths {
		if strings.HasPrefix(path, skipPath) {
			return true
		}
	}
	return false
}

// RateLimitMiddleware builds an IP rate limiter from the app settings
func RateLimitMiddleware(redisClient *redis.Client, requests, windowMinutes int) gin.HandlerFunc {
	limiter := NewRateLimiter(RateLimitConfig{
		Redis:     redisClient,
		Requests:  requests,
		Window:    time.Duration(windowMinutes) * time.Minute,
		KeyPrefix: "vigia:rate_limit",
		SkipPaths: []string{"/health"},
	})
	return limiter.Middleware()
}
