package utils

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// UUID Generation
func GenerateUUID() string {
	return uuid.New().String()
}

// RateLimiter is a small in-process fixed-window limiter, used for
// per-connection throttling on the live feed where a Redis round trip
// per frame would be overkill.
type RateLimiter struct {
	limit  int
	window time.Duration

	mu          sync.Mutex
	count       int
	windowStart time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:       limit,
		window:      window,
		windowStart: time.Now(),
	}
}

// Allow reports whether another event fits in the current window.
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.windowStart) >= rl.window {
		rl.windowStart = now
		rl.count = 0
	}

	if rl.count >= rl.limit {
		return false
	}
	rl.count++
	return true
}
