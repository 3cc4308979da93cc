package middleware

import (
	"sync"
	"time"
)

// Limiter is satisfied by both the in-memory and the redis-backed limiter.
type Limiter interface {
	Allow(key string, limit int, window time.Duration) bool
}

// RateLimiter is a fixed-window in-process limiter, used when no redis
// address is configured.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count int
	until time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{windows: make(map[string]*window)}
}

func (r *RateLimiter) Allow(key string, limit int, windowSize time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	win, ok := r.windows[key]
	if !ok || now.After(win.until) {
		r.windows[key] = &window{count: 1, until: now.Add(windowSize)}
		return true
	}
	if win.count >= limit {
		return false
	}
	win.count++
	return true
}
