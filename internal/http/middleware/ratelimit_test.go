package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	limiter := NewRateLimiter()

	for i := 0; i < 3; i++ {
		if !limiter.Allow("apply:job:user", 3, time.Minute) {
			t.Fatalf("request %d: expected allow", i+1)
		}
	}
	if limiter.Allow("apply:job:user", 3, time.Minute) {
		t.Fatal("expected fourth request in the window to be denied")
	}
	if !limiter.Allow("apply:other:user", 3, time.Minute) {
		t.Fatal("expected independent key to be allowed")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	limiter := NewRateLimiter()

	if !limiter.Allow("key", 1, 10*time.Millisecond) {
		t.Fatal("expected first request to be allowed")
	}
	if limiter.Allow("key", 1, 10*time.Millisecond) {
		t.Fatal("expected second request to be denied")
	}
	time.Sleep(20 * time.Millisecond)
	if !limiter.Allow("key", 1, 10*time.Millisecond) {
		t.Fatal("expected request after window expiry to be allowed")
	}
}
