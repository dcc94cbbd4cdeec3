package http

import (
	"testing"
	"time"
)

func TestIPRateLimiterPerIP(t *testing.T) {
	l := NewIPRateLimiter(60, 2)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	if !l.Allow("10.0.0.1") || !l.Allow("10.0.0.1") {
		t.Fatal("burst of 2 should be allowed")
	}
	if l.Allow("10.0.0.1") {
		t.Error("third request within the same instant should be rejected")
	}
	if !l.Allow("10.0.0.2") {
		t.Error("another IP has its own bucket")
	}

	now = now.Add(time.Second)
	if !l.Allow("10.0.0.1") {
		t.Error("one token should refill after a second at 60/min")
	}
}

func TestIPRateLimiterSweep(t *testing.T) {
	l := NewIPRateLimiter(5, 1)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow("10.0.0.1")
	now = now.Add(time.Minute)
	l.Allow("10.0.0.2")

	now = now.Add(visitorIdleTTL)
	if removed := l.Sweep(); removed != 1 {
		t.Fatalf("Sweep() removed %d, want 1", removed)
	}
	if _, ok := l.visitors["10.0.0.2"]; !ok {
		t.Error("recent visitor was swept")
	}
}
