package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Close()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow(1), "request %d should pass", i+1)
	}
	assert.False(t, rl.Allow(1), "fourth request should be dropped")

	// Other users have their own window.
	assert.True(t, rl.Allow(2))
}

func TestRateLimiterWindowSlides(t *testing.T) {
	rl := NewRateLimiter(1, 30*time.Millisecond)
	defer rl.Close()

	assert.True(t, rl.Allow(1))
	assert.False(t, rl.Allow(1))

	time.Sleep(50 * time.Millisecond)
	assert.True(t, rl.Allow(1), "window should have slid past the first request")
}

func TestRateLimiterCloseIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	rl.Close()
	assert.NotPanics(t, rl.Close)
}
