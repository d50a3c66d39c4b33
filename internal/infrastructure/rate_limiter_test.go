package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterPerKeyBurst(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, 3, time.Minute)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow("user:1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d", i)
	}
	allowed, _ := limiter.Allow("user:1")
	assert.False(t, allowed)

	allowed, _ = limiter.Allow("user:2")
	assert.True(t, allowed, "other keys have their own bucket")

	now = now.Add(time.Second)
	allowed, _ = limiter.Allow("user:1")
	assert.True(t, allowed, "one token refills per second")
}

func TestRateLimiterForgetsIdleKeys(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, 1, time.Minute)
	limiter.now = func() time.Time { return now }

	_, _ = limiter.Allow("a")
	_, _ = limiter.Allow("b")
	assert.Equal(t, 2, limiter.Len())

	now = now.Add(2 * time.Minute)
	_, _ = limiter.Allow("c")
	assert.Equal(t, 1, limiter.Len())
}
