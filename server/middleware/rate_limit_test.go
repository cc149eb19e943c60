package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiterAllowsBurst(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: rate.Limit(1), Burst: 3})

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("client-a"), "burst request %d should pass", i)
	}
	assert.False(t, rl.Allow("client-a"), "request beyond burst should be rejected")
}

func TestRateLimiterIsolatesKeys(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: rate.Limit(1), Burst: 1})

	assert.True(t, rl.Allow("client-a"))
	assert.False(t, rl.Allow("client-a"))
	assert.True(t, rl.Allow("client-b"), "a throttled client must not affect others")
}

func TestRateLimiterDefaults(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{})
	assert.True(t, rl.Allow("client-a"))
}
