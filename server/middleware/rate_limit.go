package middleware

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterConfig controls per-key request rates.
type RateLimiterConfig struct {
	// Rate is the sustained request rate per key.
	Rate rate.Limit
	// Burst is the instantaneous burst allowance per key.
	Burst int
}

// RateLimiter provides per-key rate limiting. Generation endpoints use it
// keyed by client identity so one chatty client cannot starve the engine.
type RateLimiter struct {
	config RateLimiterConfig

	mu     sync.RWMutex
	limits map[string]*rate.Limiter
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	if config.Rate <= 0 {
		config.Rate = rate.Limit(5)
	}
	if config.Burst <= 0 {
		config.Burst = 10
	}
	return &RateLimiter{
		config: config,
		limits: make(map[string]*rate.Limiter),
	}
}

// getLimiter gets or creates a limiter for the given key.
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.RLock()
	limiter, ok := rl.limits[key]
	rl.mu.RUnlock()
	if ok {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if limiter, ok := rl.limits[key]; ok {
		return limiter
	}
	limiter = rate.NewLimiter(rl.config.Rate, rl.config.Burst)
	rl.limits[key] = limiter
	return limiter
}

// Allow checks if a request is allowed for the given key.
func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

// Wait blocks until a request is allowed for the given key or ctx ends.
func (rl *RateLimiter) Wait(ctx context.Context, key string) error {
	return rl.getLimiter(key).Wait(ctx)
}
