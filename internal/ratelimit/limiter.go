// Package ratelimit provides client-side rate limiting for catalog API
// calls using a token bucket algorithm.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

const (
	// CatalogRatePerSec is the steady request rate against the catalog
	// service. Interactive paging bursts well above this; the bucket
	// absorbs those.
	CatalogRatePerSec = 5.0

	// CatalogBurstCapacity is the bucket size. A full bucket covers a
	// fast paging session before refill kicks in.
	CatalogBurstCapacity = 20.0
)

// Limiter implements a token bucket rate limiter.
// It allows bursts up to maxTokens, then refills at refillRate tokens/second.
type Limiter struct {
	tokens     float64
	maxTokens  float64
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

// NewLimiter creates a rate limiter that refills at tokensPerSecond and
// accumulates at most burstSize tokens. The bucket starts full.
func NewLimiter(tokensPerSecond, burstSize float64) *Limiter {
	return &Limiter{
		tokens:     burstSize,
		maxTokens:  burstSize,
		refillRate: tokensPerSecond,
		lastRefill: time.Now(),
	}
}

// NewCatalogLimiter creates the limiter used in front of the catalog
// service.
func NewCatalogLimiter() *Limiter {
	return NewLimiter(CatalogRatePerSec, CatalogBurstCapacity)
}

// Wait blocks until a token is available or the context is cancelled.
func (rl *Limiter) Wait(ctx context.Context) error {
	for {
		if rl.tryAcquire() {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(rl.timeUntilNextToken()):
		}
	}
}

// tryAcquire attempts to acquire one token without blocking.
func (rl *Limiter) tryAcquire() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(rl.lastRefill).Seconds()
	rl.tokens += elapsed * rl.refillRate
	if rl.tokens > rl.maxTokens {
		rl.tokens = rl.maxTokens
	}
	rl.lastRefill = now

	if rl.tokens >= 1.0 {
		rl.tokens -= 1.0
		return true
	}
	return false
}

// timeUntilNextToken calculates how long until at least one token exists.
func (rl *Limiter) timeUntilNextToken() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	tokensNeeded := 1.0 - rl.tokens
	if tokensNeeded <= 0 {
		return 0
	}
	return time.Duration(tokensNeeded / rl.refillRate * float64(time.Second))
}

// CurrentTokens returns the current token count after refill.
func (rl *Limiter) CurrentTokens() float64 {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	elapsed := time.Since(rl.lastRefill).Seconds()
	tokens := rl.tokens + elapsed*rl.refillRate
	if tokens > rl.maxTokens {
		tokens = rl.maxTokens
	}
	return tokens
}
