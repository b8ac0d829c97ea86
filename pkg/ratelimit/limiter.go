// Package ratelimit provides a token-bucket limiter for outbound
// integration calls, shared process-wide per service tag.
package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"
)

// pollInterval is how long blocked acquirers sleep between refill checks.
const pollInterval = 10 * time.Millisecond

// Limiter is a token bucket. Tokens refill linearly from wall-clock time
// up to the burst capacity. Safe for concurrent use.
type Limiter struct {
	mu         sync.Mutex
	rate       float64 // tokens per second
	burst      float64
	tokens     float64
	lastRefill time.Time
}

// NewLimiter creates a limiter with the given refill rate in tokens per
// second. Burst defaults to ceil(rate) and is at least 1.
func NewLimiter(rate float64) *Limiter {
	return NewLimiterWithBurst(rate, math.Ceil(rate))
}

// NewLimiterWithBurst creates a limiter with an explicit burst capacity.
func NewLimiterWithBurst(rate, burst float64) *Limiter {
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		rate:       rate,
		burst:      burst,
		tokens:     burst,
		lastRefill: time.Now(),
	}
}

// Acquire takes tokens from the bucket, waiting up to timeout for them to
// become available. A negative timeout blocks until tokens arrive or ctx is
// done; a zero timeout is a non-blocking attempt. Returns true when the
// tokens were acquired.
func (l *Limiter) Acquire(ctx context.Context, tokens float64, timeout time.Duration) bool {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	for {
		if l.tryAcquire(tokens) {
			return true
		}
		if timeout == 0 {
			return false
		}
		if timeout > 0 && !time.Now().Before(deadline) {
			return false
		}

		select {
		case <-ctx.Done():
			return false
		case <-time.After(pollInterval):
		}
	}
}

// tryAcquire refills from elapsed wall clock and then takes the tokens if
// available, all under one mutex.
func (l *Limiter) tryAcquire(tokens float64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(l.lastRefill).Seconds()
	if elapsed > 0 {
		l.tokens = math.Min(l.burst, l.tokens+elapsed*l.rate)
		l.lastRefill = now
	}

	if l.tokens >= tokens {
		l.tokens -= tokens
		return true
	}
	return false
}

// Registry maps service tags to limiters, creating each on first use.
type Registry struct {
	mu       sync.Mutex
	rates    map[string]float64
	limiters map[string]*Limiter
}

// NewRegistry creates a registry with per-tag refill rates.
// Unknown tags default to 1 token per second.
func NewRegistry(rates map[string]float64) *Registry {
	r := &Registry{
		rates:    make(map[string]float64, len(rates)),
		limiters: make(map[string]*Limiter),
	}
	for tag, rate := range rates {
		r.rates[tag] = rate
	}
	return r
}

// Get returns the limiter for a service tag, creating it on first use.
func (r *Registry) Get(tag string) *Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.limiters[tag]; ok {
		return l
	}

	rate, ok := r.rates[tag]
	if !ok || rate <= 0 {
		rate = 1
	}
	l := NewLimiter(rate)
	r.limiters[tag] = l
	return l
}

// Acquire is shorthand for Get(tag).Acquire(ctx, 1, timeout).
func (r *Registry) Acquire(ctx context.Context, tag string, timeout time.Duration) bool {
	return r.Get(tag).Acquire(ctx, 1, timeout)
}
