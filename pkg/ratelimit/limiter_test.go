package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterBurstThenDeny(t *testing.T) {
	// Very slow refill so the bucket does not recover during the test
	l := NewLimiterWithBurst(0.001, 2)
	ctx := context.Background()

	assert.True(t, l.Acquire(ctx, 1, 0))
	assert.True(t, l.Acquire(ctx, 1, 0))
	assert.False(t, l.Acquire(ctx, 1, 0), "bucket exhausted, non-blocking acquire must fail")
}

func TestLimiterRefills(t *testing.T) {
	l := NewLimiterWithBurst(50, 1)
	ctx := context.Background()

	require.True(t, l.Acquire(ctx, 1, 0))
	require.False(t, l.Acquire(ctx, 1, 0))

	// 50 tokens/s refills one token in 20ms; allow generous slack
	assert.True(t, l.Acquire(ctx, 1, 500*time.Millisecond))
}

func TestLimiterTimeoutExpires(t *testing.T) {
	l := NewLimiterWithBurst(0.001, 1)
	ctx := context.Background()

	require.True(t, l.Acquire(ctx, 1, 0))

	start := time.Now()
	ok := l.Acquire(ctx, 1, 50*time.Millisecond)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestLimiterBlockingAcquireHonorsContext(t *testing.T) {
	l := NewLimiterWithBurst(0.001, 1)
	require.True(t, l.Acquire(context.Background(), 1, 0))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// Negative timeout blocks until ctx is done
	ok := l.Acquire(ctx, 1, -1)
	assert.False(t, ok)
}

func TestLimiterConcurrentAcquire(t *testing.T) {
	l := NewLimiterWithBurst(0.001, 5)
	ctx := context.Background()

	var mu sync.Mutex
	granted := 0

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Acquire(ctx, 1, 0) {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, granted, "exactly burst tokens may be granted")
}

func TestRegistryReturnsSameLimiterPerTag(t *testing.T) {
	r := NewRegistry(map[string]float64{"whois": 1, "dns": 5})

	assert.Same(t, r.Get("whois"), r.Get("whois"))
	assert.NotSame(t, r.Get("whois"), r.Get("dns"))
}

func TestRegistryUnknownTagDefaults(t *testing.T) {
	r := NewRegistry(nil)
	ctx := context.Background()

	// Unknown tag still yields a working limiter
	assert.True(t, r.Acquire(ctx, "mystery", 0))
}
