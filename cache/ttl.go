// api/cache/ttl.go

package cache

import (
	"context"
	"sync"
	"time"
)

type entry[V any] struct {
	val       V
	expiresAt time.Time
}

// TTL is a minimal in-process get-or-compute cache with per-entry expiry.
// Entries live until overwritten or Clear is called; there is no size-based
// eviction and no persistence, so callers must tolerate a miss at any time.
//
// There is deliberately no coalescing of concurrent misses for the same key:
// each miss invokes compute and the last writer wins. Both computations yield
// an equally fresh result, so the redundant upstream call is accepted.
type TTL[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]entry[V]
	now     func() time.Time
}

func NewTTL[K comparable, V any]() *TTL[K, V] {
	return &TTL[K, V]{
		entries: make(map[K]entry[V]),
		now:     time.Now,
	}
}

// NewTTLWithClock creates a cache with an injected clock, for tests.
func NewTTLWithClock[K comparable, V any](now func() time.Time) *TTL[K, V] {
	return &TTL[K, V]{
		entries: make(map[K]entry[V]),
		now:     now,
	}
}

// GetOrSet returns the live entry for key if one exists, otherwise invokes
// compute, stores its result with expiresAt = now + ttl, and returns it.
// A compute error is returned as-is and nothing is stored.
func (c *TTL[K, V]) GetOrSet(ctx context.Context, key K, ttl time.Duration, compute func(context.Context) (V, error)) (V, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Before(e.expiresAt) {
		c.mu.Unlock()
		return e.val, nil
	}
	c.mu.Unlock()

	// Compute outside the lock so a slow upstream fetch for one key does not
	// stall reads of other keys.
	val, err := compute(ctx)
	if err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	c.entries[key] = entry[V]{val: val, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()

	return val, nil
}

// Clear removes all entries unconditionally.
func (c *TTL[K, V]) Clear() {
	c.mu.Lock()
	c.entries = make(map[K]entry[V])
	c.mu.Unlock()
}

// Len reports the number of entries, live or expired.
func (c *TTL[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
