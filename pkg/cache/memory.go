package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache keeps entries in process memory. It is safe for concurrent
// use and bounds its size by evicting the entry closest to expiry.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	max     int
	now     func() time.Time
}

// NewMemoryCache returns a cache holding at most max entries (0 means
// unbounded).
func NewMemoryCache(max int) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]cacheEntry),
		max:     max,
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if e.expired(c.now()) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return e.Data, true, nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := cacheEntry{Data: append([]byte(nil), data...)}
	if ttl > 0 {
		e.ExpiresAt = c.now().Add(ttl)
	}
	if _, exists := c.entries[key]; !exists && c.max > 0 && len(c.entries) >= c.max {
		c.evict()
	}
	c.entries[key] = e
	return nil
}

func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Close() error { return nil }

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evict drops expired entries, or failing that the one expiring first.
// Entries without expiry are dropped last.
func (c *MemoryCache) evict() {
	now := c.now()
	for k, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, k)
		}
	}
	if len(c.entries) < c.max {
		return
	}
	victim, found := "", false
	var soonest time.Time
	for k, e := range c.entries {
		switch {
		case !found:
		case e.ExpiresAt.IsZero():
			continue
		case soonest.IsZero() || e.ExpiresAt.Before(soonest):
		default:
			continue
		}
		victim, soonest, found = k, e.ExpiresAt, true
	}
	delete(c.entries, victim)
}

var _ Cache = (*MemoryCache)(nil)
