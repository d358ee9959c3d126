package cfapi

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrCacheMiss is returned by a Cache when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// CacheEntry is one cached API response.
type CacheEntry struct {
	StatusCode int
	Body       []byte
	StoredAt   time.Time
}

// Cache stores API responses keyed by request URL. Implementations must be
// safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// MemoryCache is an in-process Cache with a fixed TTL and a size bound.
// Expired entries are dropped lazily on access; when the cache is full the
// oldest entry is evicted.
type MemoryCache struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	entries map[string]*CacheEntry
	order   []string
}

// NewMemoryCache creates a memory cache holding at most maxSize entries,
// each valid for ttl after being stored.
func NewMemoryCache(maxSize int, ttl time.Duration) *MemoryCache {
	if maxSize <= 0 {
		maxSize = 128
	}

	return &MemoryCache{
		maxSize: maxSize,
		ttl:     ttl,
		entries: make(map[string]*CacheEntry),
	}
}

func (c *MemoryCache) expired(entry *CacheEntry) bool {
	return c.ttl > 0 && time.Since(entry.StoredAt) >= c.ttl
}

func (c *MemoryCache) removeLocked(key string) {
	delete(c.entries, key)

	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)

			break
		}
	}
}

// Get returns the entry for key, or ErrCacheMiss when absent or expired.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}

	if c.expired(entry) {
		c.removeLocked(key)

		return nil, ErrCacheMiss
	}

	snapshot := *entry

	return &snapshot, nil
}

// Set stores an entry, evicting the oldest entry when the cache is full.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry.StoredAt.IsZero() {
		entry.StoredAt = time.Now()
	}

	if _, ok := c.entries[key]; ok {
		c.removeLocked(key)
	}

	if len(c.entries) >= c.maxSize && len(c.order) > 0 {
		c.removeLocked(c.order[0])
	}

	stored := *entry
	c.entries[key] = &stored
	c.order = append(c.order, key)

	return nil
}

// Delete removes the entry for key, if any.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(key)

	return nil
}

// Clear removes every entry.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*CacheEntry)
	c.order = nil

	return nil
}

// Has reports whether key is present and not expired.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	_, err := c.Get(ctx, key)

	return err == nil
}

// NoOpCache is a Cache that stores nothing. It stands in where a cache is
// required but caching is disabled.
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always misses.
func (c *NoOpCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	return nil, ErrCacheMiss
}

// Set does nothing.
func (c *NoOpCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	return nil
}

// Delete does nothing.
func (c *NoOpCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Clear does nothing.
func (c *NoOpCache) Clear(ctx context.Context) error {
	return nil
}

// Has always reports false.
func (c *NoOpCache) Has(ctx context.Context, key string) bool {
	return false
}
