// Package cache provides a concurrency-safe in-memory TTL cache with hit and
// miss accounting, backed by github.com/patrickmn/go-cache.
package cache

import (
	"sync"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// NoExpiration stores an item that never expires
const NoExpiration = gocache.NoExpiration

// Cache is a thread-safe in-memory cache with TTL support
type Cache struct {
	store    *gocache.Cache
	maxItems int
	ttl      time.Duration

	// writeMu serializes the size check, eviction and store of writers
	writeMu sync.Mutex

	// Metrics
	hits   atomic.Int64
	misses atomic.Int64
}

// Config holds cache configuration
type Config struct {
	MaxItems        int
	TTL             time.Duration
	CleanupInterval time.Duration
}

// Stats is a snapshot of cache usage
type Stats struct {
	Hits    int64
	Misses  int64
	Items   int
	HitRate float64 // percent
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{
		MaxItems:        10000,
		TTL:             10 * time.Minute,
		CleanupInterval: time.Minute,
	}
}

// New creates a new cache instance. Zero fields fall back to DefaultConfig.
func New(cfg Config) *Cache {
	def := DefaultConfig()
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = def.MaxItems
	}
	if cfg.TTL == 0 {
		cfg.TTL = def.TTL
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = def.CleanupInterval
	}

	return &Cache{
		store:    gocache.New(cfg.TTL, cfg.CleanupInterval),
		maxItems: cfg.MaxItems,
		ttl:      cfg.TTL,
	}
}

// Get retrieves a value from the cache
func (c *Cache) Get(key string) (interface{}, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return v, true
}

// Set stores a value in the cache with the default TTL
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, gocache.DefaultExpiration)
}

// SetWithTTL stores a value with a custom TTL. The cache never holds more
// than MaxItems entries, also under concurrent writers.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.store.ItemCount() >= c.maxItems {
		if _, exists := c.store.Get(key); !exists {
			c.evictOldest()
		}
	}
	c.store.Set(key, value, ttl)
}

// Delete removes a value from the cache
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// Clear removes all items from the cache
func (c *Cache) Clear() {
	c.store.Flush()
}

// Size returns the number of items in the cache, expired ones included until
// the next cleanup
func (c *Cache) Size() int {
	return c.store.ItemCount()
}

// Stats returns cache statistics
func (c *Cache) Stats() Stats {
	s := Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Items:  c.store.ItemCount(),
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total) * 100
	}
	return s
}

// GetOrSet returns the cached value for key, or computes, stores and returns
// it. Errors from fn are not cached. Concurrent misses may each call fn.
func (c *Cache) GetOrSet(key string, fn func() (interface{}, error)) (interface{}, error) {
	if val, ok := c.Get(key); ok {
		return val, nil
	}

	val, err := fn()
	if err != nil {
		return nil, err
	}

	c.Set(key, val)
	return val, nil
}

// evictOldest drops expired entries and, if still full, the entry closest
// to expiry
func (c *Cache) evictOldest() {
	c.store.DeleteExpired()
	if c.store.ItemCount() < c.maxItems {
		return
	}

	var oldestKey string
	var oldest int64
	for key, item := range c.store.Items() {
		// Expiration 0 means never expires; such entries go last
		exp := item.Expiration
		if exp == 0 {
			continue
		}
		if oldestKey == "" || exp < oldest {
			oldestKey = key
			oldest = exp
		}
	}
	if oldestKey == "" {
		for key := range c.store.Items() {
			oldestKey = key
			break
		}
	}
	if oldestKey != "" {
		c.store.Delete(oldestKey)
	}
}
