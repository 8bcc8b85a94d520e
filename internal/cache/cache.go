package cache

import (
	"time"

	"github.com/robfig/go-cache"
)

const (
	// CleanupInterval is how often expired cache entries are removed.
	CleanupInterval = 30 * time.Second
	// DefaultTTL is the default cache duration if not specified in config.
	DefaultTTL = 30 * time.Second
)

// Cache wraps robfig/go-cache for camera response caching. Battery-powered
// cameras pay a wake-up cost per request, so recent clip searches and
// battery readings are served from memory.
type Cache struct {
	store      *cache.Cache
	clipTTL    time.Duration
	batteryTTL time.Duration
}

// New creates an in-memory Cache. A zero TTL disables caching for the
// corresponding kind of entry.
func New(clipTTL, batteryTTL time.Duration) *Cache {
	return &Cache{
		store:      cache.New(0, CleanupInterval),
		clipTTL:    clipTTL,
		batteryTTL: batteryTTL,
	}
}

// SetClips caches a clip search result.
func (c *Cache) SetClips(key string, value interface{}) {
	if c.clipTTL == 0 {
		return
	}

	c.store.Set(key, value, c.clipTTL)
}

// SetBattery caches a battery reading.
func (c *Cache) SetBattery(key string, value interface{}) {
	if c.batteryTTL == 0 {
		return
	}

	c.store.Set(key, value, c.batteryTTL)
}

// Get retrieves a cached value. Returns nil, false when absent or expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

// Delete removes a value from the cache.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// Clear removes all items from the cache.
func (c *Cache) Clear() {
	c.store.Flush()
}
