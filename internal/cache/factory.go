package cache

import (
	"github.com/apocaliss92/reolink-osd-sync/config"
)

// NewFromConfig creates a cache instance based on the application
// configuration. Zero TTLs disable the corresponding caching.
func NewFromConfig(cfg *config.Config) *Cache {
	return New(cfg.Sync.ClipCacheTTL, cfg.Sync.BatteryCacheTTL)
}
