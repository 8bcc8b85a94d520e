// Package settings is the in-memory key-value store backing overlay
// configuration. The process is the source of truth for these keys; cameras
// only ever see the resolved OSD writes.
package settings

import "sync"

// Repository -.
type Repository struct {
	mu     sync.RWMutex
	values map[string]string
}

// New -.
func New() *Repository {
	return &Repository{
		values: make(map[string]string),
	}
}

// GetValue returns the stored value, or "" when the key is absent.
func (r *Repository) GetValue(key string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.values[key]
}

// PutValue stores value under key.
func (r *Repository) PutValue(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
}

// Keys lists the stored keys.
func (r *Repository) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}

	return keys
}
