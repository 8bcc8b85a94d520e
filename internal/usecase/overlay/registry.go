package overlay

import "sync"

// Registry tracks the running engines by camera id so overlay duplication
// can reach a sibling camera's engine.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]*Engine
}

// NewRegistry -.
func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[string]*Engine),
	}
}

// Add registers an engine under its camera id, replacing any previous entry.
func (r *Registry) Add(e *Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.engines[e.CameraID()] = e
}

// Remove drops the entry for cameraID if it still points at e.
func (r *Registry) Remove(e *Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.engines[e.CameraID()]; ok && cur == e {
		delete(r.engines, e.CameraID())
	}
}

// Get returns the engine for cameraID.
func (r *Registry) Get(cameraID string) (*Engine, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.engines[cameraID]

	return e, ok
}

// CameraIDs lists the registered cameras.
func (r *Registry) CameraIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.engines))
	for id := range r.engines {
		ids = append(ids, id)
	}

	return ids
}
