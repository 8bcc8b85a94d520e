// Package detection fans object-detection event batches out to per-camera
// subscribers. Producers are the websocket ingest endpoint; consumers are
// the overlay trackers.
package detection

import (
	"sync"

	"github.com/apocaliss92/reolink-osd-sync/internal/entity"
)

// Hub routes detection batches by camera id. Publish never blocks on
// subscribers; handlers run inline and must return quickly.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func([]entity.Detection)
}

// NewHub -.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[int]func([]entity.Detection)),
	}
}

// Subscribe registers fn for a camera's batches. The returned cancel is
// idempotent.
func (h *Hub) Subscribe(cameraID string, fn func([]entity.Detection)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID

	if h.subs[cameraID] == nil {
		h.subs[cameraID] = make(map[int]func([]entity.Detection))
	}

	h.subs[cameraID][id] = fn

	var once sync.Once

	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			delete(h.subs[cameraID], id)
			if len(h.subs[cameraID]) == 0 {
				delete(h.subs, cameraID)
			}
		})
	}
}

// Publish delivers one batch to every subscriber of the camera.
func (h *Hub) Publish(cameraID string, batch []entity.Detection) {
	h.mu.Lock()
	fns := make([]func([]entity.Detection), 0, len(h.subs[cameraID]))

	for _, fn := range h.subs[cameraID] {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(batch)
	}
}

// SubscriberCount reports how many handlers a camera currently has.
func (h *Hub) SubscriberCount(cameraID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs[cameraID])
}
