package overlay

import (
	"sync"
	"time"

	"github.com/apocaliss92/reolink-osd-sync/internal/entity"
)

// Tracker maintains the most recent face label for one camera: a
// single-slot, last-value-wins mailbox written by the detection
// subscription and read by the sync loop. At most one subscription is
// active at a time; Start and Stop are idempotent.
type Tracker struct {
	source   DetectionSource
	cameraID string

	mu     sync.Mutex
	cancel func()
	last   *entity.FaceObservation
}

// NewTracker -.
func NewTracker(source DetectionSource, cameraID string) *Tracker {
	return &Tracker{
		source:   source,
		cameraID: cameraID,
	}
}

// Start subscribes to the detection stream if not already subscribed.
func (t *Tracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return
	}

	t.cancel = t.source.Subscribe(t.cameraID, t.onBatch)
}

// Stop unsubscribes if subscribed.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel == nil {
		return
	}

	t.cancel()
	t.cancel = nil
}

// Active reports whether a subscription is open.
func (t *Tracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.cancel != nil
}

// Last returns the most recent observation, or nil if none was seen since
// the engine started.
func (t *Tracker) Last() *entity.FaceObservation {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.last == nil {
		return nil
	}

	obs := *t.last

	return &obs
}

// onBatch scans one event batch. The first detection with the face class
// and a non-empty label wins; no ranking across multiple faces.
func (t *Tracker) onBatch(batch []entity.Detection) {
	for _, d := range batch {
		if d.ClassName != "face" || d.Label == "" {
			continue
		}

		t.mu.Lock()
		t.last = &entity.FaceObservation{Label: d.Label, ObservedAt: time.Now()}
		t.mu.Unlock()

		return
	}
}
