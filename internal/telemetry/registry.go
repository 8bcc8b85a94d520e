// Package telemetry holds the latest sensor readings pushed by external
// integrations, keyed by device ref. The overlay engine looks readings up
// by ref and probes the returned device for its capability.
package telemetry

import "sync"

type thermometer struct {
	value float64
	unit  string
}

func (t thermometer) Temperature() float64 { return t.value }
func (t thermometer) Unit() string         { return t.unit }

type hygrometer struct {
	value float64
}

func (h hygrometer) Humidity() float64 { return h.value }

const defaultUnit = "C"

// Registry stores the most recent reading per device ref. Last value wins;
// a device holds exactly one capability at a time, set by whichever kind of
// reading arrived last.
type Registry struct {
	mu      sync.RWMutex
	devices map[string]interface{}
}

// NewRegistry -.
func NewRegistry() *Registry {
	return &Registry{devices: make(map[string]interface{})}
}

// ReportTemperature records a temperature reading. An empty unit defaults
// to Celsius.
func (r *Registry) ReportTemperature(ref string, value float64, unit string) {
	if unit == "" {
		unit = defaultUnit
	}

	r.mu.Lock()
	r.devices[ref] = thermometer{value: value, unit: unit}
	r.mu.Unlock()
}

// ReportHumidity records a relative humidity reading.
func (r *Registry) ReportHumidity(ref string, value float64) {
	r.mu.Lock()
	r.devices[ref] = hygrometer{value: value}
	r.mu.Unlock()
}

// Forget drops a device's reading, so overlays backed by it fall back to
// their unreachable-device behavior.
func (r *Registry) Forget(ref string) {
	r.mu.Lock()
	delete(r.devices, ref)
	r.mu.Unlock()
}

// Lookup returns the device holding the latest reading for ref.
func (r *Registry) Lookup(ref string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dev, ok := r.devices[ref]

	return dev, ok
}

// DeviceRefs lists the refs currently holding a reading.
func (r *Registry) DeviceRefs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	refs := make([]string, 0, len(r.devices))
	for ref := range r.devices {
		refs = append(refs, ref)
	}

	return refs
}
