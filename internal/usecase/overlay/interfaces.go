// Package overlay keeps one camera's on-screen overlay synchronized with
// its configured source: a static string, another camera's duplicated
// overlay, live telemetry, or the most recently detected face label.
package overlay

import (
	"context"

	"github.com/apocaliss92/reolink-osd-sync/internal/entity"
	"github.com/apocaliss92/reolink-osd-sync/internal/reolink"
)

// DeviceOps is the slice of the devices usecase the engine drives.
type DeviceOps interface {
	GetOsd(ctx context.Context) (*reolink.OsdValue, error)
	SetOsd(ctx context.Context, value *reolink.OsdValue) error
	GetDeviceName(ctx context.Context) (string, error)
}

// SettingsStore is the external key-value store holding the overlay
// configuration. It is the source of truth; the engine reads it fresh every
// tick and writes back only the text fallback.
type SettingsStore interface {
	GetValue(key string) string
	PutValue(key, value string)
}

// TemperatureSensor is an optional telemetry capability.
type TemperatureSensor interface {
	Temperature() float64
	Unit() string
}

// HumiditySensor is an optional telemetry capability.
type HumiditySensor interface {
	Humidity() float64
}

// TelemetrySource looks up telemetry-capable devices by identifier. The
// returned device is probed for capabilities with type assertions.
type TelemetrySource interface {
	Lookup(deviceRef string) (interface{}, bool)
}

// DetectionSource delivers object-detection batches for a camera. The
// returned cancel func is idempotent.
type DetectionSource interface {
	Subscribe(cameraID string, fn func([]entity.Detection)) (cancel func())
}
