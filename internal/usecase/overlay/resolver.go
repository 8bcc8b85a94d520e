package overlay

import (
	"math"
	"strconv"

	"github.com/apocaliss92/reolink-osd-sync/internal/entity"
)

// TemperatureReading is a resolved telemetry value with its unit.
type TemperatureReading struct {
	Value float64
	Unit  string
}

// ResolveInput carries the already-resolved external values the resolver
// may consult. Resolution stays free of I/O.
type ResolveInput struct {
	Temperature *TemperatureReading
	Humidity    *float64
	LastFace    *entity.FaceObservation
}

// Resolve computes the display text for an overlay source. The second
// return reports whether the tick should write the OSD at all: static text
// is already on the device, duplication is a one-time copy, and unknown
// types leave the OSD untouched.
func Resolve(src entity.OverlaySource, in ResolveInput) (string, bool) {
	switch src.Type {
	case entity.OverlayTypeText:
		return src.Text, false
	case entity.OverlayTypeDevice:
		switch {
		case in.Temperature != nil:
			return src.Prefix + FormatNumber(in.Temperature.Value) + " " + in.Temperature.Unit, true
		case in.Humidity != nil:
			return src.Prefix + FormatNumber(*in.Humidity) + " %", true
		default:
			// No reachable backing device: keep the loop running and the
			// name untouched.
			return "", true
		}
	case entity.OverlayTypeFaceDetection:
		label := "-"
		if in.LastFace != nil && in.LastFace.Label != "" {
			label = in.LastFace.Label
		}

		return src.Prefix + label, true
	case entity.OverlayTypeDuplicateDevice:
		return "", false
	default:
		return "", false
	}
}

// FormatNumber renders overlay numeric inputs: clamped to >= 0, then
// rounded to the nearest integer.
func FormatNumber(v float64) string {
	if v < 0 {
		v = 0
	}

	return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
}
