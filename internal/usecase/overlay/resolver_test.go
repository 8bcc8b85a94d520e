package overlay_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/apocaliss92/reolink-osd-sync/internal/entity"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase/overlay"
)

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		res  string
	}{
		{name: "rounds up", in: 21.6, res: "22"},
		{name: "rounds down", in: 21.4, res: "21"},
		{name: "negative clamps to zero", in: -3.2, res: "0"},
		{name: "zero", in: 0, res: "0"},
		{name: "integer passthrough", in: 55, res: "55"},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.res, overlay.FormatNumber(tc.in))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	humidity := 48.7

	tests := []struct {
		name  string
		src   entity.OverlaySource
		in    overlay.ResolveInput
		text  string
		write bool
	}{
		{
			name:  "static text returned as-is without write",
			src:   entity.OverlaySource{Type: entity.OverlayTypeText, Text: "Front Door"},
			text:  "Front Door",
			write: false,
		},
		{
			name: "temperature with unit",
			src:  entity.OverlaySource{Type: entity.OverlayTypeDevice, DeviceRef: "sensor-1"},
			in: overlay.ResolveInput{
				Temperature: &overlay.TemperatureReading{Value: 21.6, Unit: "C"},
			},
			text:  "22 C",
			write: true,
		},
		{
			name: "temperature with prefix",
			src:  entity.OverlaySource{Type: entity.OverlayTypeDevice, DeviceRef: "sensor-1", Prefix: "Temp: "},
			in: overlay.ResolveInput{
				Temperature: &overlay.TemperatureReading{Value: 18.2, Unit: "C"},
			},
			text:  "Temp: 18 C",
			write: true,
		},
		{
			name:  "humidity in percent",
			src:   entity.OverlaySource{Type: entity.OverlayTypeDevice, DeviceRef: "sensor-2"},
			in:    overlay.ResolveInput{Humidity: &humidity},
			text:  "49 %",
			write: true,
		},
		{
			name:  "device without telemetry keeps name",
			src:   entity.OverlaySource{Type: entity.OverlayTypeDevice, DeviceRef: "gone"},
			text:  "",
			write: true,
		},
		{
			name: "face label with prefix",
			src:  entity.OverlaySource{Type: entity.OverlayTypeFaceDetection, Prefix: "Seen: "},
			in: overlay.ResolveInput{
				LastFace: &entity.FaceObservation{Label: "alice", ObservedAt: time.Now()},
			},
			text:  "Seen: alice",
			write: true,
		},
		{
			name:  "face absent falls back to placeholder",
			src:   entity.OverlaySource{Type: entity.OverlayTypeFaceDetection, Prefix: "Seen: "},
			text:  "Seen: -",
			write: true,
		},
		{
			name:  "duplicate type never writes per tick",
			src:   entity.OverlaySource{Type: entity.OverlayTypeDuplicateDevice},
			text:  "",
			write: false,
		},
		{
			name:  "unknown type leaves overlay untouched",
			src:   entity.OverlaySource{Type: entity.OverlayType("bogus")},
			text:  "",
			write: false,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			text, write := overlay.Resolve(tc.src, tc.in)

			require.Equal(t, tc.text, text)
			require.Equal(t, tc.write, write)
		})
	}
}
