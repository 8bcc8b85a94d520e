package entity

import "time"

// OverlayType selects where the text shown in an OSD slot comes from.
type OverlayType string

const (
	OverlayTypeText            OverlayType = "text"
	OverlayTypeDevice          OverlayType = "device"
	OverlayTypeFaceDetection   OverlayType = "faceDetection"
	OverlayTypeDuplicateDevice OverlayType = "duplicateDevice"
)

// OverlayPositions are the named OSD slots the vendor accepts, plus the
// catch-all entry for coordinates configured on the device itself.
var OverlayPositions = []string{
	"Lower Left",
	"Upper Left",
	"Top Center",
	"Upper Right",
	"Bottom Center",
	"Lower Right",
	"Other Configuration",
}

// OverlaySource is a user-configured rule describing what text should appear
// in an OSD slot. Exactly one Type is active; DeviceRef is meaningful only
// for the device-backed types. Text doubles as the cached fallback holding
// the camera's self-reported name.
type OverlaySource struct {
	ID        string
	Type      OverlayType
	DeviceRef string
	Prefix    string
	Text      string
	Position  string
}

// FaceObservation is the most recent qualifying face detection. In-memory
// only; reset on engine restart.
type FaceObservation struct {
	Label      string
	ObservedAt time.Time
}

// Detection is one entry of an object-detection event batch.
type Detection struct {
	ClassName string `json:"className"`
	Label     string `json:"label"`
}
