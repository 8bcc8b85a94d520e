package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/apocaliss92/reolink-osd-sync/internal/entity"
)

// OverlaySettings is the editable overlay configuration for one camera.
type OverlaySettings struct {
	Type     string `json:"type" binding:"omitempty,oneof=text device faceDetection duplicateDevice" example:"device"`
	Device   string `json:"device,omitempty" example:"sensor-kitchen"`
	Prefix   string `json:"prefix,omitempty" example:"Temp: "`
	Text     string `json:"text,omitempty" example:"Front Door"`
	Position string `json:"position,omitempty" binding:"omitempty,overlayposition" example:"Upper Left"`
}

// DuplicateRequest asks to clone another camera's overlay onto this one.
type DuplicateRequest struct {
	FromCameraID string `json:"fromCameraId" binding:"required" example:"backyard"`
}

// DeviceName sets the camera's self-reported name.
type DeviceName struct {
	Name string `json:"name" binding:"required,lte=31" example:"Front Door"`
}

// ValidateOverlayPosition accepts only the device's named OSD positions.
func ValidateOverlayPosition(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, pos := range entity.OverlayPositions {
		if value == pos {
			return true
		}
	}

	return false
}
