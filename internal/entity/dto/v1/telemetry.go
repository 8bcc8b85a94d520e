package dto

// TelemetryReport is one sensor reading pushed by an external integration.
// Exactly one of Temperature or Humidity must be set; Temperature wins when
// both are present.
type TelemetryReport struct {
	DeviceRef   string   `json:"deviceRef" binding:"required" example:"sensor-kitchen"`
	Temperature *float64 `json:"temperature,omitempty" example:"21.6"`
	Humidity    *float64 `json:"humidity,omitempty" example:"48.7"`
	Unit        string   `json:"unit,omitempty" example:"C"`
}
