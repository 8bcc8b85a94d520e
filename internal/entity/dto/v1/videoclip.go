package dto

import "time"

// VideoClip is one recording returned by a clip search.
type VideoClip struct {
	Name      string    `json:"name" example:"Rec_20260828_101500.mp4"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Size      int64     `json:"size" example:"1048576"`
	Type      string    `json:"type" example:"main"`
}

// ClipURLs carries the playback and download URLs for one clip.
type ClipURLs struct {
	Download string `json:"download"`
	Playback string `json:"playback"`
}

// CameraSummary is the list view of a configured camera.
type CameraSummary struct {
	ID      string `json:"id" example:"frontdoor"`
	Name    string `json:"name" example:"Front Door"`
	Host    string `json:"host" example:"192.168.1.30"`
	Channel int    `json:"channel" example:"0"`
}

// DetectionEvent is one inbound websocket payload from a detector.
type DetectionEvent struct {
	CameraID   string      `json:"cameraId" binding:"required"`
	Detections []Detection `json:"detections" binding:"required"`
}

// Detection mirrors one detected object.
type Detection struct {
	ClassName string `json:"className" binding:"required" example:"face"`
	Label     string `json:"label,omitempty" example:"alice"`
}
