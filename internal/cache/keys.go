package cache

import (
	"strconv"
	"time"
)

// ClipSearchKey identifies one clip search by camera, window and stream.
func ClipSearchKey(cameraID string, start, end time.Time, streamType string) string {
	return "clips:" + cameraID + ":" + strconv.FormatInt(start.Unix(), 10) + ":" + strconv.FormatInt(end.Unix(), 10) + ":" + streamType
}

// BatteryKey identifies one camera's battery reading.
func BatteryKey(cameraID string) string {
	return "battery:" + cameraID
}
