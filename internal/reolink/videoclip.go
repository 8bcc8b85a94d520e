package reolink

import "time"

// Wire shapes for recording search and device status commands.

// SearchTime is the device's split timestamp representation.
type SearchTime struct {
	Year int `json:"year"`
	Mon  int `json:"mon"`
	Day  int `json:"day"`
	Hour int `json:"hour"`
	Min  int `json:"min"`
	Sec  int `json:"sec"`
}

// Time converts the split representation into a time.Time in loc.
func (s SearchTime) Time(loc *time.Location) time.Time {
	return time.Date(s.Year, time.Month(s.Mon), s.Day, s.Hour, s.Min, s.Sec, 0, loc)
}

// SearchFilter is the param block of a Search command. The device only
// supports fetching recordings within a single day.
type SearchFilter struct {
	Channel    int        `json:"channel"`
	StreamType string     `json:"streamType"`
	OnlyStatus int        `json:"onlyStatus"`
	StartTime  SearchTime `json:"StartTime"`
	EndTime    SearchTime `json:"EndTime"`
}

// SearchParam -.
type SearchParam struct {
	Search SearchFilter `json:"Search"`
}

// SearchFile is one recorded clip in the search result.
type SearchFile struct {
	StartTime SearchTime `json:"StartTime"`
	EndTime   SearchTime `json:"EndTime"`
	FrameRate int        `json:"frameRate"`
	Height    int        `json:"height"`
	Width     int        `json:"width"`
	Name      string     `json:"name"`
	Size      int64      `json:"size"`
	Type      int        `json:"type"`
}

// SearchResultValue is the value envelope of the Search response.
type SearchResultValue struct {
	SearchResult struct {
		Channel int          `json:"channel"`
		File    []SearchFile `json:"File"`
	} `json:"SearchResult"`
}

// BatteryInfoValue is the value envelope of GetBatteryInfo.
type BatteryInfoValue struct {
	Battery struct {
		BatteryPercent int `json:"batteryPercent"`
	} `json:"Battery"`
}

// ChannelStatusValue is the value envelope of GetChannelstatus.
type ChannelStatusValue struct {
	Status []struct {
		Channel int `json:"channel"`
		Online  int `json:"online"`
		Sleep   int `json:"sleep"`
	} `json:"status"`
}
