package reolink

// Wire shapes for the OSD sub-document and the session handshake. A SetOsd
// replaces the entire addressed sub-document, so writers must echo every
// field obtained from the last GetOsd.

// OsdChannel is the channel-name overlay block.
type OsdChannel struct {
	Enable int    `json:"enable"`
	Name   string `json:"name"`
	Pos    string `json:"pos"`
}

// OsdTime is the time overlay block; passed through unmodified.
type OsdTime struct {
	Enable int    `json:"enable"`
	Pos    string `json:"pos"`
}

// Osd mirrors the device's structured OSD state for one channel.
type Osd struct {
	Bgcolor    int        `json:"bgcolor"`
	Channel    int        `json:"channel"`
	OsdChannel OsdChannel `json:"osdChannel"`
	OsdTime    OsdTime    `json:"osdTime"`
	Watermark  int        `json:"watermark"`
}

// OsdValue is the value envelope of GetOsd and the param of SetOsd.
type OsdValue struct {
	Osd Osd `json:"Osd"`
}

// ChannelParam addresses commands that only need the channel id.
type ChannelParam struct {
	Channel int `json:"channel"`
}

// TokenInfo is the lease granted by a successful Login: the token name and
// its validity window in seconds.
type TokenInfo struct {
	Name      string `json:"name"`
	LeaseTime int    `json:"leaseTime"`
}

// TokenValue is the value envelope of the Login response.
type TokenValue struct {
	Token TokenInfo `json:"Token"`
}

// DevNameValue is the value envelope of GetDevName and param of SetDevName.
type DevNameValue struct {
	DevName DevName `json:"DevName"`
}

// DevName -.
type DevName struct {
	Name string `json:"name"`
}
