package entity

import "time"

// Session is the authentication lease held against one camera. Owned
// exclusively by the session manager; never persisted.
type Session struct {
	Token       string
	LeaseExpiry time.Time
}

// TokenValid reports whether the token can still be attached to requests.
// An expired token is treated as absent.
func (s Session) TokenValid(now time.Time) bool {
	return s.Token != "" && now.Before(s.LeaseExpiry)
}
