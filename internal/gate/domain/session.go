package domain

import "time"

// Session is one authenticated browser/client session. The token is the
// opaque bearer credential stored in the client cookie; a user may hold any
// number of concurrent sessions.
type Session struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session's absolute expiry has passed.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
