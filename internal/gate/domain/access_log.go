package domain

import "time"

// AccessLog is one append-only audit record. A row is written on every
// successful login and on every authenticated request by an invited identity.
// Rows are never mutated or deleted.
type AccessLog struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	IPAddress  string    `json:"ipAddress,omitempty"`
	UserAgent  string    `json:"userAgent,omitempty"`
	AccessedAt time.Time `json:"accessedAt"`
}
