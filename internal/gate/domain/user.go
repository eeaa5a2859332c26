package domain

import "time"

// InvitedUser is a person granted demo access. The invite code is the only
// credential that can be exchanged for a session.
type InvitedUser struct {
	ID         string
	Email      string // not unique: repeat invitations to one address are allowed
	Name       string
	InviteCode string
	IsActive   bool
	AccessedAt *time.Time // nil until first login, then last login time
	CreatedAt  time.Time
	ExpiresAt  *time.Time // optional invitation expiry
}

// Invitation is the result of creating an invited user: the stored record
// plus the shareable login URL carrying the invite code.
type Invitation struct {
	User      InvitedUser
	InviteURL string
}

// CanLogin reports whether the user may authenticate at the given time.
// A past invitation expiry is treated the same as deactivation.
func (u InvitedUser) CanLogin(now time.Time) bool {
	if !u.IsActive {
		return false
	}
	if u.ExpiresAt != nil && !now.Before(*u.ExpiresAt) {
		return false
	}
	return true
}
