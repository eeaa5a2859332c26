package domain

import "time"

// UserActivity is the admin dashboard projection of one invited user.
type UserActivity struct {
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	InvitedAt    time.Time  `json:"invitedAt"`
	LastAccessed *time.Time `json:"lastAccessed"`
	HasLoggedIn  bool       `json:"hasLoggedIn"`
}

// ActivitySummary aggregates invitation and login state for the admin view.
type ActivitySummary struct {
	TotalInvited   int            `json:"totalInvited"`
	TotalAccessed  int            `json:"totalAccessed"`
	Users          []UserActivity `json:"users"`
	RecentActivity []AccessLog    `json:"recentActivity"`
}
