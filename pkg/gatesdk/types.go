package gatesdk

import "time"

// ============================================================================
// Error Response
// ============================================================================

// ErrorResponse is the wire format for every error the service returns.
// Redirect is only populated on authentication failures where the client
// should send the user back to the login page.
type ErrorResponse struct {
	// Error is a human-readable description of what went wrong
	Error string `json:"error"`

	// Redirect is the path the client should navigate to, when set
	Redirect string `json:"redirect,omitempty"`
}

// ============================================================================
// Invited-User Auth Types
// ============================================================================

// LoginRequest is the body for POST /api/auth/login.
type LoginRequest struct {
	// InviteCode is the single-use code from the invitation URL
	InviteCode string `json:"inviteCode"`
}

// UserPayload is the public view of an invited user, returned from login
// and session lookups. It never carries the invite code.
type UserPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse is returned from POST /api/auth/login on success. The
// session token itself travels in the authToken cookie, not the body.
type LoginResponse struct {
	Success bool        `json:"success"`
	User    UserPayload `json:"user"`
}

// SessionResponse is returned from GET /api/auth/session for a valid session.
type SessionResponse struct {
	Authenticated bool        `json:"authenticated"`
	User          UserPayload `json:"user"`
}

// LogoutResponse is returned from POST /api/auth/logout.
type LogoutResponse struct {
	Success bool `json:"success"`
}

// ============================================================================
// Admin Types
// ============================================================================

// AdminLoginRequest is the body for POST /api/admin/login.
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminLoginResponse is returned from POST /api/admin/login on success.
type AdminLoginResponse struct {
	// Token is the bearer token for subsequent admin requests
	Token string `json:"token"`

	// ExpiresIn is the token lifetime in seconds
	ExpiresIn int `json:"expiresIn"`
}

// InviteRequest is the body for POST /api/admin/invite.
type InviteRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`

	// ExpiresAt optionally bounds how long the invitation stays usable.
	// When nil the invitation never expires.
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// InvitedUserPayload is the admin's view of an invited user, including the
// invite code and a ready-to-share invitation URL.
type InvitedUserPayload struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	InviteCode string     `json:"inviteCode"`
	InviteURL  string     `json:"inviteUrl"`
	IsActive   bool       `json:"isActive"`
	CreatedAt  time.Time  `json:"createdAt"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
}

// InviteResponse is returned from POST /api/admin/invite. The invited user
// is nested under "user" so the admin UI can render it directly.
type InviteResponse struct {
	User InvitedUserPayload `json:"user"`
}

// DeactivateResponse is returned from POST /api/admin/users/{id}/deactivate.
type DeactivateResponse struct {
	Success bool `json:"success"`
}

// ============================================================================
// Activity Report Types
// ============================================================================

// UserActivityPayload is one row in the activity report's user list.
type UserActivityPayload struct {
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	InvitedAt    time.Time  `json:"invitedAt"`
	LastAccessed *time.Time `json:"lastAccessed"`
	HasLoggedIn  bool       `json:"hasLoggedIn"`
}

// AccessLogPayload is one entry in the activity report's recent-access list.
type AccessLogPayload struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	IPAddress  string    `json:"ipAddress,omitempty"`
	UserAgent  string    `json:"userAgent,omitempty"`
	AccessedAt time.Time `json:"accessedAt"`
}

// ActivityResponse is returned from GET /api/admin/activity.
type ActivityResponse struct {
	TotalInvited   int                   `json:"totalInvited"`
	TotalAccessed  int                   `json:"totalAccessed"`
	Users          []UserActivityPayload `json:"users"`
	RecentActivity []AccessLogPayload    `json:"recentActivity"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthChecks reports the status of the service's critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned from the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
