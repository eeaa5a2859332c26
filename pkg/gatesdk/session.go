package gatesdk

import (
	"context"
	"net/http"
)

// Session is an authenticated invited-user session. It carries the opaque
// session token and presents it as a bearer token; the service accepts both
// the authToken cookie and the Authorization header.
type Session struct {
	client *Client
	token  string
	user   UserPayload
}

// Token returns the raw session token, e.g. for persisting across restarts.
func (s *Session) Token() string { return s.token }

// User returns the user identity captured at login. It may be stale; use
// Current for a server-verified view.
func (s *Session) User() UserPayload { return s.user }

// Current verifies the session against the server and returns the current
// user identity. Revoked or expired sessions return an *APIError with
// status 401.
func (s *Session) Current(ctx context.Context) (*UserPayload, error) {
	resp, err := s.client.doTokenRequest(ctx, s.token, http.MethodGet, "/api/auth/session", nil, nil)
	if err != nil {
		return nil, err
	}

	var sessionResp SessionResponse
	if err := decodeJSON(resp, &sessionResp, http.StatusOK); err != nil {
		return nil, err
	}

	s.user = sessionResp.User
	return &sessionResp.User, nil
}

// Logout destroys the session on the server. Logging out an already-dead
// session is not an error.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.client.doTokenRequest(ctx, s.token, http.MethodPost, "/api/auth/logout", nil, nil)
	if err != nil {
		return err
	}

	var logoutResp LogoutResponse
	return decodeJSON(resp, &logoutResp, http.StatusOK)
}
