package gatesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// cookieName is the cookie the service uses to carry session tokens.
const cookieName = "authToken"

// Client is a client for the demo gate service. It provides access to
// unauthenticated operations and can create authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new gate service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login exchanges an invite code for an authenticated Session. The session
// token is read from the authToken cookie the service sets.
func (c *Client) Login(ctx context.Context, inviteCode string) (*Session, error) {
	body, err := json.Marshal(LoginRequest{InviteCode: inviteCode})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var loginResp LoginResponse
	if err := decodeJSON(resp, &loginResp, http.StatusOK); err != nil {
		return nil, err
	}

	token := ""
	for _, cookie := range resp.Cookies() {
		if cookie.Name == cookieName {
			token = cookie.Value
		}
	}
	if token == "" {
		return nil, fmt.Errorf("login response missing %s cookie", cookieName)
	}

	return &Session{
		client: c,
		token:  token,
		user:   loginResp.User,
	}, nil
}

// NewSessionFromToken creates a Session from an existing session token, e.g.
// one persisted from a previous login.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// NewAdminSessionFromToken creates an AdminSession from an existing admin
// token. The token is not verified client-side; an invalid one surfaces as a
// 401 on the first call.
func (c *Client) NewAdminSessionFromToken(token string) *AdminSession {
	return &AdminSession{client: c, token: token}
}

// AdminLogin authenticates with the operator password and returns an
// AdminSession for invite management and activity reporting.
func (c *Client) AdminLogin(ctx context.Context, password string) (*AdminSession, error) {
	body, err := json.Marshal(AdminLoginRequest{Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/admin/login", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var loginResp AdminLoginResponse
	if err := decodeJSON(resp, &loginResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &AdminSession{client: c, token: loginResp.Token}, nil
}

// Livez calls the liveness probe.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// Readyz calls the readiness probe. A degraded service returns an *APIError
// with status 503.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
