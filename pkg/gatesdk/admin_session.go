package gatesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// AdminSession is an authenticated operator session. The token is a signed
// admin credential, not a stored session, so there is no admin logout; the
// token simply expires.
type AdminSession struct {
	client *Client
	token  string
}

// Token returns the raw admin token.
func (a *AdminSession) Token() string { return a.token }

// CreateInvitation creates a single-use invitation for the given person and
// returns the invited user, including the invite code and invitation URL.
func (a *AdminSession) CreateInvitation(ctx context.Context, req InviteRequest) (*InvitedUserPayload, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := a.client.doTokenRequest(ctx, a.token, http.MethodPost, "/api/admin/invite", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var inviteResp InviteResponse
	if err := decodeJSON(resp, &inviteResp, http.StatusCreated); err != nil {
		return nil, err
	}
	return &inviteResp.User, nil
}

// ActivitySummary fetches the activity report: invite and access totals, the
// per-user activity list, and the most recent access log entries.
func (a *AdminSession) ActivitySummary(ctx context.Context) (*ActivityResponse, error) {
	resp, err := a.client.doTokenRequest(ctx, a.token, http.MethodGet, "/api/admin/activity", nil, nil)
	if err != nil {
		return nil, err
	}

	var activity ActivityResponse
	if err := decodeJSON(resp, &activity, http.StatusOK); err != nil {
		return nil, err
	}
	return &activity, nil
}

// DeactivateUser revokes an invited user's access. Their live sessions are
// rejected from the next request onward.
func (a *AdminSession) DeactivateUser(ctx context.Context, userID string) error {
	path := "/api/admin/users/" + url.PathEscape(userID) + "/deactivate"
	resp, err := a.client.doTokenRequest(ctx, a.token, http.MethodPost, path, nil, nil)
	if err != nil {
		return err
	}

	var deactivateResp DeactivateResponse
	return decodeJSON(resp, &deactivateResp, http.StatusOK)
}
