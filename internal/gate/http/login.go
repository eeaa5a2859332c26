package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aegislegal/demogate/internal/gate/service"
	"github.com/aegislegal/demogate/pkg/gatesdk"
	"github.com/aegislegal/demogate/pkg/httpx"
	"github.com/aegislegal/demogate/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService

	// CookieSecure marks the session cookie Secure. Enabled outside of
	// local development.
	CookieSecure bool
}

// ServeHTTP godoc
//
//	@Summary		Invite Code Login Endpoint
//	@Description	Exchange a single-use invite code for a 24-hour session. The session token is set in the authToken cookie.
//	@Description	Unknown, revoked, and expired invite codes are all rejected with the same error so codes cannot be probed.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gatesdk.LoginRequest	true	"Invite code"
//	@Success		200		{object}	gatesdk.LoginResponse	"success, user"
//	@Failure		400		{object}	gatesdk.ErrorResponse	"error"
//	@Failure		401		{object}	gatesdk.ErrorResponse	"error"
//	@Failure		500		{object}	gatesdk.ErrorResponse	"error"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req gatesdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, gatesdk.ErrorResponse{
			Error: "invalid JSON body",
		})
		return
	}

	session, user, err := h.AuthService.Login(ctx, req.InviteCode, clientIP(r), r.UserAgent())
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			httpx.WriteJSON(w, http.StatusUnauthorized, gatesdk.ErrorResponse{
				Error: "invalid invite code",
			})
			return
		}
		log.Error("login failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, gatesdk.ErrorResponse{
			Error: "login failed",
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	httpx.WriteJSON(w, http.StatusOK, gatesdk.LoginResponse{
		Success: true,
		User: gatesdk.UserPayload{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
	})
}
