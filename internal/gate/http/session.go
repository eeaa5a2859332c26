package http

import (
	"net/http"

	"github.com/aegislegal/demogate/pkg/gatesdk"
	"github.com/aegislegal/demogate/pkg/httpx"
)

// SessionHandler reports the identity behind the current session. It runs
// behind the guard, so reaching it at all means the credential was valid.
type SessionHandler struct{}

// ServeHTTP godoc
//
//	@Summary		Session Check Endpoint
//	@Description	Return the identity behind the current session. Rejected sessions get the standard 401 with a redirect hint.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	gatesdk.SessionResponse	"authenticated, user"
//	@Failure		401	{object}	gatesdk.ErrorResponse	"error, redirect"
//	@Security		BearerAuth
//	@Router			/api/auth/session [get].
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity := identityFromCtx(r.Context())

	httpx.WriteJSON(w, http.StatusOK, gatesdk.SessionResponse{
		Authenticated: true,
		User: gatesdk.UserPayload{
			ID:    identity.ID,
			Email: identity.Email,
			Name:  identity.Name,
		},
	})
}
