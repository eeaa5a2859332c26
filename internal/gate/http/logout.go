package http

import (
	"net/http"

	"github.com/aegislegal/demogate/internal/gate/service"
	"github.com/aegislegal/demogate/pkg/gatesdk"
	"github.com/aegislegal/demogate/pkg/httpx"
	"github.com/aegislegal/demogate/pkg/slogx"
)

type LogoutHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Logout Endpoint
//	@Description	Destroy the current session and clear the authToken cookie. Logging out without a live session still succeeds.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	gatesdk.LogoutResponse	"success"
//	@Failure		500	{object}	gatesdk.ErrorResponse	"error"
//	@Router			/api/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token, _ := extractToken(r)
	if token != "" {
		if err := h.AuthService.Logout(ctx, token); err != nil {
			log.Error("logout failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, gatesdk.ErrorResponse{
				Error: "logout failed",
			})
			return
		}
	}

	clearSessionCookie(w)
	httpx.WriteJSON(w, http.StatusOK, gatesdk.LogoutResponse{Success: true})
}
