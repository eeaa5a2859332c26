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

type AdminLoginHandler struct {
	AdminService *service.AdminService
}

// ServeHTTP godoc
//
//	@Summary		Admin Login Endpoint
//	@Description	Exchange the operator password for a short-lived signed admin token.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gatesdk.AdminLoginRequest	true	"Operator password"
//	@Success		200		{object}	gatesdk.AdminLoginResponse	"token, expiresIn"
//	@Failure		400		{object}	gatesdk.ErrorResponse		"error"
//	@Failure		401		{object}	gatesdk.ErrorResponse		"error"
//	@Failure		500		{object}	gatesdk.ErrorResponse		"error"
//	@Router			/api/admin/login [post].
func (h *AdminLoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req gatesdk.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, gatesdk.ErrorResponse{
			Error: "invalid JSON body",
		})
		return
	}

	token, expiresAt, err := h.AdminService.Login(ctx, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteJSON(w, http.StatusUnauthorized, gatesdk.ErrorResponse{
				Error: "invalid credentials",
			})
			return
		}
		log.Error("admin login failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, gatesdk.ErrorResponse{
			Error: "login failed",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, gatesdk.AdminLoginResponse{
		Token:     token,
		ExpiresIn: int(time.Until(expiresAt).Seconds()),
	})
}
