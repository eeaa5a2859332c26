package http

import (
	"errors"
	"net/http"

	"github.com/aegislegal/demogate/internal/gate/service"
	"github.com/aegislegal/demogate/pkg/gatesdk"
	"github.com/aegislegal/demogate/pkg/httpx"
	"github.com/aegislegal/demogate/pkg/slogx"
)

type DeactivateHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Deactivate User Endpoint
//	@Description	Revoke an invited user's access. Their invite code stops working immediately and any live sessions are
//	@Description	rejected from the next request onward. History is preserved.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string						true	"Invited user id"
//	@Success		200	{object}	gatesdk.DeactivateResponse	"success"
//	@Failure		401	{object}	gatesdk.ErrorResponse		"error, redirect"
//	@Failure		404	{object}	gatesdk.ErrorResponse		"error"
//	@Failure		500	{object}	gatesdk.ErrorResponse		"error"
//	@Security		BearerAuth
//	@Router			/api/admin/users/{id}/deactivate [post].
func (h *DeactivateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := r.PathValue("id")
	if err := h.InvitationService.DeactivateUser(ctx, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, gatesdk.ErrorResponse{
				Error: "user not found",
			})
		case errors.Is(err, service.ErrInvalidInvitation):
			httpx.WriteJSON(w, http.StatusBadRequest, gatesdk.ErrorResponse{
				Error: "user id is required",
			})
		default:
			log.Error("failed to deactivate user", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, gatesdk.ErrorResponse{
				Error: "failed to deactivate user",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, gatesdk.DeactivateResponse{Success: true})
}
