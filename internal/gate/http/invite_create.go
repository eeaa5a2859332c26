package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aegislegal/demogate/internal/gate/domain"
	"github.com/aegislegal/demogate/internal/gate/service"
	"github.com/aegislegal/demogate/pkg/gatesdk"
	"github.com/aegislegal/demogate/pkg/httpx"
	"github.com/aegislegal/demogate/pkg/slogx"
)

type InviteCreateHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Create Invitation Endpoint
//	@Description	Create a new invited user with a fresh invite code and a shareable invitation URL. Repeat invitations
//	@Description	to the same email create distinct users, each with their own code.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		gatesdk.InviteRequest	true	"Invitee email and name, optional expiry"
//	@Success		201		{object}	gatesdk.InviteResponse	"user"
//	@Failure		400		{object}	gatesdk.ErrorResponse	"error"
//	@Failure		401		{object}	gatesdk.ErrorResponse	"error, redirect"
//	@Failure		500		{object}	gatesdk.ErrorResponse	"error"
//	@Security		BearerAuth
//	@Router			/api/admin/invite [post].
func (h *InviteCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req gatesdk.InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, gatesdk.ErrorResponse{
			Error: "invalid JSON body",
		})
		return
	}

	invitation, err := h.InvitationService.CreateInvitation(ctx, req.Email, req.Name, req.ExpiresAt)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInvitation) {
			httpx.WriteJSON(w, http.StatusBadRequest, gatesdk.ErrorResponse{
				Error: "email and name are required",
			})
			return
		}
		log.Error("failed to create invitation", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, gatesdk.ErrorResponse{
			Error: "failed to create invitation",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, gatesdk.InviteResponse{
		User: invitedUserPayload(invitation),
	})
}

func invitedUserPayload(inv domain.Invitation) gatesdk.InvitedUserPayload {
	return gatesdk.InvitedUserPayload{
		ID:         inv.User.ID,
		Email:      inv.User.Email,
		Name:       inv.User.Name,
		InviteCode: inv.User.InviteCode,
		InviteURL:  inv.InviteURL,
		IsActive:   inv.User.IsActive,
		CreatedAt:  inv.User.CreatedAt,
		ExpiresAt:  inv.User.ExpiresAt,
	}
}
