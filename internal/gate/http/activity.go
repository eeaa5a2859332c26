package http

import (
	"net/http"

	"github.com/aegislegal/demogate/internal/gate/service"
	"github.com/aegislegal/demogate/pkg/gatesdk"
	"github.com/aegislegal/demogate/pkg/httpx"
	"github.com/aegislegal/demogate/pkg/slogx"
)

type ActivityHandler struct {
	ReportService *service.ReportService
}

// ServeHTTP godoc
//
//	@Summary		Activity Report Endpoint
//	@Description	Return invitation and access totals, the per-user activity list (most recent access first, never-logged-in
//	@Description	users last), and the most recent access log entries.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	gatesdk.ActivityResponse	"totalInvited, totalAccessed, users, recentActivity"
//	@Failure		401	{object}	gatesdk.ErrorResponse		"error, redirect"
//	@Failure		500	{object}	gatesdk.ErrorResponse		"error"
//	@Security		BearerAuth
//	@Router			/api/admin/activity [get].
func (h *ActivityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	summary, err := h.ReportService.ActivitySummary(ctx)
	if err != nil {
		log.Error("failed to build activity report", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, gatesdk.ErrorResponse{
			Error: "failed to build activity report",
		})
		return
	}

	resp := gatesdk.ActivityResponse{
		TotalInvited:   summary.TotalInvited,
		TotalAccessed:  summary.TotalAccessed,
		Users:          make([]gatesdk.UserActivityPayload, 0, len(summary.Users)),
		RecentActivity: make([]gatesdk.AccessLogPayload, 0, len(summary.RecentActivity)),
	}
	for _, u := range summary.Users {
		resp.Users = append(resp.Users, gatesdk.UserActivityPayload{
			Name:         u.Name,
			Email:        u.Email,
			InvitedAt:    u.InvitedAt,
			LastAccessed: u.LastAccessed,
			HasLoggedIn:  u.HasLoggedIn,
		})
	}
	for _, entry := range summary.RecentActivity {
		resp.RecentActivity = append(resp.RecentActivity, gatesdk.AccessLogPayload{
			ID:         entry.ID,
			UserID:     entry.UserID,
			IPAddress:  entry.IPAddress,
			UserAgent:  entry.UserAgent,
			AccessedAt: entry.AccessedAt,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
