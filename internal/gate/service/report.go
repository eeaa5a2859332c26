package service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/aegislegal/demogate/internal/gate/domain"
	"github.com/aegislegal/demogate/internal/gate/store"
	"github.com/aegislegal/demogate/pkg/slogx"
)

// RecentActivityLimit caps the audit rows returned in the admin summary.
const RecentActivityLimit = 50

// ReportService aggregates invitation and login state for the admin
// dashboards. Read-only; no side effects.
type ReportService struct {
	Store store.Store
}

// ActivitySummary builds the invitation/login dashboard. Users who have
// logged in sort first, most recent access first; users who never logged in
// follow, most recently invited first.
func (s *ReportService) ActivitySummary(ctx context.Context) (domain.ActivitySummary, error) {
	log := slogx.FromContext(ctx)

	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		log.Error("failed to list invited users", slog.Any("error", err))
		return domain.ActivitySummary{}, err
	}

	totalAccessed, err := s.Store.Users().CountAccessedUsers(ctx)
	if err != nil {
		log.Error("failed to count accessed users", slog.Any("error", err))
		return domain.ActivitySummary{}, err
	}

	recent, err := s.Store.AccessLogs().ListRecentAccessLogs(ctx, RecentActivityLimit)
	if err != nil {
		log.Error("failed to list recent access logs", slog.Any("error", err))
		return domain.ActivitySummary{}, err
	}

	activities := make([]domain.UserActivity, 0, len(users))
	for _, u := range users {
		activities = append(activities, domain.UserActivity{
			Name:         u.Name,
			Email:        u.Email,
			InvitedAt:    u.CreatedAt,
			LastAccessed: u.AccessedAt,
			HasLoggedIn:  u.AccessedAt != nil,
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		a, b := activities[i], activities[j]
		switch {
		case a.LastAccessed != nil && b.LastAccessed != nil:
			return a.LastAccessed.After(*b.LastAccessed)
		case a.LastAccessed != nil:
			return true
		case b.LastAccessed != nil:
			return false
		default:
			return a.InvitedAt.After(b.InvitedAt)
		}
	})

	return domain.ActivitySummary{
		TotalInvited:   len(users),
		TotalAccessed:  totalAccessed,
		Users:          activities,
		RecentActivity: recent,
	}, nil
}
