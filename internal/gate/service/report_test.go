package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aegislegal/demogate/internal/gate/domain"
	"github.com/aegislegal/demogate/internal/gate/store"
	"github.com/aegislegal/demogate/pkg/cryptox"
	"github.com/aegislegal/demogate/pkg/idx"
	"github.com/stretchr/testify/require"
)

func seedUserWithAccess(t *testing.T, st store.Store, name string, invitedAt time.Time, accessedAt *time.Time) domain.InvitedUser {
	t.Helper()
	ctx := context.Background()

	user := domain.InvitedUser{
		ID:         idx.New().String(),
		Email:      name + "@example.com",
		Name:       name,
		InviteCode: cryptox.MustGenerateToken(cryptox.TokenSize128),
		IsActive:   true,
		CreatedAt:  invitedAt,
	}
	require.NoError(t, st.Users().CreateUser(ctx, user))

	if accessedAt != nil {
		require.NoError(t, st.Users().UpdateAccessedAt(ctx, user.ID, *accessedAt))
		require.NoError(t, st.AccessLogs().CreateAccessLog(ctx, domain.AccessLog{
			ID:         idx.New().String(),
			UserID:     user.ID,
			AccessedAt: *accessedAt,
		}))
	}
	return user
}

func TestActivitySummaryTotalsAndOrdering(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	now := time.Now().UTC()
	recent := now.Add(-time.Hour)
	older := now.Add(-24 * time.Hour)

	// Invited order: carol, then alice, then bob. Access order: alice most
	// recent, bob older, carol never.
	seedUserWithAccess(t, st, "carol", now.Add(-72*time.Hour), nil)
	seedUserWithAccess(t, st, "alice", now.Add(-48*time.Hour), &recent)
	seedUserWithAccess(t, st, "bob", now.Add(-48*time.Hour), &older)
	seedUserWithAccess(t, st, "dave", now.Add(-12*time.Hour), nil)

	svc := &ReportService{Store: st}

	summary, err := svc.ActivitySummary(ctx)
	require.NoError(t, err)

	require.Equal(t, 4, summary.TotalInvited)
	require.Equal(t, 2, summary.TotalAccessed)

	// Logged-in users first by recency, then never-logged-in by invite
	// recency.
	names := make([]string, 0, len(summary.Users))
	for _, u := range summary.Users {
		names = append(names, u.Name)
	}
	require.Equal(t, []string{"alice", "bob", "dave", "carol"}, names)

	require.True(t, summary.Users[0].HasLoggedIn)
	require.NotNil(t, summary.Users[0].LastAccessed)
	require.False(t, summary.Users[3].HasLoggedIn)
	require.Nil(t, summary.Users[3].LastAccessed)

	require.Len(t, summary.RecentActivity, 2)
	require.True(t, summary.RecentActivity[0].AccessedAt.After(summary.RecentActivity[1].AccessedAt))
}

func TestActivitySummaryEmpty(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	svc := &ReportService{Store: st}

	summary, err := svc.ActivitySummary(ctx)
	require.NoError(t, err)
	require.Zero(t, summary.TotalInvited)
	require.Zero(t, summary.TotalAccessed)
	require.Empty(t, summary.Users)
	require.Empty(t, summary.RecentActivity)
}

func TestActivitySummaryCapsRecentLogs(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	accessed := time.Now().UTC().Add(-time.Hour)
	user := seedUserWithAccess(t, st, "tom", time.Now().UTC().Add(-48*time.Hour), &accessed)

	base := time.Now().UTC().Add(-30 * time.Minute)
	for i := 0; i < RecentActivityLimit+10; i++ {
		require.NoError(t, st.AccessLogs().CreateAccessLog(ctx, domain.AccessLog{
			ID:         idx.New().String(),
			UserID:     user.ID,
			IPAddress:  fmt.Sprintf("203.0.113.%d", i%250),
			AccessedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	svc := &ReportService{Store: st}

	summary, err := svc.ActivitySummary(ctx)
	require.NoError(t, err)
	require.Len(t, summary.RecentActivity, RecentActivityLimit)

	// Newest first.
	for i := 1; i < len(summary.RecentActivity); i++ {
		require.False(t, summary.RecentActivity[i-1].AccessedAt.Before(summary.RecentActivity[i].AccessedAt))
	}
}
