package service

import (
	"context"
	"testing"
	"time"

	"github.com/aegislegal/demogate/internal/gate/domain"
	"github.com/aegislegal/demogate/internal/gate/store"
	"github.com/aegislegal/demogate/pkg/cryptox"
	"github.com/aegislegal/demogate/pkg/idx"
	"github.com/stretchr/testify/require"
)

func seedInvitedUser(t *testing.T, st store.Store) domain.InvitedUser {
	t.Helper()

	svc := &InvitationService{Store: st, BaseURL: "https://demo.example"}
	inv, err := svc.CreateInvitation(context.Background(), "tom@example.com", "Tom", nil)
	require.NoError(t, err)
	return inv.User
}

func TestLoginCreatesSessionAndAccessLog(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := seedInvitedUser(t, st)

	svc := &AuthService{Store: st}

	session, loggedIn, err := svc.Login(ctx, user.InviteCode, "203.0.113.7", "go-test")
	require.NoError(t, err)
	require.Equal(t, user.ID, session.UserID)
	require.Len(t, session.Token, 64, "session token should be 256 bits hex encoded")
	require.WithinDuration(t, time.Now().Add(DefaultSessionTTL), session.ExpiresAt, time.Minute)

	require.Equal(t, user.ID, loggedIn.ID)
	require.NotNil(t, loggedIn.AccessedAt)

	// Exactly one audit row, carrying the request metadata.
	logs, err := st.AccessLogs().ListRecentAccessLogs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, user.ID, logs[0].UserID)
	require.Equal(t, "203.0.113.7", logs[0].IPAddress)
	require.Equal(t, "go-test", logs[0].UserAgent)
}

func TestLoginRejectsUnknownCode(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedInvitedUser(t, st)

	svc := &AuthService{Store: st}

	for _, code := range []string{"", "   ", "deadbeefdeadbeefdeadbeefdeadbeef"} {
		_, _, err := svc.Login(ctx, code, "", "")
		require.ErrorIs(t, err, ErrUnauthenticated)
	}

	// A failed login leaves no trace.
	count, err := st.AccessLogs().CountAccessLogs(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestLoginRejectsRevokedUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := seedInvitedUser(t, st)
	require.NoError(t, st.Users().DeactivateUser(ctx, user.ID))

	svc := &AuthService{Store: st}

	_, _, err := svc.Login(ctx, user.InviteCode, "", "")
	require.ErrorIs(t, err, ErrUnauthenticated, "revoked code must reject identically to an unknown one")
}

func TestLoginRejectsExpiredInvitation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	expired := time.Now().UTC().Add(-time.Hour)
	user := domain.InvitedUser{
		ID:         idx.New().String(),
		Email:      "mae@example.com",
		Name:       "Mae",
		InviteCode: cryptox.MustGenerateToken(cryptox.TokenSize128),
		IsActive:   true,
		CreatedAt:  time.Now().UTC().Add(-2 * time.Hour),
		ExpiresAt:  &expired,
	}
	require.NoError(t, st.Users().CreateUser(ctx, user))

	svc := &AuthService{Store: st}

	_, _, err := svc.Login(ctx, user.InviteCode, "", "")
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestLoginTwiceMintsIndependentSessions(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := seedInvitedUser(t, st)

	svc := &AuthService{Store: st}

	first, _, err := svc.Login(ctx, user.InviteCode, "", "")
	require.NoError(t, err)
	second, _, err := svc.Login(ctx, user.InviteCode, "", "")
	require.NoError(t, err)

	require.NotEqual(t, first.Token, second.Token)
	require.NotEqual(t, first.ID, second.ID)

	// Two logins, one user, two audit rows.
	users, err := st.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, users)

	logs, err := st.AccessLogs().CountAccessLogs(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, logs)

	// Both sessions validate independently.
	_, err = svc.Authenticate(ctx, first.Token, "", "")
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, second.Token, "", "")
	require.NoError(t, err)
}

func TestAuthenticateReturnsIdentityAndLogsAccess(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := seedInvitedUser(t, st)

	svc := &AuthService{Store: st}

	session, _, err := svc.Login(ctx, user.InviteCode, "", "")
	require.NoError(t, err)

	identity, err := svc.Authenticate(ctx, session.Token, "203.0.113.9", "go-test")
	require.NoError(t, err)
	require.Equal(t, domain.IdentityInvited, identity.Kind)
	require.Equal(t, user.ID, identity.ID)
	require.Equal(t, user.Email, identity.Email)
	require.False(t, identity.IsSystem())

	// One row from login plus one per authenticated request.
	logs, err := st.AccessLogs().CountAccessLogs(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, logs)
}

func TestAuthenticateRejectsUnknownToken(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	svc := &AuthService{Store: st}

	_, err := svc.Authenticate(ctx, "not-a-real-token", "", "")
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthenticateRevocationTakesEffectImmediately(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := seedInvitedUser(t, st)

	svc := &AuthService{Store: st}

	session, _, err := svc.Login(ctx, user.InviteCode, "", "")
	require.NoError(t, err)

	// The session is live until the moment of revocation.
	_, err = svc.Authenticate(ctx, session.Token, "", "")
	require.NoError(t, err)

	require.NoError(t, st.Users().DeactivateUser(ctx, user.ID))

	_, err = svc.Authenticate(ctx, session.Token, "", "")
	require.ErrorIs(t, err, ErrUnauthenticated)

	// The dead session was cleaned up as a side effect.
	_, err = st.Sessions().GetSessionByToken(ctx, session.Token)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAuthenticateDeletesExpiredSession(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := seedInvitedUser(t, st)

	expired := domain.Session{
		ID:        idx.New().String(),
		UserID:    user.ID,
		Token:     cryptox.MustGenerateToken(cryptox.TokenSize256),
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
		CreatedAt: time.Now().UTC().Add(-25 * time.Hour),
	}
	require.NoError(t, st.Sessions().CreateSession(ctx, expired))

	svc := &AuthService{Store: st}

	_, err := svc.Authenticate(ctx, expired.Token, "", "")
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = st.Sessions().GetSessionByToken(ctx, expired.Token)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := seedInvitedUser(t, st)

	svc := &AuthService{Store: st}

	session, _, err := svc.Login(ctx, user.InviteCode, "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session.Token))
	_, err = svc.Authenticate(ctx, session.Token, "", "")
	require.ErrorIs(t, err, ErrUnauthenticated)

	// Logging out again, or with a token that never existed, still succeeds.
	require.NoError(t, svc.Logout(ctx, session.Token))
	require.NoError(t, svc.Logout(ctx, "never-existed"))
	require.NoError(t, svc.Logout(ctx, ""))
}
