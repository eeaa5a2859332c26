package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aegislegal/demogate/internal/gate/domain"
	"github.com/aegislegal/demogate/internal/gate/store"
	"github.com/aegislegal/demogate/pkg/cryptox"
	"github.com/aegislegal/demogate/pkg/idx"
	"github.com/aegislegal/demogate/pkg/slogx"
)

// ErrUnauthenticated covers every rejection on the login and guard paths:
// unknown invite code, revoked or expired invitation, missing or expired
// session. Callers must not be able to tell which condition failed, so a
// single sentinel covers them all.
var ErrUnauthenticated = errors.New("unauthenticated")

// DefaultSessionTTL is the absolute lifetime of a minted session.
const DefaultSessionTTL = 24 * time.Hour

// AuthService exchanges invite codes for sessions and validates session
// tokens on every protected request.
type AuthService struct {
	Store      store.Store
	SessionTTL time.Duration
}

func (s *AuthService) sessionTTL() time.Duration {
	if s.SessionTTL <= 0 {
		return DefaultSessionTTL
	}
	return s.SessionTTL
}

// Login exchanges a valid invite code for a fresh session. Every successful
// call mints exactly one new session and writes exactly one access log row;
// sessions are never reused, and two concurrent logins with the same code
// both succeed independently.
func (s *AuthService) Login(
	ctx context.Context,
	inviteCode string,
	ipAddress string,
	userAgent string,
) (domain.Session, domain.InvitedUser, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	inviteCode = strings.TrimSpace(inviteCode)
	if inviteCode == "" {
		return domain.Session{}, domain.InvitedUser{}, ErrUnauthenticated
	}

	// 2. Resolve the invite code.
	user, err := s.Store.Users().GetUserByInviteCode(ctx, inviteCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login attempted with unknown invite code")
			return domain.Session{}, domain.InvitedUser{}, ErrUnauthenticated
		}
		log.Error("failed to look up invite code", slog.Any("error", err))
		return domain.Session{}, domain.InvitedUser{}, err
	}

	// 3. A revoked or expired invitation rejects identically to an unknown
	// code.
	now := time.Now().UTC()
	if !user.CanLogin(now) {
		log.Warn("login attempted with revoked or expired invitation",
			slog.String("user_id", user.ID),
		)
		return domain.Session{}, domain.InvitedUser{}, ErrUnauthenticated
	}

	// 4. Mint the session token.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate session token", slog.Any("error", err))
		return domain.Session{}, domain.InvitedUser{}, err
	}

	session := domain.Session{
		ID:        idx.New().String(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: now.Add(s.sessionTTL()),
		CreatedAt: now,
	}

	// 5. Persist the session, bump the last-accessed marker and append the
	// audit row atomically.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Sessions().CreateSession(ctx, session); err != nil {
			return err
		}
		if err := tx.Users().UpdateAccessedAt(ctx, user.ID, now); err != nil {
			return err
		}
		return tx.AccessLogs().CreateAccessLog(ctx, domain.AccessLog{
			ID:         idx.New().String(),
			UserID:     user.ID,
			IPAddress:  ipAddress,
			UserAgent:  userAgent,
			AccessedAt: now,
		})
	})
	if err != nil {
		log.Error("failed to persist login",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return domain.Session{}, domain.InvitedUser{}, err
	}

	accessedAt := now
	user.AccessedAt = &accessedAt

	log.Info("user logged in",
		slog.String("user_id", user.ID),
		slog.String("session_id", session.ID),
		slog.Time("expires_at", session.ExpiresAt),
	)

	return session, user, nil
}

// Authenticate resolves a session token to the owning invited identity. On
// success it appends one access log row, making the audit trail a per-request
// "last seen" signal rather than a login-time one.
//
// Expired sessions and sessions whose owner has been revoked are deleted as a
// side effect; the deletion is best-effort cleanup, never a correctness
// dependency, so concurrent requests racing on the same dead session all
// reject safely.
func (s *AuthService) Authenticate(
	ctx context.Context,
	token string,
	ipAddress string,
	userAgent string,
) (domain.Identity, error) {
	log := slogx.FromContext(ctx)

	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Identity{}, ErrUnauthenticated
	}

	// 1. Resolve the session.
	session, err := s.Store.Sessions().GetSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Identity{}, ErrUnauthenticated
		}
		log.Error("failed to look up session", slog.Any("error", err))
		return domain.Identity{}, err
	}

	// 2. Lazily delete expired sessions. The expiry check already decided
	// the rejection; cleanup failures are swallowed.
	now := time.Now().UTC()
	if session.Expired(now) {
		if err := s.Store.Sessions().DeleteSessionByToken(ctx, token); err != nil {
			log.Warn("failed to delete expired session", slog.Any("error", err))
		}
		return domain.Identity{}, ErrUnauthenticated
	}

	// 3. Re-resolve the owning user on every request so deactivation takes
	// effect immediately, even for sessions minted before the revocation.
	user, err := s.Store.Users().GetUserByID(ctx, session.UserID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to look up session owner", slog.Any("error", err))
		return domain.Identity{}, err
	}
	if errors.Is(err, store.ErrNotFound) || !user.CanLogin(now) {
		if err := s.Store.Sessions().DeleteSessionByToken(ctx, token); err != nil {
			log.Warn("failed to delete revoked session", slog.Any("error", err))
		}
		log.Warn("session rejected for revoked user", slog.String("user_id", session.UserID))
		return domain.Identity{}, ErrUnauthenticated
	}

	// 4. Append the per-request audit row. Missing network details are
	// tolerated; a failed write must not reject an authenticated request.
	logErr := s.Store.AccessLogs().CreateAccessLog(ctx, domain.AccessLog{
		ID:         idx.New().String(),
		UserID:     user.ID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		AccessedAt: now,
	})
	if logErr != nil {
		log.Warn("failed to write access log", slog.Any("error", logErr))
	}

	return domain.NewInvitedIdentity(user), nil
}

// Logout deletes the session backing the given token. Unknown tokens are not
// an error; logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	if err := s.Store.Sessions().DeleteSessionByToken(ctx, token); err != nil {
		slogx.FromContext(ctx).Error("failed to delete session on logout", slog.Any("error", err))
		return err
	}
	return nil
}
