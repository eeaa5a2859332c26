package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/aegislegal/demogate/internal/gate/domain"
	"github.com/aegislegal/demogate/internal/gate/store"
	"github.com/aegislegal/demogate/pkg/cryptox"
	"github.com/aegislegal/demogate/pkg/idx"
	"github.com/aegislegal/demogate/pkg/slogx"
)

var (
	ErrInvalidInvitation = errors.New("invalid invitation request")
	ErrUserNotFound      = errors.New("user not found")
)

// InvitationService creates invited users and composes shareable login URLs.
// Creation is deliberately not idempotent on email: every call mints a brand
// new identity with a fresh invite code, and repeat invitations to one
// address produce distinct records.
type InvitationService struct {
	Store store.Store

	// BaseURL is the deployment's public base URL, used to compose invite
	// links of the form {BaseURL}/login?code={inviteCode}.
	BaseURL string
}

// CreateInvitation generates a fresh 128-bit invite code, persists a new
// active InvitedUser and returns it with the shareable login URL. A nil
// expiresAt means the invitation never expires; a non-nil one must be in
// the future.
func (s *InvitationService) CreateInvitation(
	ctx context.Context,
	email string,
	name string,
	expiresAt *time.Time,
) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input. Email format checking is owned by this boundary.
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" {
		log.Warn("invitation request missing required fields")
		return domain.Invitation{}, ErrInvalidInvitation
	}
	if _, err := mail.ParseAddress(email); err != nil {
		log.Warn("invitation request with malformed email")
		return domain.Invitation{}, ErrInvalidInvitation
	}
	if expiresAt != nil && !expiresAt.After(time.Now().UTC()) {
		log.Warn("invitation request with expiry in the past")
		return domain.Invitation{}, ErrInvalidInvitation
	}

	// 2. Generate the invite code.
	code, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		log.Error("failed to generate invite code", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	user := domain.InvitedUser{
		ID:         idx.New().String(),
		Email:      email,
		Name:       name,
		InviteCode: code,
		IsActive:   true,
		AccessedAt: nil,
		CreatedAt:  time.Now().UTC(),
		ExpiresAt:  expiresAt,
	}

	// 3. Persist. The single insert is atomic; a failed create leaves no
	// partial record behind. The invite_code unique constraint closes the
	// generation-collision race.
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		log.Error("failed to create invited user",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, err
	}

	log.Info("invitation created",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return domain.Invitation{
		User:      user,
		InviteURL: s.inviteURL(code),
	}, nil
}

// DeactivateUser revokes an invited user without deleting history. Future
// logins with the user's invite code fail immediately; live sessions fail on
// their next guarded request.
func (s *InvitationService) DeactivateUser(ctx context.Context, userID string) error {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInvitation
	}

	if err := s.Store.Users().DeactivateUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("deactivation requested for unknown user", slog.String("user_id", userID))
			return ErrUserNotFound
		}
		log.Error("failed to deactivate user",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("user deactivated", slog.String("user_id", userID))
	return nil
}

func (s *InvitationService) inviteURL(code string) string {
	base := strings.TrimSuffix(s.BaseURL, "/")
	return fmt.Sprintf("%s/login?code=%s", base, url.QueryEscape(code))
}
