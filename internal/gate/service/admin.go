package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aegislegal/demogate/internal/gate/domain"
	"github.com/aegislegal/demogate/pkg/cryptox"
	"github.com/aegislegal/demogate/pkg/slogx"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid admin credentials")
	ErrAdminDisabled      = errors.New("admin access is not configured")
)

// DefaultAdminTokenTTL bounds how long a minted operator token stays valid.
const DefaultAdminTokenTTL = 12 * time.Hour

// AdminService authenticates the reserved operator identity. The operator
// holds no InvitedUser row and no store-backed session: a static credential
// (argon2id hash from configuration) is exchanged for a short-lived signed
// token, and the guard resolves that token before the invited-user path.
type AdminService struct {
	// PasswordHash is the PHC-format argon2id hash of the operator
	// credential. Empty disables administrative access entirely.
	PasswordHash string

	// TokenSecret signs and verifies operator tokens (HS256).
	TokenSecret []byte

	Issuer   string
	TokenTTL time.Duration
}

func (s *AdminService) tokenTTL() time.Duration {
	if s.TokenTTL <= 0 {
		return DefaultAdminTokenTTL
	}
	return s.TokenTTL
}

// Login verifies the operator credential and mints a signed bearer token.
func (s *AdminService) Login(ctx context.Context, password string) (string, time.Time, error) {
	log := slogx.FromContext(ctx)

	if s.PasswordHash == "" {
		log.Warn("admin login attempted but no credential is configured")
		return "", time.Time{}, ErrAdminDisabled
	}

	if err := cryptox.VerifyPassword(password, s.PasswordHash); err != nil {
		log.Warn("admin login failed credential check")
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.tokenTTL())

	claims := jwt.RegisteredClaims{
		Subject:   domain.SystemIdentityID,
		Issuer:    s.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.TokenSecret)
	if err != nil {
		log.Error("failed to sign admin token", slog.Any("error", err))
		return "", time.Time{}, err
	}

	log.Info("admin logged in", slog.Time("expires_at", expiresAt))
	return token, expiresAt, nil
}

// Verify resolves a bearer token to the system identity. Invited-session
// tokens are opaque hex strings and fail JWT parsing immediately, so the
// guard can safely try this before the store lookup.
func (s *AdminService) Verify(tokenString string) (domain.Identity, error) {
	if s.PasswordHash == "" || tokenString == "" {
		return domain.Identity{}, ErrUnauthenticated
	}

	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.TokenSecret, nil
		},
		jwt.WithIssuer(s.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return domain.Identity{}, ErrUnauthenticated
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != domain.SystemIdentityID {
		return domain.Identity{}, ErrUnauthenticated
	}

	return domain.NewSystemIdentity(), nil
}
