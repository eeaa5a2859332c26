package sqlite

import (
	"context"
	"time"

	"github.com/aegislegal/demogate/internal/gate/domain"
)

type sessionsRepo struct {
	db dbtx
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, user_id, token, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		s.ID,
		s.UserID,
		s.Token,
		s.ExpiresAt.UTC(),
		s.CreatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *sessionsRepo) GetSessionByToken(ctx context.Context, token string) (domain.Session, error) {
	var s domain.Session
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, token, expires_at, created_at
		FROM sessions WHERE token = ?`, token).
		Scan(&s.ID, &s.UserID, &s.Token, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return s, nil
}

func (r *sessionsRepo) DeleteSessionByToken(ctx context.Context, token string) error {
	// Deleting a session that is already gone is not an error; concurrent
	// guards may race on the same expired session.
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at <= ?`, time.Now().UTC())
	return err
}
