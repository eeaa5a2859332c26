package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aegislegal/demogate/internal/gate/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, name, invite_code, is_active, accessed_at, created_at, expires_at`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.InvitedUser) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invited_users (id, email, name, invite_code, is_active, accessed_at, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Email,
		u.Name,
		u.InviteCode,
		u.IsActive,
		mapOptionalTime(u.AccessedAt),
		u.CreatedAt.UTC(),
		mapOptionalTime(u.ExpiresAt),
	)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.InvitedUser, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM invited_users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByInviteCode(ctx context.Context, code string) (domain.InvitedUser, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM invited_users WHERE invite_code = ?`, code)
	return scanUser(row)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.InvitedUser, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM invited_users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.InvitedUser
	for rows.Next() {
		u, err := scanUserRows(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) UpdateAccessedAt(ctx context.Context, userID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE invited_users SET accessed_at = ? WHERE id = ?`, at.UTC(), userID)
	return err
}

func (r *usersRepo) DeactivateUser(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invited_users SET is_active = 0 WHERE id = ?`, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *usersRepo) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM invited_users`).Scan(&count)
	return count, err
}

func (r *usersRepo) CountAccessedUsers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM invited_users WHERE accessed_at IS NOT NULL`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row *sql.Row) (domain.InvitedUser, error) {
	u, err := scanUserRows(row)
	if err != nil {
		return domain.InvitedUser{}, mapNotFound(err)
	}
	return u, nil
}

func scanUserRows(s rowScanner) (domain.InvitedUser, error) {
	var (
		u          domain.InvitedUser
		accessedAt sql.NullTime
		expiresAt  sql.NullTime
	)
	err := s.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.InviteCode,
		&u.IsActive,
		&accessedAt,
		&u.CreatedAt,
		&expiresAt,
	)
	if err != nil {
		return domain.InvitedUser{}, err
	}
	u.AccessedAt = mapNullTimePtr(accessedAt)
	u.ExpiresAt = mapNullTimePtr(expiresAt)
	return u, nil
}
