package sqlite

import (
	"context"
	"database/sql"

	"github.com/aegislegal/demogate/internal/gate/domain"
)

type accessLogsRepo struct {
	db dbtx
}

func (r *accessLogsRepo) CreateAccessLog(ctx context.Context, l domain.AccessLog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO access_logs (id, user_id, ip_address, user_agent, accessed_at)
		VALUES (?, ?, ?, ?, ?)`,
		l.ID,
		l.UserID,
		mapStringNull(l.IPAddress),
		mapStringNull(l.UserAgent),
		l.AccessedAt.UTC(),
	)
	return err
}

func (r *accessLogsRepo) ListRecentAccessLogs(ctx context.Context, limit int) ([]domain.AccessLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, ip_address, user_agent, accessed_at
		FROM access_logs ORDER BY accessed_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []domain.AccessLog
	for rows.Next() {
		var (
			l         domain.AccessLog
			ipAddress sql.NullString
			userAgent sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.UserID, &ipAddress, &userAgent, &l.AccessedAt); err != nil {
			return nil, err
		}
		l.IPAddress = mapNullString(ipAddress)
		l.UserAgent = mapNullString(userAgent)
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *accessLogsRepo) CountAccessLogs(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM access_logs`).Scan(&count)
	return count, err
}
