package store

import (
	"context"
	"errors"
	"time"

	"github.com/aegislegal/demogate/internal/gate/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Sessions() Sessions
	AccessLogs() AccessLogs

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new invited user (id and invite code are provided
	// by the caller). The invite_code unique constraint is the last line of
	// defense against a generation collision; violations surface as
	// ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.InvitedUser) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.InvitedUser, error)

	// GetUserByInviteCode returns the user owning the code, active or not.
	// Activity checks belong to the caller so every rejection looks the same
	// to the client.
	GetUserByInviteCode(ctx context.Context, code string) (domain.InvitedUser, error)

	// ListUsers returns every invited user, active and inactive.
	ListUsers(ctx context.Context) ([]domain.InvitedUser, error)

	// UpdateAccessedAt sets accessed_at to the given time. Last write wins
	// under concurrent logins.
	UpdateAccessedAt(ctx context.Context, userID string, at time.Time) error

	// DeactivateUser flips is_active off. History is kept; rows are never
	// physically deleted.
	DeactivateUser(ctx context.Context, userID string) error

	// CountUsers returns the number of invited users.
	CountUsers(ctx context.Context) (int, error)

	// CountAccessedUsers returns the number of users with a non-null accessed_at.
	CountAccessedUsers(ctx context.Context) (int, error)
}

type Sessions interface {
	// CreateSession stores a new session record. The token unique constraint
	// backs up generation entropy; violations surface as ErrAlreadyExists.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByToken returns the session by its exact token, expired or
	// not. Expiry checks and cleanup belong to the caller.
	GetSessionByToken(ctx context.Context, token string) (domain.Session, error)

	// DeleteSessionByToken removes one session. Deleting an already-removed
	// session is not an error.
	DeleteSessionByToken(ctx context.Context, token string) error

	// DeleteExpiredSessions is housekeeping for sessions the lazy guard
	// cleanup never touched.
	DeleteExpiredSessions(ctx context.Context) error
}

type AccessLogs interface {
	// CreateAccessLog appends one audit record.
	CreateAccessLog(ctx context.Context, l domain.AccessLog) error

	// ListRecentAccessLogs returns up to limit of the most recent records,
	// newest first.
	ListRecentAccessLogs(ctx context.Context, limit int) ([]domain.AccessLog, error)

	// CountAccessLogs returns the total number of audit records.
	CountAccessLogs(ctx context.Context) (int, error)
}
