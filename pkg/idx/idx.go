// Package idx mints ULID row identifiers. Invited users, sessions and
// access log entries are all keyed by one, so listing by id is listing by
// creation order.
package idx

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a ULID in its canonical 26-character string form.
type ID string

// String returns the canonical string form.
func (id ID) String() string { return string(id) }

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// New returns a fresh ID stamped with the current UTC time. IDs minted
// within the same millisecond still sort in mint order thanks to the
// monotonic entropy source.
func New() ID {
	return NewAt(time.Now().UTC())
}

// NewAt mints an ID carrying the given timestamp. Intended for tests that
// need a known ordering.
func NewAt(t time.Time) ID {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ID(ulid.MustNew(ulid.Timestamp(t), entropy).String())
}
