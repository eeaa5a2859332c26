package cryptox

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Token size constants (in bytes before encoding).
const (
	// TokenSize128 provides 128 bits of entropy (32 hex chars). Invite codes.
	TokenSize128 = 16
	// TokenSize256 provides 256 bits of entropy (64 hex chars). Session tokens.
	TokenSize256 = 32
)

// GenerateToken creates a cryptographically secure random token of the
// specified byte length, hex encoded. Returns an error if the random number
// generator fails.
//
// Collision resistance is statistical only; callers persisting tokens must
// still back the column with a unique constraint.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// MustGenerateToken is like GenerateToken but panics on error.
// Use this only during initialization or in contexts where failure is unrecoverable.
func MustGenerateToken(size int) string {
	token, err := GenerateToken(size)
	if err != nil {
		panic(fmt.Sprintf("cryptox: failed to generate token: %v", err))
	}
	return token
}
