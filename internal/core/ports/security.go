package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// TokenIssuer issues bearer tokens that identify a user on later requests.
type TokenIssuer interface {
	Issue(ctx context.Context, userID kernel.ID) (string, error)
}
