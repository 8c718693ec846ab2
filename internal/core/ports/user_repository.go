package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	// Add persists a new user and assigns the generated identifier.
	// Returns errs.ObjectAlreadyExistsError when the email is taken.
	Add(ctx context.Context, aggregate *user.User) error

	// Get resolves a caller identity.
	// Returns errs.ObjectNotFoundError with ParamName "user" when absent.
	Get(ctx context.Context, id kernel.ID) (*user.User, error)

	// GetByEmail looks a user up by normalized email.
	// Returns errs.ObjectNotFoundError with ParamName "user" when absent.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
