package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per business operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans one transaction over the order and user repositories.
// Without Begin, repositories run directly against the connection pool.
// Rollback after Commit changes nothing and may be deferred.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Repositories are bound to the open transaction, if any.
	OrderRepository() OrderRepository
	UserRepository() UserRepository
}
