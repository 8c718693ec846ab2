// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"errors"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserRepoFactory provides access to user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// UserUoW manages transactions for user-only operations
	// (registration and sessions).
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// UoW manages transactions that resolve the caller and touch orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   caller, err := uow.UserRepository().Get(ctx, callerID)
	//   // ... perform operations on uow.OrderRepository()
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		UserRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for order operations.
	UoWFactory interface {
		Create() UoW
	}
)

// storageError keeps lookup failures as they are and turns anything else
// into an errs.StorageError for operation.
func storageError(operation string, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrObjectAlreadyExists) {
		return err
	}
	return errs.NewStorageError(operation, err)
}
