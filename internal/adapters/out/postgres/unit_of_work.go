// Package postgres provides the GORM-based persistence adapter: connection
// setup, schema migration and the Unit of Work that binds repositories to a
// single transaction.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	caller, err := uow.UserRepository().Get(ctx, callerID)
//	if err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction and
// changes nothing, so it is safe to defer unconditionally.
//
// Each UnitOfWork instance holds its own transaction. Goroutines must not
// share one.
package postgres

import (
	"context"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/userrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.ID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records every
// aggregate written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again while a transaction is open does nothing.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction and
// forgets the aggregates tracked so far.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository returns an order repository bound to the open transaction,
// or to the plain connection when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// UserRepository returns a user repository bound to the open transaction,
// or to the plain connection when none is open.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.ID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the aggregates written since the last Rollback.
func (uow *GormUnitOfWork) TrackedAggregates() []any {
	aggregates := make([]any, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		aggregates = append(aggregates, tracked.Aggregate)
	}
	return aggregates
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
