package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its items are always written and read together.
type OrderRepository interface {
	// Add persists a new order together with all of its items and assigns
	// the generated identifier to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable state of an existing order (its status).
	// Items are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	// Returns errs.ObjectNotFoundError with ParamName "order" when absent.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)
}
