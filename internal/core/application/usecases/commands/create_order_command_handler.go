package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// CreateOrderCommandHandler places orders. The order and all of its items
// are written in one transaction, so a failure leaves nothing behind.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, time.Now)
//	cmd, _ := NewCreateOrderCommand(callerID, "D", []ProductLine{{ProductID: 1, Quantity: 2}})
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// now supplies the capture time of each call.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, now func() time.Time) CreateOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle resolves the caller, builds the aggregate and persists it.
//
// Errors:
//   - *errs.ValidationError when the command is malformed
//   - *errs.ObjectNotFoundError ("user") when the caller does not exist
//   - *errs.StorageError for any persistence failure
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	placedAt := h.now()

	lines := cmd.Lines()
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		item, err := order.NewItem(kernel.ID(line.ProductID), line.Quantity)
		if err != nil {
			return nil, errs.NewValidationError(err)
		}
		items = append(items, item)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, errs.NewStorageError("begin create order", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	caller, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return nil, storageError("get user", err)
	}

	aggregate, err := order.NewOrder(caller.ID(), cmd.Description(), items, placedAt)
	if err != nil {
		return nil, errs.NewValidationError(err)
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, errs.NewStorageError("add order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewStorageError("commit order", err)
	}

	return aggregate, nil
}
