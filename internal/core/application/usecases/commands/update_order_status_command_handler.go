package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler is the only path that mutates a stored
// order. Its guards run in a fixed order, each with its own error:
//
//  1. caller exists           -> *errs.ObjectNotFoundError ("user")
//  2. caller is an admin      -> *errs.NotAuthorizedError, even for the order's owner
//  3. order exists            -> *errs.ObjectNotFoundError ("order")
//
// Which transitions are legal is left to the TransitionPolicy.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	policy     order.TransitionPolicy
}

// NewUpdateOrderStatusCommandHandler creates the handler. A nil policy means
// order.PermissiveTransitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	policy order.TransitionPolicy,
) UpdateOrderStatusCommandHandler {
	if policy == nil {
		policy = order.PermissiveTransitions{}
	}
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle applies the new status and returns the updated order.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, errs.NewStorageError("begin update order status", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	caller, err := uow.UserRepository().Get(ctx, cmd.CallerID())
	if err != nil {
		return nil, storageError("get user", err)
	}

	if !caller.IsAdmin() {
		return nil, errs.NewNotAuthorizedError("update order status")
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, storageError("get order", err)
	}

	if err = aggregate.ChangeStatus(cmd.Status(), h.policy); err != nil {
		return nil, errs.NewValidationError(err)
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, storageError("update order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewStorageError("commit order status", err)
	}

	return aggregate, nil
}
