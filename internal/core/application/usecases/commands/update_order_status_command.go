package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand asks to overwrite the status of an order.
// Only the status is shape-checked here: caller and order identifiers are
// resolved by the handler so that its precondition order is kept.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	callerID kernel.ID
	orderID  kernel.ID
	status   order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand returns an *errs.ValidationError when status is
// missing.
func NewUpdateOrderStatusCommand(callerID, orderID kernel.ID, status string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		callerID: callerID,
		orderID:  orderID,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setStatus(status); err != nil {
		return UpdateOrderStatusCommand{}, errs.NewValidationError(err)
	}

	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) CallerID() kernel.ID {
	return c.callerID
}

func (c UpdateOrderStatusCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderStatusCommand) setStatus(status string) error {
	s, err := order.NewStatus(status)
	if err != nil {
		return err
	}

	c.status = s
	return nil
}
