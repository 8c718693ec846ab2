package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// ProductLine is one {id, quantity} pair of a create-order request.
type ProductLine struct {
	ProductID int64
	Quantity  int
}

// CreateOrderCommand represents a caller's request to place an order.
// The caller is passed explicitly; it is resolved by the handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(callerID, "birthday", []ProductLine{
//	    {ProductID: 1, Quantity: 2},
//	    {ProductID: 2, Quantity: 5},
//	})
//	if err != nil {
//	    // err is an *errs.ValidationError listing every violation
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.ID
	description string
	lines       []ProductLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks the request shape. Every violated field is
// reported in a single *errs.ValidationError; validation never stops at the
// first problem.
func NewCreateOrderCommand(userID kernel.ID, description string, lines []ProductLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDescription(description),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, errs.NewValidationError(err)
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the caller placing the order.
func (c CreateOrderCommand) UserID() kernel.ID {
	return c.userID
}

func (c CreateOrderCommand) Description() string {
	return c.description
}

// Lines returns a copy of the requested product lines in request order.
func (c CreateOrderCommand) Lines() []ProductLine {
	return append([]ProductLine(nil), c.lines...)
}

func (c *CreateOrderCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}

func (c *CreateOrderCommand) setLines(lines []ProductLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("products")
	}

	violations := make([]error, 0)
	for i, line := range lines {
		switch {
		case line.ProductID == 0:
			violations = append(violations, errs.NewValueIsRequiredError(fmt.Sprintf("products[%d].id", i)))
		case line.ProductID < 0:
			violations = append(violations, errs.NewValueIsInvalidError(fmt.Sprintf("products[%d].id", i)))
		}
		if line.Quantity <= 0 {
			violations = append(violations, errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("products[%d].quantity", i), line.Quantity, 1, "unbounded"))
		}
	}
	if len(violations) > 0 {
		return errors.Join(violations...)
	}

	c.lines = append([]ProductLine(nil), lines...)
	return nil
}
