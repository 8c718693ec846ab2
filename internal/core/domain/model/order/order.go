package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// CreatedAtOffset is subtracted from the capture time when an order is placed.
// Stored creation timestamps have always carried this shift and clients
// compensate for it, so it is kept as is.
const CreatedAtOffset = 3 * time.Hour

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order would be created without product lines.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("products")

	// ErrOrderIDIsAlreadyAssigned is returned when a persisted order is given a second identifier.
	ErrOrderIDIsAlreadyAssigned = errors.New("order id is already assigned")
)

// Order is the aggregate root of a user's purchase request. It owns its
// items exclusively; after creation only the status changes.
//
// Order follows these invariants:
//   - Belongs to exactly one user, which never changes
//   - Has at least one item at creation
//   - Status and description are never empty
//   - Identifier is assigned by the store once, on first save
type Order struct {
	id          kernel.ID
	userID      kernel.ID
	status      Status
	description string
	items       []Item
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewOrder places a new order for userID. The order starts in the Placed
// status and its creation time is placedAt shifted back by CreatedAtOffset.
//
// Every invalid argument is reported, joined into a single error.
//
// Example:
//
//	item, _ := order.NewItem(kernel.ID(3), 2)
//	o, err := order.NewOrder(callerID, "two pizzas", []order.Item{item}, time.Now())
func NewOrder(userID kernel.ID, description string, items []Item, placedAt time.Time) (*Order, error) {
	o := &Order{
		status:    Placed,
		createdAt: placedAt.Add(-CreatedAtOffset),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setDescription(description),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read from storage. It performs the same
// checks as NewOrder except that an empty item list is tolerated, since rows
// written before the invariant existed may lack items.
func RestoreOrder(
	id kernel.ID,
	userID kernel.ID,
	status Status,
	description string,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.AssignID(id),
		o.setUserID(userID),
		o.setStatus(status),
		o.setDescription(description),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	o.items = append([]Item(nil), items...)

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier. Unsaved orders are never equal.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id.IsEqual(other.id)
}

// ID returns the store-assigned identifier, or zero before the first save.
func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) UserID() kernel.ID {
	return o.userID
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Description() string {
	return o.description
}

// Items returns a copy of the order lines in creation order.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignID records the identifier generated by the store.
func (o *Order) AssignID(id kernel.ID) error {
	if o.id != 0 {
		return ErrOrderIDIsAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	o.id = id
	return nil
}

// ChangeStatus overwrites the status once policy accepts the transition.
// Authorization is the caller's concern.
func (o *Order) ChangeStatus(to Status, policy TransitionPolicy) error {
	if err := to.Validate(); err != nil {
		return err
	}

	if policy != nil {
		if err := policy.Allow(o.status, to); err != nil {
			return fmt.Errorf("status transition %q -> %q rejected: %w", o.status, to, err)
		}
	}

	o.status = to
	return nil
}

func (o *Order) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("user id", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	o.description = description
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = append([]Item(nil), items...)
	return nil
}
