package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one product line of an order. It has no identity of its own and
// only exists inside the Order that owns it.
type Item struct {
	productID kernel.ID
	quantity  int

	guard guard.ConstructorGuard
}

// NewItem creates a line for productID. Quantity is copied verbatim and must
// be positive; stock is not checked.
func NewItem(productID kernel.ID, quantity int) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ProductID() kernel.ID {
	return i.productID
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setProductID(productID kernel.ID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("product id", err)
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	i.quantity = quantity
	return nil
}
