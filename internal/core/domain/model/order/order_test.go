package order_test

import (
	"errors"
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, productID int64, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.ID(productID), quantity)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("should keep product and quantity", func(t *testing.T) {
		item, err := order.NewItem(kernel.ID(3), 5)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, kernel.ID(3), item.ProductID())
		assert.Equal(t, 5, item.Quantity())
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		_, err := order.NewItem(kernel.ID(0), 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var item order.Item
		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	placedAt := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	items := []order.Item{mustItem(t, 1, 2), mustItem(t, 2, 5)}

	t.Run("should create placed order with shifted timestamp", func(t *testing.T) {
		o, err := order.NewOrder(kernel.ID(9), "D", items, placedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, kernel.ID(0), o.ID())
		assert.Equal(t, kernel.ID(9), o.UserID())
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, "D", o.Description())
		assert.Equal(t, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), o.CreatedAt())
		require.Len(t, o.Items(), 2)
		assert.Equal(t, 2, o.Items()[0].Quantity())
		assert.Equal(t, 5, o.Items()[1].Quantity())
	})

	t.Run("should copy items", func(t *testing.T) {
		lines := []order.Item{mustItem(t, 1, 1)}
		o, err := order.NewOrder(kernel.ID(9), "D", lines, placedAt)
		require.NoError(t, err)

		lines[0] = mustItem(t, 4, 4)
		returned := o.Items()
		returned[0] = mustItem(t, 5, 5)

		assert.Equal(t, kernel.ID(1), o.Items()[0].ProductID())
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.ID(9), "D", nil, placedAt)

		require.ErrorIs(t, err, order.ErrOrderHasNoItems)
		assert.Nil(t, o)
	})

	t.Run("should report every violation at once", func(t *testing.T) {
		o, err := order.NewOrder(kernel.ID(0), "", nil, placedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "user id")
		assert.Contains(t, err.Error(), "description")
		assert.Contains(t, err.Error(), "products")
	})

	t.Run("should reject items built as literals", func(t *testing.T) {
		_, err := order.NewOrder(kernel.ID(9), "D", []order.Item{{}}, placedAt)

		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("should keep stored values", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.ID(7), kernel.ID(9), "shipped", "D", []order.Item{mustItem(t, 1, 1)}, createdAt)

		require.NoError(t, err)
		assert.Equal(t, kernel.ID(7), o.ID())
		assert.Equal(t, order.Status("shipped"), o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should tolerate missing items", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.ID(7), kernel.ID(9), "shipped", "D", nil, createdAt)

		require.NoError(t, err)
		assert.Empty(t, o.Items())
	})

	t.Run("should reject empty status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.ID(7), kernel.ID(9), "", "D", nil, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_AssignID(t *testing.T) {
	o, err := order.NewOrder(kernel.ID(9), "D", []order.Item{mustItem(t, 1, 1)}, time.Now())
	require.NoError(t, err)

	require.Error(t, o.AssignID(kernel.ID(0)))
	require.NoError(t, o.AssignID(kernel.ID(11)))
	assert.Equal(t, kernel.ID(11), o.ID())
	require.ErrorIs(t, o.AssignID(kernel.ID(12)), order.ErrOrderIDIsAlreadyAssigned)
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		o, err := order.RestoreOrder(kernel.ID(7), kernel.ID(9), order.Placed, "D", nil, time.Now())
		require.NoError(t, err)
		return o
	}

	t.Run("should allow any sequence under permissive policy", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus("shipped", order.PermissiveTransitions{}))
		assert.Equal(t, order.Status("shipped"), o.Status())

		require.NoError(t, o.ChangeStatus("delivered", order.PermissiveTransitions{}))
		assert.Equal(t, order.Status("delivered"), o.Status())

		require.NoError(t, o.ChangeStatus(order.Placed, order.PermissiveTransitions{}))
		assert.Equal(t, order.Placed, o.Status())
	})

	t.Run("should keep status when policy rejects", func(t *testing.T) {
		o := newOrder(t)
		errRejected := errors.New("rejected")

		err := o.ChangeStatus("shipped", order.TransitionPolicyFunc(func(_, _ order.Status) error {
			return errRejected
		}))

		require.ErrorIs(t, err, errRejected)
		assert.Equal(t, order.Placed, o.Status())
	})

	t.Run("should reject empty status", func(t *testing.T) {
		o := newOrder(t)

		require.ErrorIs(t, o.ChangeStatus("", order.PermissiveTransitions{}), errs.ErrValueIsRequired)
		assert.Equal(t, order.Placed, o.Status())
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)

	literal := &order.Order{}
	require.ErrorIs(t, literal.Validate(), order.ErrOrderIsNotConstructed)
}
