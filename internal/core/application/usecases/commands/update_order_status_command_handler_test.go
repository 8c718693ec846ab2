package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, id, userID int64) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.ID(1), 2)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.ID(id), kernel.ID(userID), order.Placed, "D",
		[]order.Item{item}, fixedNow)
	require.NoError(t, err)
	return o
}

func newUpdateStatusCommand(t *testing.T, callerID, orderID int64, status string) commands.UpdateOrderStatusCommand {
	t.Helper()
	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.ID(callerID), kernel.ID(orderID), status)
	require.NoError(t, err)
	return cmd
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, 5, 9)

	users := new(MockUserRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("Get", ctx, kernel.ID(1)).Return(restoredUser(1, true), nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, kernel.ID(5)).Return(stored, nil).Once(),
		orders.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil)
	updated, err := h.Handle(ctx, newUpdateStatusCommand(t, 1, 5, "shipped"))

	require.NoError(t, err)
	assert.Equal(t, order.Status("shipped"), updated.Status())
	assert.Equal(t, kernel.ID(9), updated.UserID())
	assert.Equal(t, "D", updated.Description())
	assert.Equal(t, fixedNow, updated.CreatedAt())
	assert.Len(t, updated.Items(), 1)

	users.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_AnyTransitionAllowed(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, 5, 9)

	users := new(MockUserRepository)
	users.On("Get", ctx, kernel.ID(1)).Return(restoredUser(1, true), nil)
	orders := new(MockOrderRepository)
	orders.On("Get", ctx, kernel.ID(5)).Return(stored, nil)
	orders.On("Update", ctx, stored).Return(nil)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("UserRepository").Return(users)
	uow.On("OrderRepository").Return(orders)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil)

	for _, status := range []string{"shipped", "delivered", "order placed", "shipped"} {
		updated, err := h.Handle(ctx, newUpdateStatusCommand(t, 1, 5, status))
		require.NoError(t, err)
		assert.Equal(t, order.Status(status), updated.Status())
	}
	orders.AssertNumberOfCalls(t, "Update", 4)
}

func TestUpdateOrderStatusCommandHandler_Handle_UserNotFound(t *testing.T) {
	ctx := t.Context()

	users := new(MockUserRepository)
	users.On("Get", ctx, kernel.ID(1)).Return(nil, errs.NewObjectNotFoundError("user", kernel.ID(1)))
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("UserRepository").Return(users)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil)
	_, err := h.Handle(ctx, newUpdateStatusCommand(t, 1, 5, "shipped"))

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "user", notFound.ParamName)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_OwnerWithoutAdminIsRejected(t *testing.T) {
	ctx := t.Context()

	users := new(MockUserRepository)
	users.On("Get", ctx, kernel.ID(9)).Return(restoredUser(9, false), nil)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("UserRepository").Return(users)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil)
	// order 5 belongs to user 9, the caller
	_, err := h.Handle(ctx, newUpdateStatusCommand(t, 9, 5, "shipped"))

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	users := new(MockUserRepository)
	users.On("Get", ctx, kernel.ID(1)).Return(restoredUser(1, true), nil)
	orders := new(MockOrderRepository)
	orders.On("Get", ctx, kernel.ID(404)).Return(nil, errs.NewObjectNotFoundError("order", kernel.ID(404)))
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("UserRepository").Return(users)
	uow.On("OrderRepository").Return(orders)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil)
	_, err := h.Handle(ctx, newUpdateStatusCommand(t, 1, 404, "shipped"))

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "order", notFound.ParamName)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_PolicyRejection(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, 5, 9)

	users := new(MockUserRepository)
	users.On("Get", ctx, kernel.ID(1)).Return(restoredUser(1, true), nil)
	orders := new(MockOrderRepository)
	orders.On("Get", ctx, kernel.ID(5)).Return(stored, nil)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("UserRepository").Return(users)
	uow.On("OrderRepository").Return(orders)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	frozen := order.TransitionPolicyFunc(func(_, _ order.Status) error {
		return errors.New("frozen")
	})
	h := commands.NewUpdateOrderStatusCommandHandler(factory, frozen)
	_, err := h.Handle(ctx, newUpdateStatusCommand(t, 1, 5, "shipped"))

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, order.Placed, stored.Status())
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, 5, 9)

	users := new(MockUserRepository)
	users.On("Get", ctx, kernel.ID(1)).Return(restoredUser(1, true), nil)
	orders := new(MockOrderRepository)
	orders.On("Get", ctx, kernel.ID(5)).Return(stored, nil)
	orders.On("Update", ctx, stored).Return(errors.New("update error"))
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("UserRepository").Return(users)
	uow.On("OrderRepository").Return(orders)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil)
	_, err := h.Handle(ctx, newUpdateStatusCommand(t, 1, 5, "shipped"))

	require.ErrorIs(t, err, errs.ErrStorage)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockUoWFactory)
	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil)

	_, err := h.Handle(t.Context(), commands.UpdateOrderStatusCommand{})

	require.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

