package http_test

import (
	"context"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/auth"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockUpdateOrderStatusHandler struct{ mock.Mock }

func (m *MockUpdateOrderStatusHandler) Handle(
	ctx context.Context,
	cmd commands.UpdateOrderStatusCommand,
) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockListUserOrdersHandler struct{ mock.Mock }

func (m *MockListUserOrdersHandler) Handle(
	ctx context.Context,
	query queries.ListUserOrdersQuery,
) ([]queries.ListUserOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	orders, _ := args.Get(0).([]queries.ListUserOrdersQueryResponse)
	return orders, args.Error(1)
}

type MockRegisterUserHandler struct{ mock.Mock }

func (m *MockRegisterUserHandler) Handle(ctx context.Context, cmd commands.RegisterUserCommand) (*user.User, error) {
	args := m.Called(ctx, cmd)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

type MockCreateSessionHandler struct{ mock.Mock }

func (m *MockCreateSessionHandler) Handle(
	ctx context.Context,
	cmd commands.CreateSessionCommand,
) (commands.CreateSessionResult, error) {
	args := m.Called(ctx, cmd)
	result, _ := args.Get(0).(commands.CreateSessionResult)
	return result, args.Error(1)
}

type MockOrderMetrics struct{ mock.Mock }

func (m *MockOrderMetrics) OrderCreated() {
	m.Called()
}

func (m *MockOrderMetrics) StatusUpdated(status string) {
	m.Called(status)
}

// staticTokens accepts exactly the tokens it was built with.
type staticTokens map[string]kernel.ID

func (s staticTokens) Parse(token string) (kernel.ID, error) {
	id, ok := s[token]
	if !ok {
		return 0, auth.ErrInvalidToken
	}
	return id, nil
}
