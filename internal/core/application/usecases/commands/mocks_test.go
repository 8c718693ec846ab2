package commands_test

import (
	"context"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) bool {
	args := m.Called(hash, password)
	return args.Bool(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(ctx context.Context, userID kernel.ID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func restoredUser(id int64, admin bool) *user.User {
	u, err := user.RestoreUser(kernel.ID(id), "User", "user@example.com", "hash", admin)
	if err != nil {
		panic(err)
	}
	return u
}
