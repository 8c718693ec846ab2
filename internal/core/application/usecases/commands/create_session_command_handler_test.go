package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateSessionCommand(t *testing.T) {
	_, err := commands.NewCreateSessionCommand("", "")

	var validationErr *errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		"value is required: email",
		"value is required: password",
	}, validationErr.Messages())
}

func newSessionFixture(t *testing.T) (*MockUserRepository, *MockPasswordHasher, *MockTokenIssuer, commands.CreateSessionCommandHandler) {
	t.Helper()
	users := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokens := new(MockTokenIssuer)
	uow := new(MockUoW)
	uow.On("UserRepository").Return(users)
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow)
	return users, hasher, tokens, commands.NewCreateSessionCommandHandler(factory, hasher, tokens)
}

func TestCreateSessionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateSessionCommand("User@Example.com", "secret1")
	require.NoError(t, err)

	users, hasher, tokens, h := newSessionFixture(t)
	stored := restoredUser(4, true)
	users.On("GetByEmail", ctx, "user@example.com").Return(stored, nil).Once()
	hasher.On("Compare", "hash", "secret1").Return(true).Once()
	tokens.On("Issue", ctx, kernel.ID(4)).Return("token", nil).Once()

	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "token", result.Token)
	assert.Same(t, stored, result.User)
}

func TestCreateSessionCommandHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateSessionCommand("nobody@example.com", "secret1")
	require.NoError(t, err)

	users, hasher, tokens, h := newSessionFixture(t)
	users.On("GetByEmail", ctx, "nobody@example.com").
		Return(nil, errs.NewObjectNotFoundError("user", "nobody@example.com"))

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	hasher.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
	tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestCreateSessionCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateSessionCommand("user@example.com", "wrong!")
	require.NoError(t, err)

	users, hasher, tokens, h := newSessionFixture(t)
	users.On("GetByEmail", ctx, "user@example.com").Return(restoredUser(4, false), nil)
	hasher.On("Compare", "hash", "wrong!").Return(false)

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestCreateSessionCommandHandler_Handle_StorageFailure(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateSessionCommand("user@example.com", "secret1")
	require.NoError(t, err)

	users, _, _, h := newSessionFixture(t)
	users.On("GetByEmail", ctx, "user@example.com").Return(nil, errors.New("timeout"))

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStorage)
	require.NotErrorIs(t, err, errs.ErrNotAuthorized)
}
