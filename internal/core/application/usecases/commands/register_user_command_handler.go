package commands

import (
	"context"
	"errors"
	"strings"

	"ordering/internal/core/domain/model/user"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// RegisterUserCommandHandler stores new accounts with hashed passwords.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns *errs.ObjectAlreadyExistsError when the email is taken.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, errs.NewStorageError("begin register user", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	email := strings.ToLower(cmd.Email())

	_, err := repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, errs.NewObjectAlreadyExistsError("user", email)
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, errs.NewStorageError("get user by email", err)
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	aggregate, err := user.NewUser(cmd.Name(), cmd.Email(), hash, cmd.Admin())
	if err != nil {
		return nil, errs.NewValidationError(err)
	}

	if err = repo.Add(ctx, aggregate); err != nil {
		return nil, storageError("add user", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewStorageError("commit user", err)
	}

	return aggregate, nil
}
