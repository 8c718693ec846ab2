package commands

import (
	"context"
	"errors"
	"strings"

	"ordering/internal/core/domain/model/user"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// CreateSessionResult is the issued token together with the signed-in user.
type CreateSessionResult struct {
	Token string
	User  *user.User
}

// CreateSessionCommandHandler checks credentials and issues bearer tokens.
// Unknown emails and wrong passwords fail the same way.
type CreateSessionCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
}

func NewCreateSessionCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
) CreateSessionCommandHandler {
	return CreateSessionCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

func (h *CreateSessionCommandHandler) Handle(ctx context.Context, cmd CreateSessionCommand) (CreateSessionResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateSessionResult{}, err
	}

	uow := h.uowFactory.Create()
	u, err := uow.UserRepository().GetByEmail(ctx, strings.ToLower(cmd.Email()))
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return CreateSessionResult{}, errs.NewNotAuthorizedError("create session")
		}
		return CreateSessionResult{}, errs.NewStorageError("get user by email", err)
	}

	if !h.hasher.Compare(u.PasswordHash(), cmd.Password()) {
		return CreateSessionResult{}, errs.NewNotAuthorizedError("create session")
	}

	token, err := h.tokens.Issue(ctx, u.ID())
	if err != nil {
		return CreateSessionResult{}, err
	}

	return CreateSessionResult{Token: token, User: u}, nil
}
