package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateSessionCommandIsNotConstructed = errors.New(
		"CreateSessionCommand must be created via NewCreateSessionCommand constructor",
	)
)

// CreateSessionCommand exchanges credentials for a bearer token.
type CreateSessionCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewCreateSessionCommand(email, password string) (CreateSessionCommand, error) {
	cmd := CreateSessionCommand{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	var violations []error
	if email == "" {
		violations = append(violations, errs.NewValueIsRequiredError("email"))
	}
	if password == "" {
		violations = append(violations, errs.NewValueIsRequiredError("password"))
	}
	if len(violations) > 0 {
		return CreateSessionCommand{}, errs.NewValidationError(errors.Join(violations...))
	}

	return cmd, nil
}

func (c CreateSessionCommand) Validate() error {
	return c.guard.Validate(ErrCreateSessionCommandIsNotConstructed)
}

func (c CreateSessionCommand) Email() string {
	return c.email
}

func (c CreateSessionCommand) Password() string {
	return c.password
}
