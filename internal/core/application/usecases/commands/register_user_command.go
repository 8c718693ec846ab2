package commands

import (
	"errors"

	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
)

// RegisterUserCommand creates a new account.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	password string
	admin    bool

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand reports every violated field in one
// *errs.ValidationError.
func NewRegisterUserCommand(name, email, password string, admin bool) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		name:  name,
		email: email,
		admin: admin,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		user.ValidateProfile(name, email),
		cmd.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, errs.NewValidationError(err)
	}

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c RegisterUserCommand) Admin() bool {
	return c.admin
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < MinPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), MinPasswordLength, "unbounded")
	}

	c.password = password
	return nil
}
