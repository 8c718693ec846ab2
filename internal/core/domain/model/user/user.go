// Package user provides the User aggregate: the identity that owns orders and
// whose admin flag gates status changes.
package user

import (
	"errors"
	"net/mail"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrUserIsNotConstructed    = errors.New("User must be created via NewUser constructor")
	ErrUserIDIsAlreadyAssigned = errors.New("user id is already assigned")
)

// User is read-only to the order core. Only registration creates one.
type User struct {
	id           kernel.ID
	name         string
	email        string
	passwordHash string
	admin        bool

	guard guard.ConstructorGuard
}

// NewUser registers a user. passwordHash must already be hashed; the domain
// never sees plain passwords. Email is normalized to lower case.
func NewUser(name, email, passwordHash string, admin bool) (*User, error) {
	u := &User{
		admin: admin,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// ValidateProfile checks the user-supplied profile fields without building a
// User, reporting every violation.
func ValidateProfile(name, email string) error {
	var probe User
	return errors.Join(probe.setName(name), probe.setEmail(email))
}

// RestoreUser rebuilds a stored user.
func RestoreUser(id kernel.ID, name, email, passwordHash string, admin bool) (*User, error) {
	u, err := NewUser(name, email, passwordHash, admin)
	if err != nil {
		return nil, err
	}
	if err = u.AssignID(id); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.ID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

// IsAdmin reports whether the user may change order status.
func (u *User) IsAdmin() bool {
	return u.admin
}

// AssignID records the identifier generated by the store.
func (u *User) AssignID(id kernel.ID) error {
	if u.id != 0 {
		return ErrUserIDIsAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("user id", err)
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidError("email")
	}

	u.email = strings.ToLower(email)
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}
