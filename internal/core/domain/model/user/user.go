package user

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// EmailMaxLength bounds stored email addresses.
const EmailMaxLength = 255

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User is an account able to authenticate. Emails are stored trimmed and
// lower-cased so lookups are case-insensitive. The password is only ever held
// as a hash.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	role         Role
	companyID    *kernel.UUID

	isConstructed bool
}

// NewUser creates an account. companyID may be nil.
func NewUser(id kernel.UUID, email string, passwordHash string, role Role, companyID *kernel.UUID) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
		u.setCompany(companyID),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds an account from storage.
func RestoreUser(id kernel.UUID, email string, passwordHash string, role Role, companyID *kernel.UUID) (*User, error) {
	return NewUser(id, email, passwordHash, role, companyID)
}

// NormalizeEmail returns the canonical form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID         { return u.id }
func (u *User) Email() string           { return u.email }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) Role() Role              { return u.role }
func (u *User) CompanyID() *kernel.UUID { return u.companyID }

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

func (u *User) ChangeEmail(email string) error {
	return u.setEmail(email)
}

func (u *User) ChangePasswordHash(passwordHash string) error {
	return u.setPasswordHash(passwordHash)
}

func (u *User) ChangeRole(role Role) error {
	return u.setRole(role)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if len(email) > EmailMaxLength {
		return errs.NewValueIsOutOfRangeError("email length", len(email), 3, EmailMaxLength)
	}
	if at := strings.Index(email, "@"); at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setCompany(companyID *kernel.UUID) error {
	if companyID == nil {
		return nil
	}
	if err := companyID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("company_id", err)
	}
	id := *companyID
	u.companyID = &id
	return nil
}
