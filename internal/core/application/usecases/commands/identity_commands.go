package commands

import (
	"errors"
	"unicode/utf8"

	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	// PasswordMinLength applies to passwords chosen in settings.
	PasswordMinLength = 8
	// PasswordMaxBytes is the longest password bcrypt accepts.
	PasswordMaxBytes = 72
)

var (
	ErrSignupShipperCommandIsNotConstructed = errors.New(
		"SignupShipperCommand must be created via NewSignupShipperCommand constructor")
	ErrIssueTokenCommandIsNotConstructed = errors.New(
		"IssueTokenCommand must be created via NewIssueTokenCommand constructor")
	ErrUpdateUserSettingsCommandIsNotConstructed = errors.New(
		"UpdateUserSettingsCommand must be created via NewUpdateUserSettingsCommand constructor")
	ErrUpdateCompanySettingsCommandIsNotConstructed = errors.New(
		"UpdateCompanySettingsCommand must be created via NewUpdateCompanySettingsCommand constructor")
	ErrEnsureAdminCommandIsNotConstructed = errors.New(
		"EnsureAdminCommand must be created via NewEnsureAdminCommand constructor")
)

// CompanyDetails is the company part of a signup or bootstrap request.
type CompanyDetails struct {
	Name      string
	GSTNumber string
	Address   string
}

// DefaultAdminCompany is the company created for a bootstrapped admin.
var DefaultAdminCompany = CompanyDetails{Name: "LogiSoft Admin Corp", GSTNumber: "ADMIN001", Address: "HQ"}

// SignupShipperCommand creates a company together with its first MSME account.
type SignupShipperCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string
	company  CompanyDetails

	guard guard.ConstructorGuard
}

func NewSignupShipperCommand(email, password string, company CompanyDetails) (SignupShipperCommand, error) {
	var emailErr, passwordErr error
	if user.NormalizeEmail(email) == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	switch {
	case password == "":
		passwordErr = errs.NewValueIsRequiredError("password")
	case len(password) > PasswordMaxBytes:
		passwordErr = errs.NewValueIsOutOfRangeError("password length", len(password), 1, PasswordMaxBytes)
	}
	if err := errors.Join(emailErr, passwordErr); err != nil {
		return SignupShipperCommand{}, err
	}

	return SignupShipperCommand{
		email:    user.NormalizeEmail(email),
		password: password,
		company:  company,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SignupShipperCommand) Validate() error {
	return c.guard.Validate(ErrSignupShipperCommandIsNotConstructed)
}

func (c SignupShipperCommand) Email() string           { return c.email }
func (c SignupShipperCommand) Password() string        { return c.password }
func (c SignupShipperCommand) Company() CompanyDetails { return c.company }

// IssueTokenCommand exchanges credentials for a bearer token.
type IssueTokenCommand struct {
	username string
	password string

	guard guard.ConstructorGuard
}

func NewIssueTokenCommand(username, password string) (IssueTokenCommand, error) {
	var usernameErr, passwordErr error
	if user.NormalizeEmail(username) == "" {
		usernameErr = errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(usernameErr, passwordErr); err != nil {
		return IssueTokenCommand{}, err
	}

	return IssueTokenCommand{
		username: user.NormalizeEmail(username),
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c IssueTokenCommand) Validate() error {
	return c.guard.Validate(ErrIssueTokenCommandIsNotConstructed)
}

func (c IssueTokenCommand) Username() string { return c.username }
func (c IssueTokenCommand) Password() string { return c.password }

// UpdateUserSettingsCommand changes the caller's email and/or password.
// A nil field is left unchanged.
type UpdateUserSettingsCommand struct {
	actor           user.Actor
	email           *string
	currentPassword *string
	newPassword     *string

	guard guard.ConstructorGuard
}

func NewUpdateUserSettingsCommand(
	actor user.Actor,
	email, currentPassword, newPassword *string,
) (UpdateUserSettingsCommand, error) {
	var passwordErr error
	if newPassword != nil {
		n := utf8.RuneCountInString(*newPassword)
		if n < PasswordMinLength || len(*newPassword) > PasswordMaxBytes {
			passwordErr = errs.NewValueIsOutOfRangeError("new_password length", n, PasswordMinLength, PasswordMaxBytes)
		}
	}
	if err := errors.Join(validateActor(actor), passwordErr); err != nil {
		return UpdateUserSettingsCommand{}, err
	}

	return UpdateUserSettingsCommand{
		actor:           actor,
		email:           email,
		currentPassword: currentPassword,
		newPassword:     newPassword,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateUserSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserSettingsCommandIsNotConstructed)
}

func (c UpdateUserSettingsCommand) Actor() user.Actor        { return c.actor }
func (c UpdateUserSettingsCommand) Email() *string           { return c.email }
func (c UpdateUserSettingsCommand) CurrentPassword() *string { return c.currentPassword }
func (c UpdateUserSettingsCommand) NewPassword() *string     { return c.newPassword }

// UpdateCompanySettingsCommand edits the caller's company. A nil field is left unchanged.
type UpdateCompanySettingsCommand struct {
	actor     user.Actor
	name      *string
	gstNumber *string
	address   *string

	guard guard.ConstructorGuard
}

func NewUpdateCompanySettingsCommand(
	actor user.Actor,
	name, gstNumber, address *string,
) (UpdateCompanySettingsCommand, error) {
	if err := validateActor(actor); err != nil {
		return UpdateCompanySettingsCommand{}, err
	}

	return UpdateCompanySettingsCommand{
		actor:     actor,
		name:      name,
		gstNumber: gstNumber,
		address:   address,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCompanySettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCompanySettingsCommandIsNotConstructed)
}

func (c UpdateCompanySettingsCommand) Actor() user.Actor  { return c.actor }
func (c UpdateCompanySettingsCommand) Name() *string      { return c.name }
func (c UpdateCompanySettingsCommand) GSTNumber() *string { return c.gstNumber }
func (c UpdateCompanySettingsCommand) Address() *string   { return c.address }

// EnsureAdminCommand makes sure an admin account with the given credentials exists.
type EnsureAdminCommand struct {
	email    string
	password string
	company  CompanyDetails

	guard guard.ConstructorGuard
}

func NewEnsureAdminCommand(email, password string, company CompanyDetails) (EnsureAdminCommand, error) {
	var emailErr, passwordErr error
	if user.NormalizeEmail(email) == "" {
		emailErr = errs.NewValueIsRequiredError("admin email")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("admin password")
	}
	if err := errors.Join(emailErr, passwordErr); err != nil {
		return EnsureAdminCommand{}, err
	}

	return EnsureAdminCommand{
		email:    user.NormalizeEmail(email),
		password: password,
		company:  company,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c EnsureAdminCommand) Validate() error {
	return c.guard.Validate(ErrEnsureAdminCommandIsNotConstructed)
}

func (c EnsureAdminCommand) Email() string           { return c.email }
func (c EnsureAdminCommand) Password() string        { return c.password }
func (c EnsureAdminCommand) Company() CompanyDetails { return c.company }
