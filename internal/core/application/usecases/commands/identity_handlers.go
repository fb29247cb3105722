package commands

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/domain/model/company"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

const badCredentials = "incorrect username or password"

// AccountResult is an account with the company it belongs to. Company may be nil.
type AccountResult struct {
	User    *user.User
	Company *company.Company
}

// SignupShipperCommandHandler creates the company and its MSME account together.
type SignupShipperCommandHandler struct {
	uowFactory IdentityUoWFactory
	hasher     ports.PasswordHasher
}

func NewSignupShipperCommandHandler(
	uowFactory IdentityUoWFactory,
	hasher ports.PasswordHasher,
) SignupShipperCommandHandler {
	return SignupShipperCommandHandler{uowFactory: uowFactory, hasher: hasher}
}

func (h SignupShipperCommandHandler) Handle(ctx context.Context, cmd SignupShipperCommand) (AccountResult, error) {
	if err := cmd.Validate(); err != nil {
		return AccountResult{}, err
	}

	details := cmd.Company()
	c, err := company.NewCompany(kernel.NewUUID(), details.Name, details.GSTNumber, details.Address)
	if err != nil {
		return AccountResult{}, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return AccountResult{}, err
	}

	companyID := c.ID()
	u, err := user.NewUser(kernel.NewUUID(), cmd.Email(), hash, user.RoleShipper, &companyID)
	if err != nil {
		return AccountResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AccountResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if err = ensureEmailIsFree(ctx, userRepo, u.Email(), nil); err != nil {
		return AccountResult{}, err
	}

	if err = uow.CompanyRepository().Add(ctx, c); err != nil {
		return AccountResult{}, err
	}
	if err = userRepo.Add(ctx, u); err != nil {
		return AccountResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AccountResult{}, err
	}

	return AccountResult{User: u, Company: c}, nil
}

// IssueTokenCommandHandler verifies credentials and signs an access token.
// Unknown accounts and wrong passwords fail the same way.
type IssueTokenCommandHandler struct {
	uowFactory IdentityUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
}

func NewIssueTokenCommandHandler(
	uowFactory IdentityUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
) IssueTokenCommandHandler {
	return IssueTokenCommandHandler{uowFactory: uowFactory, hasher: hasher, tokens: tokens}
}

func (h IssueTokenCommandHandler) Handle(ctx context.Context, cmd IssueTokenCommand) (ports.AccessToken, error) {
	if err := cmd.Validate(); err != nil {
		return ports.AccessToken{}, err
	}

	uow := h.uowFactory.Create()
	u, err := uow.UserRepository().GetByEmail(ctx, cmd.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ports.AccessToken{}, errs.NewUnauthenticatedError(badCredentials)
		}
		return ports.AccessToken{}, err
	}

	if err = h.hasher.Compare(u.PasswordHash(), cmd.Password()); err != nil {
		return ports.AccessToken{}, errs.NewUnauthenticatedErrorWithCause(badCredentials, err)
	}

	return h.tokens.Issue(ctx, u)
}

// UpdateUserSettingsCommandHandler changes the caller's email and password.
type UpdateUserSettingsCommandHandler struct {
	uowFactory IdentityUoWFactory
	hasher     ports.PasswordHasher
}

func NewUpdateUserSettingsCommandHandler(
	uowFactory IdentityUoWFactory,
	hasher ports.PasswordHasher,
) UpdateUserSettingsCommandHandler {
	return UpdateUserSettingsCommandHandler{uowFactory: uowFactory, hasher: hasher}
}

func (h UpdateUserSettingsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateUserSettingsCommand,
) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, cmd.Actor().UserID)
	if err != nil {
		return nil, err
	}

	if email := cmd.Email(); email != nil && user.NormalizeEmail(*email) != u.Email() {
		id := u.ID()
		if err = ensureEmailIsFree(ctx, userRepo, user.NormalizeEmail(*email), &id); err != nil {
			return nil, err
		}
		if err = u.ChangeEmail(*email); err != nil {
			return nil, err
		}
	}

	if newPassword := cmd.NewPassword(); newPassword != nil {
		current := cmd.CurrentPassword()
		if current == nil {
			return nil, errs.NewForbiddenError("current_password is required to change the password")
		}
		if err = h.hasher.Compare(u.PasswordHash(), *current); err != nil {
			return nil, errs.NewForbiddenErrorWithCause("current_password is incorrect", err)
		}

		hash, hashErr := h.hasher.Hash(*newPassword)
		if hashErr != nil {
			return nil, hashErr
		}
		if err = u.ChangePasswordHash(hash); err != nil {
			return nil, err
		}
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}

// UpdateCompanySettingsCommandHandler edits the company the caller belongs to.
type UpdateCompanySettingsCommandHandler struct {
	uowFactory IdentityUoWFactory
}

func NewUpdateCompanySettingsCommandHandler(uowFactory IdentityUoWFactory) UpdateCompanySettingsCommandHandler {
	return UpdateCompanySettingsCommandHandler{uowFactory: uowFactory}
}

func (h UpdateCompanySettingsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCompanySettingsCommand,
) (*company.Company, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().Get(ctx, cmd.Actor().UserID)
	if err != nil {
		return nil, err
	}
	if u.CompanyID() == nil {
		return nil, errs.NewObjectNotFoundError("company of user", u.ID().String())
	}

	companyRepo := uow.CompanyRepository()
	c, err := companyRepo.Get(ctx, *u.CompanyID())
	if err != nil {
		return nil, err
	}

	if err = c.Update(cmd.Name(), cmd.GSTNumber(), cmd.Address()); err != nil {
		return nil, err
	}

	if err = companyRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// EnsureAdminCommandHandler creates the admin account on first start and
// resets its password and role on every later one.
type EnsureAdminCommandHandler struct {
	uowFactory IdentityUoWFactory
	hasher     ports.PasswordHasher
	logger     *slog.Logger
}

func NewEnsureAdminCommandHandler(
	uowFactory IdentityUoWFactory,
	hasher ports.PasswordHasher,
	logger *slog.Logger,
) EnsureAdminCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return EnsureAdminCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		logger:     logger.With("component", "EnsureAdminCommandHandler"),
	}
}

func (h EnsureAdminCommandHandler) Handle(ctx context.Context, cmd EnsureAdminCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	u, err := userRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		if err = errors.Join(u.ChangePasswordHash(hash), u.ChangeRole(user.RoleAdmin)); err != nil {
			return nil, err
		}
		if err = userRepo.Update(ctx, u); err != nil {
			return nil, err
		}
		h.logger.InfoContext(ctx, "admin account reset", "email", u.Email())

	case errors.Is(err, errs.ErrObjectNotFound):
		details := cmd.Company()
		c, companyErr := company.NewCompany(kernel.NewUUID(), details.Name, details.GSTNumber, details.Address)
		if companyErr != nil {
			return nil, companyErr
		}
		companyID := c.ID()
		if u, err = user.NewUser(kernel.NewUUID(), cmd.Email(), hash, user.RoleAdmin, &companyID); err != nil {
			return nil, err
		}
		if err = uow.CompanyRepository().Add(ctx, c); err != nil {
			return nil, err
		}
		if err = userRepo.Add(ctx, u); err != nil {
			return nil, err
		}
		h.logger.InfoContext(ctx, "admin account created", "email", u.Email())

	default:
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}

// ensureEmailIsFree fails with an ObjectAlreadyExistsError when another account owns email.
func ensureEmailIsFree(ctx context.Context, repo ports.UserRepository, email string, self *kernel.UUID) error {
	existing, err := repo.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if self != nil && existing.ID().IsEqual(*self) {
		return nil
	}
	return errs.NewObjectAlreadyExistsError("email", email)
}
