package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateToken handles POST /token with an OAuth2 password form.
func (s *Server) CreateToken(ctx echo.Context) error {
	cmd, err := commands.NewIssueTokenCommand(ctx.FormValue("username"), ctx.FormValue("password"))
	if err != nil {
		return err
	}

	token, err := s.commands.IssueToken.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Token{AccessToken: token.Value, TokenType: "bearer"})
}

// SignupMsme handles POST /signup/msme.
func (s *Server) SignupMsme(ctx echo.Context) error {
	var body servers.SignupMsmeJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewSignupShipperCommand(
		body.UserDetails.Email,
		body.UserDetails.Password,
		commands.CompanyDetails{
			Name:      body.CompanyDetails.Name,
			GSTNumber: body.CompanyDetails.GstNumber,
			Address:   body.CompanyDetails.Address,
		},
	)
	if err != nil {
		return err
	}

	account, err := s.commands.SignupShipper.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toUser(account.User, account.Company))
}

// GetCurrentUser handles GET /users/me.
func (s *Server) GetCurrentUser(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	return s.renderProfile(ctx, actor)
}

// UpdateUserSettings handles PUT /settings/user.
func (s *Server) UpdateUserSettings(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.UpdateUserSettingsJSONRequestBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateUserSettingsCommand(actor, body.Email, body.CurrentPassword, body.NewPassword)
	if err != nil {
		return err
	}

	if _, err = s.commands.UpdateUserSettings.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.renderProfile(ctx, actor)
}

// UpdateCompanySettings handles PUT /settings/company.
func (s *Server) UpdateCompanySettings(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.UpdateCompanySettingsJSONRequestBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCompanySettingsCommand(actor, body.Name, body.GstNumber, body.Address)
	if err != nil {
		return err
	}

	c, err := s.commands.UpdateCompanySettings.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toCompany(c))
}

func (s *Server) renderProfile(ctx echo.Context, actor user.Actor) error {
	query, err := queries.NewGetCurrentUserQuery(actor)
	if err != nil {
		return err
	}

	profile, err := s.queries.GetCurrentUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toUserFromView(profile))
}

// bindAndValidate decodes the request body and applies its validate tags.
func bindAndValidate(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return ctx.Validate(body)
}
