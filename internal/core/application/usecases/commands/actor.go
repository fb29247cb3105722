package commands

import (
	"errors"

	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"
)

func validateActor(actor user.Actor) error {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	return nil
}

func requireAdmin(actor user.Actor, action string) error {
	if !actor.IsAdmin() {
		return errs.NewForbiddenError(action + " requires the " + user.RoleAdmin.String() + " role")
	}
	return nil
}

var forbiddenNotOwner = errs.NewForbiddenError("only the owner of the order can do this")
