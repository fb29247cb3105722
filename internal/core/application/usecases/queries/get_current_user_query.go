package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetCurrentUserQueryIsNotConstructed = errors.New(
	"GetCurrentUserQuery must be created via NewGetCurrentUserQuery constructor",
)

// GetCurrentUserQuery reads the caller's profile with its company.
type GetCurrentUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCurrentUserQuery(actor user.Actor) (GetCurrentUserQuery, error) {
	if err := actor.UserID.Validate(); err != nil {
		return GetCurrentUserQuery{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	return GetCurrentUserQuery{userID: actor.UserID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCurrentUserQuery) UserID() kernel.UUID {
	return q.userID
}

func (q GetCurrentUserQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentUserQueryIsNotConstructed)
}

type GetCurrentUserQueryHandler struct {
	db *gorm.DB
}

func NewGetCurrentUserQueryHandler(db *gorm.DB) GetCurrentUserQueryHandler {
	return GetCurrentUserQueryHandler{db: db}
}

func (h GetCurrentUserQueryHandler) Handle(ctx context.Context, query GetCurrentUserQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT u.id, u.email, u.role, u.company_id, c.name, c.gst_number, c.address
		FROM users u
		LEFT JOIN companies c ON c.id = u.company_id
		WHERE u.id = ?
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return UserView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return UserView{}, err
		}
		return UserView{}, errs.NewObjectNotFoundError("user", query.UserID().String())
	}

	var id uuid.UUID
	var companyID uuid.NullUUID
	var role string
	var name, gst, address sql.NullString
	var view UserView

	if err = rows.Scan(&id, &view.Email, &role, &companyID, &name, &gst, &address); err != nil {
		return UserView{}, err
	}

	if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
		return UserView{}, err
	}
	if view.Role, err = user.ParseRole(role); err != nil {
		return UserView{}, err
	}

	if companyID.Valid {
		cID, cErr := kernel.UUIDFromGoogle(companyID.UUID)
		if cErr != nil {
			return UserView{}, cErr
		}
		view.CompanyID = &cID
		if name.Valid {
			view.Company = &CompanyView{ID: cID, Name: name.String, GSTNumber: gst.String, Address: address.String}
		}
	}

	return view, nil
}
