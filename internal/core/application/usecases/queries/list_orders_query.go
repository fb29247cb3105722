package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders visible to an actor, newest first.
// An admin sees every order, anyone else only their own.
type ListOrdersQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor user.Actor) (ListOrdersQuery, error) {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return ListOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	return ListOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Actor() user.Actor {
	return q.actor
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT
			o.id,
			o.user_id,
			o.item_name,
			o.length_cm,
			o.width_cm,
			o.height_cm,
			o.weight_kg,
			o.volume_m3,
			o.pickup_location,
			o.status,
			o.assigned_vehicle_id,
			v.vehicle_number
		FROM orders o
		LEFT JOIN vehicles v ON v.id = o.assigned_vehicle_id
	`)
	args := make([]any, 0, 1)
	if !query.Actor().IsAdmin() {
		sb.WriteString(" WHERE o.user_id = ?")
		args = append(args, query.Actor().UserID.Bytes())
	}
	sb.WriteString(" ORDER BY o.id DESC")

	rows, err := h.db.WithContext(ctx).Raw(sb.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		var id, ownerID uuid.UUID
		var vehicleID uuid.NullUUID
		var vehicleNumber sql.NullString
		var pickup string
		var view OrderView

		err = rows.Scan(
			&id,
			&ownerID,
			&view.ItemName,
			&view.LengthCm,
			&view.WidthCm,
			&view.HeightCm,
			&view.WeightKg,
			&view.VolumeM3,
			&pickup,
			&view.Status,
			&vehicleID,
			&vehicleNumber,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if view.OwnerID, err = kernel.UUIDFromGoogle(ownerID); err != nil {
			return nil, err
		}

		// An unreadable pickup lists as 0,0 rather than hiding the order.
		if point, parseErr := kernel.ParseGeoPoint(pickup); parseErr == nil {
			view.Latitude = point.Latitude()
			view.Longitude = point.Longitude()
		}

		if vehicleID.Valid {
			vID, vErr := kernel.UUIDFromGoogle(vehicleID.UUID)
			if vErr != nil {
				return nil, vErr
			}
			view.VehicleID = &vID
		}
		if vehicleNumber.Valid {
			number := vehicleNumber.String
			view.VehicleNumber = &number
		}

		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
