package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListVehiclesQueryIsNotConstructed = errors.New(
	"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
)

// ListVehiclesQuery lists vehicles in registry order, optionally restricted to ids.
type ListVehiclesQuery struct {
	ids      []kernel.UUID
	filtered bool

	guard guard.ConstructorGuard
}

// NewListVehiclesQuery lists the whole registry.
func NewListVehiclesQuery() ListVehiclesQuery {
	return ListVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// NewListVehiclesByIDsQuery lists only the given vehicles. An empty ids lists none.
func NewListVehiclesByIDsQuery(ids []kernel.UUID) (ListVehiclesQuery, error) {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return ListVehiclesQuery{}, err
		}
	}
	return ListVehiclesQuery{
		ids:      append([]kernel.UUID(nil), ids...),
		filtered: true,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}

// ListVehiclesQueryHandler reads vehicles joined with their zone and committed load.
type ListVehiclesQueryHandler struct {
	db *gorm.DB
}

func NewListVehiclesQueryHandler(db *gorm.DB) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{db: db}
}

func (h ListVehiclesQueryHandler) Handle(ctx context.Context, query ListVehiclesQuery) ([]VehicleView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]VehicleView, 0)
	if query.filtered && len(query.ids) == 0 {
		return vehicles, nil
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT
			v.id,
			v.vehicle_number,
			v.max_volume_m3,
			v.max_weight_kg,
			v.zone_id,
			z.name,
			z.geometry_coords,
			COALESCE((
				SELECT SUM(o.volume_m3)
				FROM orders o
				WHERE o.assigned_vehicle_id = v.id AND o.status = 'ASSIGNED'
			), 0)
		FROM vehicles v
		LEFT JOIN zones z ON z.id = v.zone_id
	`)
	args := make([]any, 0, 1)
	if query.filtered {
		ids := make([]uuid.UUID, 0, len(query.ids))
		for _, id := range query.ids {
			ids = append(ids, id.Bytes())
		}
		sb.WriteString(" WHERE v.id IN ?")
		args = append(args, ids)
	}
	sb.WriteString(" ORDER BY v.id")

	rows, err := h.db.WithContext(ctx).Raw(sb.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var zoneID uuid.NullUUID
		var zoneName, zoneCoords sql.NullString
		var view VehicleView

		err = rows.Scan(
			&id,
			&view.Number,
			&view.MaxVolumeM3,
			&view.MaxWeightKg,
			&zoneID,
			&zoneName,
			&zoneCoords,
			&view.CurrentVolumeM3,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}

		if zoneID.Valid {
			zID, zoneErr := kernel.UUIDFromGoogle(zoneID.UUID)
			if zoneErr != nil {
				return nil, zoneErr
			}
			view.ZoneID = &zID
			if zoneName.Valid {
				view.Zone = &ZoneView{ID: zID, Name: zoneName.String, Coordinates: boundaryPairs(zoneCoords.String)}
			}
		}

		view.UtilizationPercentage = utilization(view.CurrentVolumeM3, view.MaxVolumeM3)
		vehicles = append(vehicles, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
