package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListZonesQueryIsNotConstructed = errors.New(
	"ListZonesQuery must be created via NewListZonesQuery constructor",
)

// ListZonesQuery lists the zone registry in registry order.
type ListZonesQuery struct {
	guard guard.ConstructorGuard
}

func NewListZonesQuery() ListZonesQuery {
	return ListZonesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListZonesQuery) Validate() error {
	return q.guard.Validate(ErrListZonesQueryIsNotConstructed)
}

type ListZonesQueryHandler struct {
	db *gorm.DB
}

func NewListZonesQueryHandler(db *gorm.DB) ListZonesQueryHandler {
	return ListZonesQueryHandler{db: db}
}

func (h ListZonesQueryHandler) Handle(ctx context.Context, query ListZonesQuery) ([]ZoneView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, geometry_coords
		FROM zones
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := make([]ZoneView, 0)
	for rows.Next() {
		var id uuid.UUID
		var view ZoneView
		var coords string

		if err = rows.Scan(&id, &view.Name, &coords); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		view.Coordinates = boundaryPairs(coords)
		zones = append(zones, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}
