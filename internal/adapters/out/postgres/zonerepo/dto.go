// Package zonerepo persists the zone registry. Boundaries are stored in their
// JSON `[[lat, lng], ...]` form and are not decoded on load.
package zonerepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/zone"

	"github.com/google/uuid"
)

// ZoneDTO is the row of the zones table.
type ZoneDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"size:255;not null;uniqueIndex"`
	GeometryCoords string    `gorm:"column:geometry_coords;type:text;not null"`
}

func (ZoneDTO) TableName() string {
	return "zones"
}

func fromDomain(z *zone.Zone) ZoneDTO {
	return ZoneDTO{
		ID:             z.ID().Bytes(),
		Name:           z.Name(),
		GeometryCoords: z.EncodedBoundary(),
	}
}

func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	return zone.RestoreZone(id, dto.Name, dto.GeometryCoords)
}
