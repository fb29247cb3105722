// Package vehiclerepo persists the vehicle registry.
package vehiclerepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO is the row of the vehicles table. ZoneID is nil for an unstationed vehicle.
type VehicleDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VehicleNumber string     `gorm:"column:vehicle_number;size:64;not null;uniqueIndex"`
	MaxVolumeM3   float64    `gorm:"column:max_volume_m3;not null"`
	MaxWeightKg   float64    `gorm:"column:max_weight_kg;not null"`
	ZoneID        *uuid.UUID `gorm:"column:zone_id;type:uuid;index"`
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	var zoneID *uuid.UUID
	if id := v.ZoneID(); id != nil {
		raw := id.Bytes()
		zoneID = &raw
	}

	return VehicleDTO{
		ID:            v.ID().Bytes(),
		VehicleNumber: v.Number(),
		MaxVolumeM3:   v.MaxVolumeM3(),
		MaxWeightKg:   v.MaxWeightKg(),
		ZoneID:        zoneID,
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	var zoneID *kernel.UUID
	if dto.ZoneID != nil {
		zID, zoneErr := kernel.UUIDFromGoogle(*dto.ZoneID)
		if zoneErr != nil {
			return nil, zoneErr
		}
		zoneID = &zID
	}

	capacity, err := kernel.NewLoad(dto.MaxWeightKg, dto.MaxVolumeM3)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, dto.VehicleNumber, capacity, zoneID)
}
