// Package orderrepo persists orders. The pickup point is stored as the text
// "lat,lng" and the status by its wire name.
package orderrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row of the orders table. volume_m3 is derived from the
// dimensions and kept for reporting queries.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index"`
	ItemName          string     `gorm:"column:item_name;size:255"`
	Status            string     `gorm:"size:16;not null;index"`
	LengthCm          float64    `gorm:"column:length_cm;not null"`
	WidthCm           float64    `gorm:"column:width_cm;not null"`
	HeightCm          float64    `gorm:"column:height_cm;not null"`
	WeightKg          float64    `gorm:"column:weight_kg;not null"`
	VolumeM3          float64    `gorm:"column:volume_m3;not null"`
	PickupLocation    string     `gorm:"column:pickup_location;type:text;not null"`
	AssignedVehicleID *uuid.UUID `gorm:"column:assigned_vehicle_id;type:uuid;index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var vehicleID *uuid.UUID
	if id := o.VehicleID(); id != nil {
		raw := id.Bytes()
		vehicleID = &raw
	}

	dims := o.Dimensions()
	return OrderDTO{
		ID:                o.ID().Bytes(),
		UserID:            o.OwnerID().Bytes(),
		ItemName:          o.ItemName(),
		Status:            o.Status().String(),
		LengthCm:          dims.LengthCm(),
		WidthCm:           dims.WidthCm(),
		HeightCm:          dims.HeightCm(),
		WeightKg:          o.WeightKg(),
		VolumeM3:          o.VolumeM3(),
		PickupLocation:    o.Pickup().Encode(),
		AssignedVehicleID: vehicleID,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromGoogle(dto.UserID)
	if err != nil {
		return nil, err
	}

	var vehicleID *kernel.UUID
	if dto.AssignedVehicleID != nil {
		vID, vehicleErr := kernel.UUIDFromGoogle(*dto.AssignedVehicleID)
		if vehicleErr != nil {
			return nil, vehicleErr
		}
		vehicleID = &vID
	}

	dims, err := kernel.NewDimensions(dto.LengthCm, dto.WidthCm, dto.HeightCm)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.ParseGeoPoint(dto.PickupLocation)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, ownerID, dto.ItemName, dims, dto.WeightKg, pickup, status, vehicleID)
}
