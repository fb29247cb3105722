package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for the vehicle registry.
type VehicleRepository interface {
	// Add persists a new vehicle. A duplicate number yields an ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetForUpdate retrieves a vehicle and locks its row.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetAllInZone returns the vehicles stationed in a zone in registry order.
	GetAllInZone(ctx context.Context, zoneID kernel.UUID) ([]*vehicle.Vehicle, error)

	// CountInZone counts vehicles stationed in a zone.
	CountInZone(ctx context.Context, zoneID kernel.UUID) (int64, error)

	// Delete removes a vehicle. A vehicle still referenced by orders yields an
	// ObjectIsReferencedError.
	Delete(ctx context.Context, id kernel.UUID) error
}
