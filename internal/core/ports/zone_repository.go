// Package ports defines the contracts between the application core and its
// infrastructure: repositories, the unit of work, and security and metrics
// collaborators.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/zone"
)

// ZoneRepository defines the persistence contract for the zone registry.
type ZoneRepository interface {
	// Add persists a new zone. A duplicate name yields an ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *zone.Zone) error

	Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// GetForUpdate retrieves a zone and locks its row. Vehicle creation and zone
	// deletion both take this lock, so a vehicle cannot land in a zone being deleted.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// GetAll returns every zone in registry order (ascending identity).
	GetAll(ctx context.Context) ([]*zone.Zone, error)

	// Delete removes a zone. A zone still referenced by vehicles yields an
	// ObjectIsReferencedError.
	Delete(ctx context.Context, id kernel.UUID) error
}
