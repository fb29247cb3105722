package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status and vehicle link of an existing order.
	// Returns an ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identity.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the transaction ends.
	// Concurrent transitions of the same order are serialized this way.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// CountByVehicle counts orders, in any status, referencing the vehicle.
	CountByVehicle(ctx context.Context, vehicleID kernel.UUID) (int64, error)
}
