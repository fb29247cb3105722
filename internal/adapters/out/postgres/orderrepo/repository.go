package orderrepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/dberrs"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return dberrs.OnWrite(r.db.WithContext(ctx).Create(&dto).Error, "order", dto.ID.String())
}

// Update saves every column of an existing order, including a cleared vehicle.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if err := dberrs.OnWrite(result.Error, "assigned_vehicle_id", dto.AssignedVehicleID); err != nil {
		return err
	}

	if result.RowsAffected == 0 {
		return dberrs.OnRead(gorm.ErrRecordNotFound, "order", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves an order holding a row lock until the transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// CountByVehicle counts orders of any status that reference a vehicle.
func (r *GormOrderRepository) CountByVehicle(ctx context.Context, vehicleID kernel.UUID) (int64, error) {
	if err := vehicleID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("assigned_vehicle_id = ?", vehicleID.Bytes()).
		Count(&count).Error
	return count, err
}

func (r *GormOrderRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberrs.OnRead(err, "order", id.String())
	}

	return toDomain(dto)
}
