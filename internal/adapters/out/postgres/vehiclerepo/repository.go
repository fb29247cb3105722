package vehiclerepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/dberrs"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Add saves a new vehicle. Vehicle numbers are unique.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return dberrs.OnWrite(r.db.WithContext(ctx).Create(&dto).Error, "vehicle number", dto.VehicleNumber)
}

func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.get(ctx, r.db, id)
}

func (r *GormVehicleRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetAllInZone returns the vehicles stationed in a zone in registry order.
func (r *GormVehicleRepository) GetAllInZone(ctx context.Context, zoneID kernel.UUID) ([]*vehicle.Vehicle, error) {
	if err := zoneID.Validate(); err != nil {
		return nil, err
	}

	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).Where("zone_id = ?", zoneID.Bytes()).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}

func (r *GormVehicleRepository) CountInZone(ctx context.Context, zoneID kernel.UUID) (int64, error) {
	if err := zoneID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&VehicleDTO{}).Where("zone_id = ?", zoneID.Bytes()).Count(&count).Error
	return count, err
}

// Delete removes a vehicle. Orders reference vehicles through a restricting key.
func (r *GormVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&VehicleDTO{}, "id = ?", id.Bytes())
	if err := dberrs.OnDelete(result.Error, "vehicle", id.String(), "orders"); err != nil {
		return err
	}
	if result.RowsAffected == 0 {
		return dberrs.OnRead(gorm.ErrRecordNotFound, "vehicle", id.String())
	}

	return nil
}

func (r *GormVehicleRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberrs.OnRead(err, "vehicle", id.String())
	}

	return toDomain(dto)
}
