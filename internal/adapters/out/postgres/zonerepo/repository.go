package zonerepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/dberrs"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/zone"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormZoneRepository implements ZoneRepository using GORM.
type GormZoneRepository struct {
	db *gorm.DB
}

func NewGormZoneRepository(db *gorm.DB) *GormZoneRepository {
	return &GormZoneRepository{db: db}
}

// Add saves a new zone. Zone names are unique.
func (r *GormZoneRepository) Add(ctx context.Context, aggregate *zone.Zone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return dberrs.OnWrite(r.db.WithContext(ctx).Create(&dto).Error, "zone name", dto.Name)
}

func (r *GormZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves a zone holding a row lock until the transaction ends.
func (r *GormZoneRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetAll returns every zone in registry order.
func (r *GormZoneRepository) GetAll(ctx context.Context) ([]*zone.Zone, error) {
	var dtos []ZoneDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	zones := make([]*zone.Zone, 0, len(dtos))
	for _, dto := range dtos {
		z, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}

	return zones, nil
}

// Delete removes a zone. Vehicles reference zones through a restricting key.
func (r *GormZoneRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ZoneDTO{}, "id = ?", id.Bytes())
	if err := dberrs.OnDelete(result.Error, "zone", id.String(), "vehicles"); err != nil {
		return err
	}
	if result.RowsAffected == 0 {
		return dberrs.OnRead(gorm.ErrRecordNotFound, "zone", id.String())
	}

	return nil
}

func (r *GormZoneRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*zone.Zone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ZoneDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberrs.OnRead(err, "zone", id.String())
	}

	return toDomain(dto)
}
