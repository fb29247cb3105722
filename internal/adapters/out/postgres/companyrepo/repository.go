package companyrepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/dberrs"
	"logistics/internal/core/domain/model/company"
	"logistics/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCompanyRepository implements CompanyRepository using GORM.
type GormCompanyRepository struct {
	db *gorm.DB
}

func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

func (r *GormCompanyRepository) Add(ctx context.Context, aggregate *company.Company) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return dberrs.OnWrite(r.db.WithContext(ctx).Create(&dto).Error, "company", dto.Name)
}

func (r *GormCompanyRepository) Update(ctx context.Context, aggregate *company.Company) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CompanyDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return dberrs.OnRead(gorm.ErrRecordNotFound, "company", aggregate.ID().String())
	}

	return nil
}

func (r *GormCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CompanyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberrs.OnRead(err, "company", id.String())
	}

	return toDomain(dto)
}
