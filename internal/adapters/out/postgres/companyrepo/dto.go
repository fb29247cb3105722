// Package companyrepo persists companies.
package companyrepo

import (
	"logistics/internal/core/domain/model/company"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CompanyDTO is the row of the companies table.
type CompanyDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	GSTNumber string    `gorm:"column:gst_number;size:64;not null"`
	Address   string    `gorm:"size:1024;not null"`
}

func (CompanyDTO) TableName() string {
	return "companies"
}

func fromDomain(c *company.Company) CompanyDTO {
	return CompanyDTO{
		ID:        c.ID().Bytes(),
		Name:      c.Name(),
		GSTNumber: c.GSTNumber(),
		Address:   c.Address(),
	}
}

func toDomain(dto CompanyDTO) (*company.Company, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	return company.RestoreCompany(id, dto.Name, dto.GSTNumber, dto.Address)
}
