// Package userrepo persists accounts.
package userrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the row of the users table.
type UserDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email          string     `gorm:"size:255;not null;uniqueIndex"`
	HashedPassword string     `gorm:"column:hashed_password;not null"`
	Role           string     `gorm:"size:32;not null"`
	CompanyID      *uuid.UUID `gorm:"column:company_id;type:uuid;index"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	var companyID *uuid.UUID
	if id := u.CompanyID(); id != nil {
		raw := id.Bytes()
		companyID = &raw
	}

	return UserDTO{
		ID:             u.ID().Bytes(),
		Email:          u.Email(),
		HashedPassword: u.PasswordHash(),
		Role:           u.Role().String(),
		CompanyID:      companyID,
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	var companyID *kernel.UUID
	if dto.CompanyID != nil {
		cID, companyErr := kernel.UUIDFromGoogle(*dto.CompanyID)
		if companyErr != nil {
			return nil, companyErr
		}
		companyID = &cID
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Email, dto.HashedPassword, role, companyID)
}
