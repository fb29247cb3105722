package userrepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/dberrs"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new account. Emails are unique.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return dberrs.OnWrite(r.db.WithContext(ctx).Create(&dto).Error, "email", dto.Email)
}

func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if err := dberrs.OnWrite(result.Error, "email", dto.Email); err != nil {
		return err
	}

	if result.RowsAffected == 0 {
		return dberrs.OnRead(gorm.ErrRecordNotFound, "user", aggregate.ID().String())
	}

	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberrs.OnRead(err, "user", id.String())
	}

	return toDomain(dto)
}

// GetByEmail looks up the normalized email.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	email = user.NormalizeEmail(email)

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		return nil, dberrs.OnRead(err, "user", email)
	}

	return toDomain(dto)
}
