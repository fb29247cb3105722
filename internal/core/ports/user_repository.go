package ports

import (
	"context"

	"logistics/internal/core/domain/model/company"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for accounts.
type UserRepository interface {
	// Add persists a new account. A duplicate email yields an ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists email, password hash and role changes.
	Update(ctx context.Context, aggregate *user.User) error

	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail looks an account up by its normalized email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// CompanyRepository defines the persistence contract for companies.
type CompanyRepository interface {
	Add(ctx context.Context, aggregate *company.Company) error
	Update(ctx context.Context, aggregate *company.Company) error
	Get(ctx context.Context, id kernel.UUID) (*company.Company, error)
}
