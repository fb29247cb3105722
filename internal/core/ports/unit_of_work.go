package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command or query.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary.
//
// Repositories obtained before Begin work directly on the connection pool;
// after Begin they are bound to the transaction. Client code owns the
// lifecycle: Begin, then Commit or Rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	ZoneRepository() ZoneRepository
	VehicleRepository() VehicleRepository
	OrderRepository() OrderRepository
	UserRepository() UserRepository
	CompanyRepository() CompanyRepository
}
