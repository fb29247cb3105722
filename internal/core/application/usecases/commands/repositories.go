// Package commands contains the operations that modify system state.
// Every handler follows the same shape: validate the command, open a unit of
// work, load aggregates, apply domain behavior, persist and commit.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces scope each handler to the repositories it needs.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	CompanyRepoFactory interface {
		CompanyRepository() ports.CompanyRepository
	}

	// UoW spans the fleet aggregates: zones, vehicles and orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... mutate and Update
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ZoneRepoFactory
		VehicleRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates unit of work instances for fleet operations.
	UoWFactory interface {
		Create() UoW
	}

	// IdentityUoW spans accounts and companies.
	IdentityUoW interface {
		TxManager
		UserRepoFactory
		CompanyRepoFactory
	}

	// IdentityUoWFactory creates unit of work instances for identity operations.
	IdentityUoWFactory interface {
		Create() IdentityUoW
	}
)
