package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/pkg/errs"
)

// CreateZoneCommandHandler registers a zone. Names are unique.
type CreateZoneCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateZoneCommandHandler(uowFactory UoWFactory) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{uowFactory: uowFactory}
}

func (h CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) (*zone.Zone, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireAdmin(cmd.Actor(), "create zone"); err != nil {
		return nil, err
	}

	z, err := zone.NewZone(kernel.NewUUID(), cmd.Name(), cmd.Boundary())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ZoneRepository().Add(ctx, z); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return z, nil
}

// DeleteZoneCommandHandler removes a zone unless vehicles are stationed in it.
//
// The zone row is locked before counting, and vehicle creation takes the same
// lock, so no vehicle can be added between the count and the delete.
type DeleteZoneCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteZoneCommandHandler(uowFactory UoWFactory) DeleteZoneCommandHandler {
	return DeleteZoneCommandHandler{uowFactory: uowFactory}
}

func (h DeleteZoneCommandHandler) Handle(ctx context.Context, cmd DeleteZoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireAdmin(cmd.Actor(), "delete zone"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	zoneRepo := uow.ZoneRepository()
	vehicleRepo := uow.VehicleRepository()

	z, err := zoneRepo.GetForUpdate(ctx, cmd.ZoneID())
	if err != nil {
		return err
	}

	vehicles, err := vehicleRepo.CountInZone(ctx, z.ID())
	if err != nil {
		return err
	}
	if vehicles > 0 {
		return errs.NewObjectIsReferencedError("zone", z.ID().String(), "vehicles", vehicles)
	}

	if err = zoneRepo.Delete(ctx, z.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
