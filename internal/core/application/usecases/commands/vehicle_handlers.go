package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/pkg/errs"
)

// CreateVehicleResult is the new vehicle with the zone it was stationed in.
type CreateVehicleResult struct {
	Vehicle *vehicle.Vehicle
	Zone    *zone.Zone
}

// CreateVehicleCommandHandler registers a vehicle. The target zone is locked
// so it cannot be deleted concurrently.
type CreateVehicleCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateVehicleCommandHandler(uowFactory UoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{uowFactory: uowFactory}
}

func (h CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) (CreateVehicleResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateVehicleResult{}, err
	}
	if err := requireAdmin(cmd.Actor(), "create vehicle"); err != nil {
		return CreateVehicleResult{}, err
	}

	v, err := vehicle.NewVehicle(kernel.NewUUID(), cmd.Number(), cmd.Capacity(), cmd.ZoneID())
	if err != nil {
		return CreateVehicleResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateVehicleResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var z *zone.Zone
	if cmd.ZoneID() != nil {
		if z, err = uow.ZoneRepository().GetForUpdate(ctx, *cmd.ZoneID()); err != nil {
			return CreateVehicleResult{}, err
		}
	}

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return CreateVehicleResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateVehicleResult{}, err
	}

	return CreateVehicleResult{Vehicle: v, Zone: z}, nil
}

// DeleteVehicleCommandHandler removes a vehicle unless orders reference it.
type DeleteVehicleCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteVehicleCommandHandler(uowFactory UoWFactory) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{uowFactory: uowFactory}
}

func (h DeleteVehicleCommandHandler) Handle(ctx context.Context, cmd DeleteVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireAdmin(cmd.Actor(), "delete vehicle"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	orderRepo := uow.OrderRepository()

	v, err := vehicleRepo.GetForUpdate(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	orders, err := orderRepo.CountByVehicle(ctx, v.ID())
	if err != nil {
		return err
	}
	if orders > 0 {
		return errs.NewObjectIsReferencedError("vehicle", v.ID().String(), "orders", orders)
	}

	if err = vehicleRepo.Delete(ctx, v.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
