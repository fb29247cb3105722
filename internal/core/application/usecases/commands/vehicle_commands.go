package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateVehicleCommandIsNotConstructed = errors.New(
		"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor")
	ErrDeleteVehicleCommandIsNotConstructed = errors.New(
		"DeleteVehicleCommand must be created via NewDeleteVehicleCommand constructor")
)

// CreateVehicleCommand registers a vehicle, optionally stationed in a zone.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	actor    user.Actor
	number   string
	capacity kernel.Load
	zoneID   *kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateVehicleCommand(
	actor user.Actor,
	number string,
	maxWeightKg, maxVolumeM3 float64,
	zoneID *kernel.UUID,
) (CreateVehicleCommand, error) {
	capacity, capacityErr := kernel.NewLoad(maxWeightKg, maxVolumeM3)
	var zoneErr error
	if zoneID != nil {
		if err := zoneID.Validate(); err != nil {
			zoneErr = errs.NewValueIsInvalidErrorWithCause("zone_id", err)
		}
	}
	if err := errors.Join(validateActor(actor), capacityErr, zoneErr); err != nil {
		return CreateVehicleCommand{}, err
	}

	return CreateVehicleCommand{
		actor:    actor,
		number:   number,
		capacity: capacity,
		zoneID:   zoneID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

func (c CreateVehicleCommand) Actor() user.Actor     { return c.actor }
func (c CreateVehicleCommand) Number() string        { return c.number }
func (c CreateVehicleCommand) Capacity() kernel.Load { return c.capacity }
func (c CreateVehicleCommand) ZoneID() *kernel.UUID  { return c.zoneID }

// DeleteVehicleCommand removes a vehicle no order references.
type DeleteVehicleCommand struct {
	actor     user.Actor
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteVehicleCommand(actor user.Actor, vehicleID kernel.UUID) (DeleteVehicleCommand, error) {
	if err := errors.Join(validateActor(actor), vehicleID.Validate()); err != nil {
		return DeleteVehicleCommand{}, err
	}
	return DeleteVehicleCommand{actor: actor, vehicleID: vehicleID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVehicleCommandIsNotConstructed)
}

func (c DeleteVehicleCommand) Actor() user.Actor      { return c.actor }
func (c DeleteVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }
