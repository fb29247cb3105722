package vehicle

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// NumberMaxLength bounds registration numbers.
const NumberMaxLength = 64

var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle constructor")

// Vehicle is a carrier with a fixed weight and volume capacity, optionally
// stationed in one zone. Vehicles without a zone are never auto-assigned.
type Vehicle struct {
	id       kernel.UUID
	number   string
	capacity kernel.Load
	zoneID   *kernel.UUID

	isConstructed bool
}

// NewVehicle creates a vehicle. zoneID may be nil.
func NewVehicle(id kernel.UUID, number string, capacity kernel.Load, zoneID *kernel.UUID) (*Vehicle, error) {
	v := &Vehicle{isConstructed: true}

	if err := errors.Join(
		v.setID(id),
		v.setNumber(number),
		v.setCapacity(capacity),
		v.setZone(zoneID),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle rebuilds a vehicle from storage.
func RestoreVehicle(id kernel.UUID, number string, capacity kernel.Load, zoneID *kernel.UUID) (*Vehicle, error) {
	return NewVehicle(id, number, capacity, zoneID)
}

func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Number is the unique registration number.
func (v *Vehicle) Number() string {
	return v.number
}

func (v *Vehicle) Capacity() kernel.Load {
	return v.capacity
}

func (v *Vehicle) MaxWeightKg() float64 {
	return v.capacity.WeightKg()
}

func (v *Vehicle) MaxVolumeM3() float64 {
	return v.capacity.VolumeM3()
}

// ZoneID returns the zone the vehicle serves, or nil.
func (v *Vehicle) ZoneID() *kernel.UUID {
	return v.zoneID
}

// BelongsTo reports whether the vehicle is stationed in zoneID.
func (v *Vehicle) BelongsTo(zoneID kernel.UUID) bool {
	return v.zoneID != nil && v.zoneID.IsEqual(zoneID)
}

// CanCarry reports whether load fits the vehicle's capacity on both axes.
func (v *Vehicle) CanCarry(load kernel.Load) bool {
	return load.FitsWithin(v.capacity)
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("vehicle_number")
	}
	if len(number) > NumberMaxLength {
		return errs.NewValueIsOutOfRangeError("vehicle_number length", len(number), 1, NumberMaxLength)
	}
	v.number = number
	return nil
}

func (v *Vehicle) setCapacity(capacity kernel.Load) error {
	if err := capacity.Validate(); err != nil {
		return err
	}
	v.capacity = capacity
	return nil
}

func (v *Vehicle) setZone(zoneID *kernel.UUID) error {
	if zoneID == nil {
		return nil
	}
	if err := zoneID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("zone_id", err)
	}
	id := *zoneID
	v.zoneID = &id
	return nil
}
