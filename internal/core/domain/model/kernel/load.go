package kernel

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrLoadIsNotConstructed is returned when a Load was not built by NewLoad.
var ErrLoadIsNotConstructed = errs.NewValueIsRequiredError("load must be created via NewLoad constructor")

// Load is a weight and volume pair. It describes both what an order weighs
// and what a vehicle can carry.
type Load struct {
	weightKg float64
	volumeM3 float64
	guard    guard.ConstructorGuard
}

// NewLoad requires both components to be positive finite numbers.
func NewLoad(weightKg, volumeM3 float64) (Load, error) {
	l := Load{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		positive("weight_kg", weightKg, &l.weightKg),
		positive("volume_m3", volumeM3, &l.volumeM3),
	); err != nil {
		return Load{}, err
	}

	return l, nil
}

func (l Load) Validate() error {
	return l.guard.Validate(ErrLoadIsNotConstructed)
}

func (l Load) WeightKg() float64 { return l.weightKg }
func (l Load) VolumeM3() float64 { return l.volumeM3 }

// FitsWithin reports whether both components are at most the capacity's.
// Equality fits.
func (l Load) FitsWithin(capacity Load) bool {
	if l.Validate() != nil || capacity.Validate() != nil {
		return false
	}
	return l.weightKg <= capacity.weightKg && l.volumeM3 <= capacity.volumeM3
}
