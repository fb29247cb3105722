package kernel

import (
	"errors"
	"math"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// CubicCentimetresPerCubicMetre converts between the two volume units in use.
const CubicCentimetresPerCubicMetre = 1_000_000.0

// ErrDimensionsIsNotConstructed is returned when Dimensions were not built by NewDimensions.
var ErrDimensionsIsNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// Dimensions are the outer measurements of a parcel in centimetres.
// Volume is always derived from them, never stored separately.
type Dimensions struct {
	lengthCm float64
	widthCm  float64
	heightCm float64
	guard    guard.ConstructorGuard
}

// NewDimensions requires every measurement to be a positive finite number.
// Zero is rejected although it is the lower bound reported in the error.
func NewDimensions(lengthCm, widthCm, heightCm float64) (Dimensions, error) {
	d := Dimensions{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		positive("length_cm", lengthCm, &d.lengthCm),
		positive("width_cm", widthCm, &d.widthCm),
		positive("height_cm", heightCm, &d.heightCm),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsIsNotConstructed)
}

func (d Dimensions) LengthCm() float64 { return d.lengthCm }
func (d Dimensions) WidthCm() float64  { return d.widthCm }
func (d Dimensions) HeightCm() float64 { return d.heightCm }

// VolumeM3 returns length × width × height converted from cm³ to m³.
func (d Dimensions) VolumeM3() float64 {
	return d.lengthCm * d.widthCm * d.heightCm / CubicCentimetresPerCubicMetre
}

func positive(param string, value float64, dst *float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidErrorWithCause(param, errors.New("must be a finite number"))
	}
	if value <= 0 {
		return errs.NewValueIsOutOfRangeError(param, value, 0, math.Inf(1))
	}
	*dst = value
	return nil
}
