package kernel

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	// LatitudeMin is the southernmost valid latitude.
	LatitudeMin = -90.0
	// LatitudeMax is the northernmost valid latitude.
	LatitudeMax = 90.0
	// LongitudeMin is the westernmost valid longitude.
	LongitudeMin = -180.0
	// LongitudeMax is the easternmost valid longitude.
	LongitudeMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when a GeoPoint was not built by NewGeoPoint or ParseGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or ParseGeoPoint constructors")

// GeoPoint is an immutable (latitude, longitude) pair in decimal degrees.
//
// Coordinates are treated as plain planar numbers. No projection or datum
// conversion happens anywhere in the system, which is adequate for zones a few
// kilometres across.
//
// The storage form is "lat,lng" (see Encode and ParseGeoPoint).
//
//	p, err := kernel.NewGeoPoint(12.9716, 77.5946)
//	fmt.Println(p.Encode()) // 12.9716,77.5946
type GeoPoint struct {
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint validates that both coordinates are finite and within range.
// All violations are reported together.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLatitude(latitude), p.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// ParseGeoPoint decodes the "lat,lng" storage form. Surrounding whitespace
// around either number is tolerated.
func ParseGeoPoint(s string) (GeoPoint, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("pickup_location",
			fmt.Errorf("expected \"lat,lng\", got %q", s))
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("latitude", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("longitude", err)
	}

	return NewGeoPoint(lat, lng)
}

// Validate reports whether the point was built through a constructor.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// Encode returns the "lat,lng" storage form with the shortest exact decimal representation.
func (p GeoPoint) Encode() string {
	return strconv.FormatFloat(p.latitude, 'f', -1, 64) + "," + strconv.FormatFloat(p.longitude, 'f', -1, 64)
}

// String implements fmt.Stringer for logging.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%s)", p.Encode())
}

// IsEqual compares two constructed points coordinate by coordinate.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

func (p *GeoPoint) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) {
		return errs.NewValueIsInvalidErrorWithCause("latitude", errors.New("latitude must be a finite number"))
	}
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return errs.NewValueIsInvalidErrorWithCause("longitude", errors.New("longitude must be a finite number"))
	}
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	p.longitude = longitude
	return nil
}
