package zone

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// NameMaxLength bounds zone names.
const NameMaxLength = 255

var ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone or RestoreZone constructor")

// Zone is a named delivery area.
//
// The boundary is kept in its storage form. A zone restored from storage is
// valid even when its boundary no longer parses; Boundary reports the failure
// so a resolver can skip that zone without failing the whole lookup.
type Zone struct {
	id       kernel.UUID
	name     string
	boundary string

	isConstructed bool
}

// NewZone creates a zone from a validated polygon.
func NewZone(id kernel.UUID, name string, boundary kernel.Polygon) (*Zone, error) {
	z := &Zone{isConstructed: true}

	if err := errors.Join(
		z.setID(id),
		z.setName(name),
		z.setBoundary(boundary),
	); err != nil {
		return nil, err
	}

	return z, nil
}

// RestoreZone rebuilds a zone from storage without parsing its boundary.
func RestoreZone(id kernel.UUID, name string, encodedBoundary string) (*Zone, error) {
	z := &Zone{isConstructed: true, boundary: encodedBoundary}

	if err := errors.Join(
		z.setID(id),
		z.setName(name),
	); err != nil {
		return nil, err
	}

	return z, nil
}

func (z *Zone) Validate() error {
	if z == nil || !z.isConstructed {
		return ErrZoneIsNotConstructed
	}
	return nil
}

func (z *Zone) ID() kernel.UUID {
	return z.id
}

func (z *Zone) Name() string {
	return z.name
}

// EncodedBoundary returns the JSON storage form of the boundary.
func (z *Zone) EncodedBoundary() string {
	return z.boundary
}

// Boundary parses the stored boundary.
func (z *Zone) Boundary() (kernel.Polygon, error) {
	return kernel.ParsePolygon(z.boundary)
}

// Contains reports whether point lies in the zone, boundary included.
// A boundary that fails to parse is returned as an error.
func (z *Zone) Contains(point kernel.GeoPoint) (bool, error) {
	boundary, err := z.Boundary()
	if err != nil {
		return false, err
	}
	return boundary.Contains(point), nil
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > NameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, NameMaxLength)
	}
	z.name = name
	return nil
}

func (z *Zone) setBoundary(boundary kernel.Polygon) error {
	encoded, err := boundary.Encode()
	if err != nil {
		return err
	}
	z.boundary = encoded
	return nil
}
