package kernel

import (
	"encoding/json"
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// PolygonMinVertices is the smallest number of distinct vertices forming an area.
const PolygonMinVertices = 3

// ErrPolygonIsNotConstructed is returned when a Polygon was not built by NewPolygon or ParsePolygon.
var ErrPolygonIsNotConstructed = errs.NewValueIsRequiredError(
	"polygon must be created via NewPolygon or ParsePolygon constructors")

// Polygon is a simple, implicitly closed ring of GeoPoints describing a
// delivery zone boundary.
//
// Vertices are used as given: no reordering, simplification or winding
// correction. A trailing vertex equal to the first one is accepted and
// dropped, so both open and explicitly closed rings describe the same area.
//
// Containment uses the even-odd rule with latitude as x and longitude as y.
// Points on an edge or a vertex count as inside.
//
//	square, _ := kernel.ParsePolygon(`[[10,10],[10,20],[20,20],[20,10]]`)
//	p, _ := kernel.NewGeoPoint(15, 15)
//	square.Contains(p) // true
type Polygon struct {
	vertices []GeoPoint
	ring     orb.Ring
	guard    guard.ConstructorGuard
}

// NewPolygon builds a polygon from at least PolygonMinVertices constructed points.
func NewPolygon(vertices []GeoPoint) (Polygon, error) {
	for i, v := range vertices {
		if err := v.Validate(); err != nil {
			return Polygon{}, fmt.Errorf("vertex %d: %w", i, err)
		}
	}

	if n := len(vertices); n > 1 && vertices[0] == vertices[n-1] {
		vertices = vertices[:n-1]
	}
	if len(vertices) < PolygonMinVertices {
		return Polygon{}, errs.NewValueIsInvalidErrorWithCause("geometry_coords",
			fmt.Errorf("polygon needs at least %d vertices, got %d", PolygonMinVertices, len(vertices)))
	}

	ring := make(orb.Ring, 0, len(vertices))
	for _, v := range vertices {
		ring = append(ring, orb.Point{v.Latitude(), v.Longitude()})
	}

	return Polygon{
		vertices: append([]GeoPoint(nil), vertices...),
		ring:     ring,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewPolygonFromPairs builds a polygon from raw [lat, lng] pairs as received
// on the wire. Every malformed pair is reported.
func NewPolygonFromPairs(pairs [][]float64) (Polygon, error) {
	vertices := make([]GeoPoint, 0, len(pairs))
	var pairErrs []error
	for i, pair := range pairs {
		if len(pair) != 2 {
			pairErrs = append(pairErrs, errs.NewValueIsInvalidErrorWithCause("geometry_coords",
				fmt.Errorf("vertex %d must be [lat, lng], got %d numbers", i, len(pair))))
			continue
		}
		p, err := NewGeoPoint(pair[0], pair[1])
		if err != nil {
			pairErrs = append(pairErrs, fmt.Errorf("vertex %d: %w", i, err))
			continue
		}
		vertices = append(vertices, p)
	}
	if err := errors.Join(pairErrs...); err != nil {
		return Polygon{}, err
	}

	return NewPolygon(vertices)
}

// ParsePolygon decodes the JSON storage form `[[lat, lng], ...]`.
func ParsePolygon(raw string) (Polygon, error) {
	var pairs [][]float64
	if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
		return Polygon{}, errs.NewValueIsInvalidErrorWithCause("geometry_coords", err)
	}

	return NewPolygonFromPairs(pairs)
}

// Validate reports whether the polygon was built through a constructor.
func (p Polygon) Validate() error {
	return p.guard.Validate(ErrPolygonIsNotConstructed)
}

// Vertices returns a copy of the ring without the closing vertex.
func (p Polygon) Vertices() []GeoPoint {
	return append([]GeoPoint(nil), p.vertices...)
}

// Pairs returns the vertices as [lat, lng] pairs.
func (p Polygon) Pairs() [][]float64 {
	pairs := make([][]float64, 0, len(p.vertices))
	for _, v := range p.vertices {
		pairs = append(pairs, []float64{v.Latitude(), v.Longitude()})
	}
	return pairs
}

// Encode returns the JSON storage form accepted by ParsePolygon.
func (p Polygon) Encode() (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	raw, err := json.Marshal(p.Pairs())
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Contains reports whether point lies inside the polygon or on its boundary.
// An unconstructed polygon or point contains nothing.
func (p Polygon) Contains(point GeoPoint) bool {
	if p.Validate() != nil || point.Validate() != nil {
		return false
	}
	return planar.RingContains(p.ring, orb.Point{point.Latitude(), point.Longitude()})
}
