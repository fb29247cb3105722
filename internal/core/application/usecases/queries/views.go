// Package queries contains the read side: each query returns a read model
// built with plain SQL, without loading aggregates, except where a decision
// needs domain logic.
package queries

import (
	"math"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
)

// ZoneView is a zone with its boundary as [lat, lng] pairs. Coordinates is
// empty when the stored boundary cannot be decoded.
type ZoneView struct {
	ID          kernel.UUID
	Name        string
	Coordinates [][]float64
}

// VehicleView is a vehicle with its zone and committed load. The committed
// load is the summed volume of its ASSIGNED orders and is informational only.
type VehicleView struct {
	ID                    kernel.UUID
	Number                string
	MaxVolumeM3           float64
	MaxWeightKg           float64
	ZoneID                *kernel.UUID
	Zone                  *ZoneView
	CurrentVolumeM3       float64
	UtilizationPercentage float64
}

// OrderView is an order with the number of the vehicle it is assigned to.
type OrderView struct {
	ID            kernel.UUID
	OwnerID       kernel.UUID
	ItemName      string
	LengthCm      float64
	WidthCm       float64
	HeightCm      float64
	WeightKg      float64
	VolumeM3      float64
	Latitude      float64
	Longitude     float64
	Status        string
	VehicleID     *kernel.UUID
	VehicleNumber *string
}

// CompanyView is the company an account belongs to.
type CompanyView struct {
	ID        kernel.UUID
	Name      string
	GSTNumber string
	Address   string
}

// UserView is an account profile. Company is nil for accounts without one.
type UserView struct {
	ID        kernel.UUID
	Email     string
	Role      user.Role
	CompanyID *kernel.UUID
	Company   *CompanyView
}

func utilization(current, capacity float64) float64 {
	if capacity <= 0 {
		return 0
	}
	return math.Round(current/capacity*10000) / 100
}

func boundaryPairs(encoded string) [][]float64 {
	p, err := kernel.ParsePolygon(encoded)
	if err != nil {
		return [][]float64{}
	}
	return p.Pairs()
}
