package services

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
)

// CapacityMatcher selects vehicles of a zone able to carry a load.
//
// Only static capacity is compared: weight and volume already committed to
// other orders are not taken into account.
type CapacityMatcher struct{}

func NewCapacityMatcher() CapacityMatcher {
	return CapacityMatcher{}
}

// Match returns the first vehicle in the given order that belongs to zoneID
// and can carry load, or nil.
func (CapacityMatcher) Match(zoneID kernel.UUID, load kernel.Load, vehicles []*vehicle.Vehicle) *vehicle.Vehicle {
	for _, v := range vehicles {
		if fits(v, zoneID, load) {
			return v
		}
	}
	return nil
}

// Compatible returns every vehicle of zoneID that can carry load, in the given order.
func (CapacityMatcher) Compatible(zoneID kernel.UUID, load kernel.Load, vehicles []*vehicle.Vehicle) []*vehicle.Vehicle {
	var out []*vehicle.Vehicle
	for _, v := range vehicles {
		if fits(v, zoneID, load) {
			out = append(out, v)
		}
	}
	return out
}

func fits(v *vehicle.Vehicle, zoneID kernel.UUID, load kernel.Load) bool {
	return v.Validate() == nil && v.BelongsTo(zoneID) && v.CanCarry(load)
}
