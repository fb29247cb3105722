package services

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/pkg/errs"
)

// Outcome classifies an auto-assignment attempt.
type Outcome string

const (
	// OutcomeAssigned means a vehicle was attached to the order.
	OutcomeAssigned Outcome = "assigned"
	// OutcomeNoVehicle means the pickup is in a zone but no vehicle there fits.
	OutcomeNoVehicle Outcome = "no_vehicle"
	// OutcomeNoZone means no zone contains the pickup point.
	OutcomeNoZone Outcome = "no_zone"
)

// VehicleSource lists the vehicles of a zone in registry order.
type VehicleSource func(zoneID kernel.UUID) ([]*vehicle.Vehicle, error)

// DispatchResult describes what Dispatch decided.
type DispatchResult struct {
	Outcome    Outcome
	Resolution Resolution
	Vehicle    *vehicle.Vehicle
}

// OrderDispatcher is the domain service behind order auto-assignment.
//
// It resolves the zone of the order's pickup point and asks the capacity
// matcher for the first vehicle of that zone able to carry the order. When
// one is found the order is assigned to it; otherwise the order stays Pending.
// A missing zone or vehicle is a normal outcome, not an error.
//
//	dispatcher := services.NewOrderDispatcher()
//	result, err := dispatcher.Dispatch(o, zones, func(id kernel.UUID) ([]*vehicle.Vehicle, error) {
//	    return vehicleRepo.GetAllInZone(ctx, id)
//	})
//	if result.Outcome == services.OutcomeAssigned {
//	    // o.Status() == order.Assigned
//	}
type OrderDispatcher struct {
	resolver ZoneResolver
	matcher  CapacityMatcher
}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{resolver: NewZoneResolver(), matcher: NewCapacityMatcher()}
}

// Dispatch auto-assigns a Pending order. Vehicles are only loaded for the
// resolved zone.
func (d OrderDispatcher) Dispatch(o *order.Order, zones []*zone.Zone, vehiclesIn VehicleSource) (DispatchResult, error) {
	if err := o.Validate(); err != nil {
		return DispatchResult{}, err
	}
	if o.Status() != order.Pending {
		return DispatchResult{}, errs.NewInvalidStateTransitionError("order", o.Status().String(), order.AssignedName)
	}

	resolution := d.resolver.Resolve(o.Pickup(), zones)
	if !resolution.Resolved() {
		return DispatchResult{Outcome: OutcomeNoZone, Resolution: resolution}, nil
	}

	vehicles, err := vehiclesIn(resolution.Zone.ID())
	if err != nil {
		return DispatchResult{}, err
	}

	match := d.matcher.Match(resolution.Zone.ID(), o.Load(), vehicles)
	if match == nil {
		return DispatchResult{Outcome: OutcomeNoVehicle, Resolution: resolution}, nil
	}

	if err = o.Assign(match.ID()); err != nil {
		return DispatchResult{}, err
	}

	return DispatchResult{Outcome: OutcomeAssigned, Resolution: resolution, Vehicle: match}, nil
}

// Compatible lists every vehicle of the order's zone able to carry it,
// whatever the order status. The order is not modified.
func (d OrderDispatcher) Compatible(
	o *order.Order,
	zones []*zone.Zone,
	vehiclesIn VehicleSource,
) ([]*vehicle.Vehicle, Resolution, error) {
	if err := o.Validate(); err != nil {
		return nil, Resolution{}, err
	}

	resolution := d.resolver.Resolve(o.Pickup(), zones)
	if !resolution.Resolved() {
		return nil, resolution, nil
	}

	vehicles, err := vehiclesIn(resolution.Zone.ID())
	if err != nil {
		return nil, resolution, err
	}

	return d.matcher.Compatible(resolution.Zone.ID(), o.Load(), vehicles), resolution, nil
}
