package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Pending ──> Assigned ──> Shipped
//	   │  ^         │
//	   │  └─────────┘ (unassign)
//	   └──> Cancelled
//
// Cancel and Ship are guarded transitions. Assign and Unassign are
// administrative overrides: they force Assigned and Pending respectively
// from any state.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Pending orders wait for a vehicle.
	Pending

	// Assigned orders have a vehicle attached.
	Assigned

	// Shipped orders left with their vehicle.
	Shipped

	// Cancelled orders were withdrawn by their owner before assignment.
	Cancelled
)

// Wire and storage names. They are part of the external contract.
const (
	PendingName   = "PENDING"
	AssignedName  = "ASSIGNED"
	ShippedName   = "SHIPPED"
	CancelledName = "CANCELLED"
)

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   PendingName,
		Assigned:  AssignedName,
		Shipped:   ShippedName,
		Cancelled: CancelledName,
	}
}

// ParseStatus maps a wire name back to its Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateCanHaveVehicle checks that the vehicle link agrees with the status:
// Assigned and Shipped orders carry a vehicle, Pending and Cancelled ones do not.
func (s Status) ValidateCanHaveVehicle(vehicle bool) error {
	needsVehicle := s == Assigned || s == Shipped
	if vehicle && !needsVehicle {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a vehicle", s))
	}
	if !vehicle && needsVehicle {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no vehicle", s))
	}
	return nil
}

// Assign always yields Assigned.
func (s Status) Assign() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Assigned, nil
}

// Unassign always yields Pending.
func (s Status) Unassign() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Pending, nil
}

// Cancel is allowed from Pending only.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidStateTransitionError("order", s.String(), CancelledName)
	}
	return Cancelled, nil
}

// Ship is allowed from Assigned only.
func (s Status) Ship() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewInvalidStateTransitionError("order", s.String(), ShippedName)
	}
	return Shipped, nil
}
