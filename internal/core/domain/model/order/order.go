package order

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ItemNameMaxLength bounds the free-text label of an order.
const ItemNameMaxLength = 255

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a shipment request.
//
// Invariants:
//   - identity, owner, dimensions and pickup point are always valid
//   - volume is derived from the dimensions and never stored independently
//   - Assigned and Shipped orders reference a vehicle, other statuses do not
//
// Status changes go through Assign, Unassign, Cancel and Ship only.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// ownerID is the user who submitted the order
	ownerID kernel.UUID

	// itemName is an optional free-text label
	itemName string

	dimensions kernel.Dimensions

	// load combines the weight with the derived volume
	load kernel.Load

	// pickup is where the parcel is collected
	pickup kernel.GeoPoint

	status Status

	// vehicleID is the assigned vehicle (nil if unassigned)
	vehicleID *kernel.UUID

	isConstructed bool
}

// NewOrder creates a Pending order without a vehicle. Auto-assignment happens
// afterwards through Assign.
//
//	dims, _ := kernel.NewDimensions(50, 40, 30)
//	pickup, _ := kernel.NewGeoPoint(15, 15)
//	o, err := order.NewOrder(kernel.NewUUID(), ownerID, "books", dims, 12.5, pickup)
func NewOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	itemName string,
	dimensions kernel.Dimensions,
	weightKg float64,
	pickup kernel.GeoPoint,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOwner(ownerID),
		order.setItemName(itemName),
		order.setPhysical(dimensions, weightKg),
		order.setPickup(pickup),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order from storage. The volume is recomputed from
// the dimensions and the status must agree with the vehicle link.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	itemName string,
	dimensions kernel.Dimensions,
	weightKg float64,
	pickup kernel.GeoPoint,
	status Status,
	vehicleID *kernel.UUID,
) (*Order, error) {
	order, err := NewOrder(id, ownerID, itemName, dimensions, weightKg, pickup)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		status.Validate(),
		status.ValidateCanHaveVehicle(vehicleID != nil),
	); err != nil {
		return nil, err
	}
	if vehicleID != nil {
		if err = vehicleID.Validate(); err != nil {
			return nil, err
		}
		id := *vehicleID
		order.vehicleID = &id
	}
	order.status = status

	return order, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// IsOwnedBy reports whether userID submitted the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.ownerID.IsEqual(userID)
}

func (o *Order) ItemName() string {
	return o.itemName
}

func (o *Order) Dimensions() kernel.Dimensions {
	return o.dimensions
}

func (o *Order) WeightKg() float64 {
	return o.load.WeightKg()
}

// VolumeM3 is length × width × height / 1,000,000.
func (o *Order) VolumeM3() float64 {
	return o.load.VolumeM3()
}

// Load is the weight and volume a vehicle must be able to carry.
func (o *Order) Load() kernel.Load {
	return o.load
}

func (o *Order) Pickup() kernel.GeoPoint {
	return o.pickup
}

func (o *Order) Status() Status {
	return o.status
}

// VehicleID returns the assigned vehicle, or nil.
func (o *Order) VehicleID() *kernel.UUID {
	return o.vehicleID
}

// Assign attaches a vehicle and forces the Assigned status, whatever the
// previous state was. Capacity is not checked here.
func (o *Order) Assign(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.vehicleID = &vehicleID
	return nil
}

// Unassign detaches the vehicle and forces Pending.
func (o *Order) Unassign() error {
	newStatus, err := o.status.Unassign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.vehicleID = nil
	return nil
}

// Cancel moves a Pending order to Cancelled. Any other status is an
// invalid state transition.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Ship moves an Assigned order to Shipped, keeping its vehicle.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwner(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user_id", err)
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setItemName(itemName string) error {
	itemName = strings.TrimSpace(itemName)
	if len(itemName) > ItemNameMaxLength {
		return errs.NewValueIsOutOfRangeError("item_name length", len(itemName), 0, ItemNameMaxLength)
	}
	o.itemName = itemName
	return nil
}

func (o *Order) setPhysical(dimensions kernel.Dimensions, weightKg float64) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	load, err := kernel.NewLoad(weightKg, dimensions.VolumeM3())
	if err != nil {
		return err
	}
	o.dimensions = dimensions
	o.load = load
	return nil
}

func (o *Order) setPickup(pickup kernel.GeoPoint) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	o.pickup = pickup
	return nil
}
