package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand is a shipper's request to ship a parcel from a pickup point.
// The caller becomes the owner of the order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, "books", 50, 40, 30, 12.5, 12.97, 77.59)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor      user.Actor
	itemName   string
	dimensions kernel.Dimensions
	weightKg   float64
	pickup     kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	actor user.Actor,
	itemName string,
	lengthCm, widthCm, heightCm float64,
	weightKg float64,
	latitude, longitude float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		actor:    actor,
		itemName: itemName,
		weightKg: weightKg,
		guard:    guard.NewConstructorGuard(),
	}

	dims, dimsErr := kernel.NewDimensions(lengthCm, widthCm, heightCm)
	pickup, pickupErr := kernel.NewGeoPoint(latitude, longitude)
	if err := errors.Join(validateActor(actor), dimsErr, pickupErr); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.dimensions = dims
	cmd.pickup = pickup

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() user.Actor             { return c.actor }
func (c CreateOrderCommand) ItemName() string              { return c.itemName }
func (c CreateOrderCommand) Dimensions() kernel.Dimensions { return c.dimensions }
func (c CreateOrderCommand) WeightKg() float64             { return c.weightKg }
func (c CreateOrderCommand) Pickup() kernel.GeoPoint       { return c.pickup }
