package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/guard"
)

var (
	ErrAssignOrderCommandIsNotConstructed = errors.New(
		"AssignOrderCommand must be created via NewAssignOrderCommand constructor")
	ErrUnassignOrderCommandIsNotConstructed = errors.New(
		"UnassignOrderCommand must be created via NewUnassignOrderCommand constructor")
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor")
	ErrShipOrderCommandIsNotConstructed = errors.New(
		"ShipOrderCommand must be created via NewShipOrderCommand constructor")
)

// orderCommand carries what every order transition needs.
type orderCommand struct {
	actor   user.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func newOrderCommand(actor user.Actor, orderID kernel.UUID) (orderCommand, error) {
	if err := errors.Join(validateActor(actor), orderID.Validate()); err != nil {
		return orderCommand{}, err
	}
	return orderCommand{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c orderCommand) Actor() user.Actor    { return c.actor }
func (c orderCommand) OrderID() kernel.UUID { return c.orderID }

// AssignOrderCommand is an admin override attaching a vehicle to an order.
type AssignOrderCommand struct {
	orderCommand
	vehicleID kernel.UUID
}

func NewAssignOrderCommand(actor user.Actor, orderID, vehicleID kernel.UUID) (AssignOrderCommand, error) {
	base, err := newOrderCommand(actor, orderID)
	if err = errors.Join(err, vehicleID.Validate()); err != nil {
		return AssignOrderCommand{}, err
	}
	return AssignOrderCommand{orderCommand: base, vehicleID: vehicleID}, nil
}

func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

func (c AssignOrderCommand) VehicleID() kernel.UUID { return c.vehicleID }

// UnassignOrderCommand is an admin override returning an order to Pending.
type UnassignOrderCommand struct {
	orderCommand
}

func NewUnassignOrderCommand(actor user.Actor, orderID kernel.UUID) (UnassignOrderCommand, error) {
	base, err := newOrderCommand(actor, orderID)
	if err != nil {
		return UnassignOrderCommand{}, err
	}
	return UnassignOrderCommand{orderCommand: base}, nil
}

func (c UnassignOrderCommand) Validate() error {
	return c.guard.Validate(ErrUnassignOrderCommandIsNotConstructed)
}

// CancelOrderCommand is the owner withdrawing a Pending order.
type CancelOrderCommand struct {
	orderCommand
}

func NewCancelOrderCommand(actor user.Actor, orderID kernel.UUID) (CancelOrderCommand, error) {
	base, err := newOrderCommand(actor, orderID)
	if err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{orderCommand: base}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// ShipOrderCommand marks an Assigned order as Shipped.
type ShipOrderCommand struct {
	orderCommand
}

func NewShipOrderCommand(actor user.Actor, orderID kernel.UUID) (ShipOrderCommand, error) {
	base, err := newOrderCommand(actor, orderID)
	if err != nil {
		return ShipOrderCommand{}, err
	}
	return ShipOrderCommand{orderCommand: base}, nil
}

func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}
