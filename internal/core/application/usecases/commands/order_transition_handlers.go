package commands

import (
	"context"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/model/user"
)

// OrderResult is an order after a transition, with its vehicle when it has one.
type OrderResult struct {
	Order   *order.Order
	Vehicle *vehicle.Vehicle
}

// transition locks the order, applies fn and persists the order in one
// transaction. fn returns the vehicle to report alongside the order.
func transition(
	ctx context.Context,
	uowFactory UoWFactory,
	cmd orderCommand,
	fn func(ctx context.Context, uow UoW, o *order.Order) (*vehicle.Vehicle, error),
) (OrderResult, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return OrderResult{}, err
	}

	v, err := fn(ctx, uow, o)
	if err != nil {
		return OrderResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return OrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResult{}, err
	}

	return OrderResult{Order: o, Vehicle: v}, nil
}

// AssignOrderCommandHandler attaches a vehicle chosen by an admin. The order is
// forced to Assigned whatever its status; capacity is not checked.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewAssignOrderCommandHandler(uowFactory UoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{uowFactory: uowFactory}
}

func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) (OrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderResult{}, err
	}
	if err := requireAdmin(cmd.Actor(), "assign order"); err != nil {
		return OrderResult{}, err
	}

	return transition(ctx, h.uowFactory, cmd.orderCommand,
		func(ctx context.Context, uow UoW, o *order.Order) (*vehicle.Vehicle, error) {
			v, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
			if err != nil {
				return nil, err
			}
			return v, o.Assign(v.ID())
		})
}

// UnassignOrderCommandHandler detaches the vehicle and forces Pending.
type UnassignOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewUnassignOrderCommandHandler(uowFactory UoWFactory) UnassignOrderCommandHandler {
	return UnassignOrderCommandHandler{uowFactory: uowFactory}
}

func (h UnassignOrderCommandHandler) Handle(ctx context.Context, cmd UnassignOrderCommand) (OrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderResult{}, err
	}
	if err := requireAdmin(cmd.Actor(), "unassign order"); err != nil {
		return OrderResult{}, err
	}

	return transition(ctx, h.uowFactory, cmd.orderCommand,
		func(_ context.Context, _ UoW, o *order.Order) (*vehicle.Vehicle, error) {
			return nil, o.Unassign()
		})
}

// CancelOrderCommandHandler lets the owner cancel a Pending order. Ownership
// is checked before the status.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (OrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderResult{}, err
	}

	return transition(ctx, h.uowFactory, cmd.orderCommand,
		func(_ context.Context, _ UoW, o *order.Order) (*vehicle.Vehicle, error) {
			if err := requireOwner(cmd.Actor(), o); err != nil {
				return nil, err
			}
			return nil, o.Cancel()
		})
}

// ShipOrderCommandHandler moves an Assigned order to Shipped.
type ShipOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewShipOrderCommandHandler(uowFactory UoWFactory) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{uowFactory: uowFactory}
}

func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) (OrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderResult{}, err
	}
	if err := requireAdmin(cmd.Actor(), "ship order"); err != nil {
		return OrderResult{}, err
	}

	return transition(ctx, h.uowFactory, cmd.orderCommand,
		func(ctx context.Context, uow UoW, o *order.Order) (*vehicle.Vehicle, error) {
			if err := o.Ship(); err != nil {
				return nil, err
			}
			return uow.VehicleRepository().Get(ctx, *o.VehicleID())
		})
}

func requireOwner(actor user.Actor, o *order.Order) error {
	if !o.IsOwnedBy(actor.UserID) {
		return forbiddenNotOwner
	}
	return nil
}
