package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetCompatibleVehiclesQueryIsNotConstructed = errors.New(
	"GetCompatibleVehiclesQuery must be created via NewGetCompatibleVehiclesQuery constructor",
)

// GetCompatibleVehiclesQuery lists every vehicle able to carry an order.
type GetCompatibleVehiclesQuery struct {
	actor   user.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCompatibleVehiclesQuery(actor user.Actor, orderID kernel.UUID) (GetCompatibleVehiclesQuery, error) {
	if err := errors.Join(actor.UserID.Validate(), actor.Role.Validate()); err != nil {
		return GetCompatibleVehiclesQuery{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := orderID.Validate(); err != nil {
		return GetCompatibleVehiclesQuery{}, errs.NewValueIsRequiredErrorWithCause("order_id", err)
	}
	return GetCompatibleVehiclesQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCompatibleVehiclesQuery) Actor() user.Actor    { return q.actor }
func (q GetCompatibleVehiclesQuery) OrderID() kernel.UUID { return q.orderID }

func (q GetCompatibleVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetCompatibleVehiclesQueryIsNotConstructed)
}

// CompatibleVehicles is the resolved zone of the order (nil when none) and the
// qualifying vehicles in registry order.
type CompatibleVehicles struct {
	Zone     *ZoneView
	Vehicles []VehicleView
}

// GetCompatibleVehiclesQueryHandler runs the same zone resolution and
// capacity test as auto-assignment, without modifying the order.
type GetCompatibleVehiclesQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	vehicles   ListVehiclesQueryHandler
	dispatcher services.OrderDispatcher
}

func NewGetCompatibleVehiclesQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	vehicles ListVehiclesQueryHandler,
) GetCompatibleVehiclesQueryHandler {
	return GetCompatibleVehiclesQueryHandler{
		uowFactory: uowFactory,
		vehicles:   vehicles,
		dispatcher: services.NewOrderDispatcher(),
	}
}

func (h GetCompatibleVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetCompatibleVehiclesQuery,
) (CompatibleVehicles, error) {
	if err := query.Validate(); err != nil {
		return CompatibleVehicles{}, err
	}

	// Reads only, so the repositories run on the pool without a transaction.
	uow := h.uowFactory.Create()

	o, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return CompatibleVehicles{}, err
	}
	if !query.Actor().CanAccessOrderOf(o.OwnerID()) {
		return CompatibleVehicles{}, errs.NewForbiddenError("only the owner of the order or an admin can do this")
	}

	zones, err := uow.ZoneRepository().GetAll(ctx)
	if err != nil {
		return CompatibleVehicles{}, err
	}

	vehicleRepo := uow.VehicleRepository()
	matches, resolution, err := h.dispatcher.Compatible(o, zones, func(zoneID kernel.UUID) ([]*vehicle.Vehicle, error) {
		return vehicleRepo.GetAllInZone(ctx, zoneID)
	})
	if err != nil {
		return CompatibleVehicles{}, err
	}

	result := CompatibleVehicles{Vehicles: make([]VehicleView, 0, len(matches))}
	if resolution.Resolved() {
		result.Zone = &ZoneView{
			ID:          resolution.Zone.ID(),
			Name:        resolution.Zone.Name(),
			Coordinates: boundaryPairs(resolution.Zone.EncodedBoundary()),
		}
	}
	if len(matches) == 0 {
		return result, nil
	}

	ids := make([]kernel.UUID, 0, len(matches))
	for _, v := range matches {
		ids = append(ids, v.ID())
	}
	byIDs, err := NewListVehiclesByIDsQuery(ids)
	if err != nil {
		return CompatibleVehicles{}, err
	}
	if result.Vehicles, err = h.vehicles.Handle(ctx, byIDs); err != nil {
		return CompatibleVehicles{}, err
	}

	return result, nil
}
