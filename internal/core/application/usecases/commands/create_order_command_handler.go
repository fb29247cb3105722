package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// CreateOrderResult is the persisted order with the auto-assignment decision.
// Zone is set whenever the pickup resolved to a zone, even without a vehicle.
type CreateOrderResult struct {
	Order   *order.Order
	Outcome services.Outcome
	Zone    *zone.Zone
	Vehicle *vehicle.Vehicle
}

// CreateOrderCommandHandler records a new order and auto-assigns it.
//
// Zone resolution, capacity matching and the insert run in one transaction,
// so the order is stored either Assigned with its vehicle or Pending without.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.OrderDispatcher
	recorder   ports.AssignmentRecorder
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	recorder ports.AssignmentRecorder,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
		recorder:   recorder,
		logger:     logger.With("component", "CreateOrderCommandHandler"),
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), cmd.Actor().UserID, cmd.ItemName(), cmd.Dimensions(), cmd.WeightKg(), cmd.Pickup())
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	zoneRepo := uow.ZoneRepository()
	vehicleRepo := uow.VehicleRepository()
	orderRepo := uow.OrderRepository()

	zones, err := zoneRepo.GetAll(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	dispatch, err := h.dispatcher.Dispatch(o, zones, func(zoneID kernel.UUID) ([]*vehicle.Vehicle, error) {
		return vehicleRepo.GetAllInZone(ctx, zoneID)
	})
	if err != nil {
		return CreateOrderResult{}, err
	}

	for _, skipped := range dispatch.Resolution.Skipped {
		h.logger.WarnContext(ctx, "zone skipped: boundary is malformed",
			"zone_id", skipped.Zone.ID().String(),
			"zone_name", skipped.Zone.Name(),
			"error", skipped.Err)
		if h.recorder != nil {
			h.recorder.RecordSkippedZone(skipped.Zone.Name())
		}
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	if h.recorder != nil {
		h.recorder.RecordOutcome(string(dispatch.Outcome))
	}
	h.logger.InfoContext(ctx, "order created",
		"order_id", o.ID().String(),
		"outcome", string(dispatch.Outcome),
		"status", o.Status().String())

	return CreateOrderResult{
		Order:   o,
		Outcome: dispatch.Outcome,
		Zone:    dispatch.Resolution.Zone,
		Vehicle: dispatch.Vehicle,
	}, nil
}
