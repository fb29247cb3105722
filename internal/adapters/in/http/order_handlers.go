package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /orders. The order is auto-assigned before the
// response is written; an unassigned order is still a 201.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.CreateOrderJSONRequestBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	itemName := ""
	if body.ItemName != nil {
		itemName = *body.ItemName
	}

	cmd, err := commands.NewCreateOrderCommand(
		actor, itemName, body.LengthCm, body.WidthCm, body.HeightCm, body.WeightKg, body.Latitude, body.Longitude)
	if err != nil {
		return err
	}

	result, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toOrder(result.Order, result.Vehicle))
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(actor)
	if err != nil {
		return err
	}

	orders, err := s.queries.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderFromView(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCompatibleVehicles handles GET /orders/{order_id}/compatible-vehicles.
func (s *Server) GetCompatibleVehicles(ctx echo.Context, orderID servers.OrderID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(orderID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCompatibleVehiclesQuery(actor, id)
	if err != nil {
		return err
	}

	result, err := s.queries.GetCompatibleVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Vehicle, len(result.Vehicles))
	for i, v := range result.Vehicles {
		response[i] = toVehicleFromView(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignOrder handles POST /orders/{order_id}/assign.
func (s *Server) AssignOrder(ctx echo.Context, orderID servers.OrderID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.AssignOrderJSONRequestBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(orderID)
	if err != nil {
		return err
	}
	vehicleID, err := kernel.UUIDFromGoogle(body.VehicleId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignOrderCommand(actor, id, vehicleID)
	if err != nil {
		return err
	}

	result, err := s.commands.AssignOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrder(result.Order, result.Vehicle))
}

// UnassignOrder handles POST /orders/{order_id}/unassign.
func (s *Server) UnassignOrder(ctx echo.Context, orderID servers.OrderID) error {
	actor, id, err := s.pathTarget(ctx, orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUnassignOrderCommand(actor, id)
	if err != nil {
		return err
	}

	result, err := s.commands.UnassignOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrder(result.Order, result.Vehicle))
}

// CancelOrder handles POST /orders/{order_id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderID servers.OrderID) error {
	actor, id, err := s.pathTarget(ctx, orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(actor, id)
	if err != nil {
		return err
	}

	result, err := s.commands.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrder(result.Order, result.Vehicle))
}

// ShipOrder handles POST /orders/{order_id}/ship.
func (s *Server) ShipOrder(ctx echo.Context, orderID servers.OrderID) error {
	actor, id, err := s.pathTarget(ctx, orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewShipOrderCommand(actor, id)
	if err != nil {
		return err
	}

	result, err := s.commands.ShipOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrder(result.Order, result.Vehicle))
}
