package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateZone handles POST /zones.
func (s *Server) CreateZone(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.CreateZoneJSONRequestBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateZoneCommand(actor, body.Name, body.Coordinates)
	if err != nil {
		return err
	}

	z, err := s.commands.CreateZone.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toZone(z))
}

// ListZones handles GET /zones.
func (s *Server) ListZones(ctx echo.Context) error {
	if _, err := actorFrom(ctx); err != nil {
		return err
	}

	zones, err := s.queries.ListZones.Handle(ctx.Request().Context(), queries.NewListZonesQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Zone, len(zones))
	for i, z := range zones {
		response[i] = toZoneFromView(z)
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteZone handles DELETE /zones/{zone_id}.
func (s *Server) DeleteZone(ctx echo.Context, zoneID openapi_types.UUID) error {
	actor, id, err := s.pathTarget(ctx, zoneID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteZoneCommand(actor, id)
	if err != nil {
		return err
	}

	if err = s.commands.DeleteZone.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: "Zone deleted successfully"})
}

// CreateVehicle handles POST /vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.CreateVehicleJSONRequestBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	var zoneID *kernel.UUID
	if body.ZoneId != nil {
		id, idErr := kernel.UUIDFromGoogle(*body.ZoneId)
		if idErr != nil {
			return idErr
		}
		zoneID = &id
	}

	cmd, err := commands.NewCreateVehicleCommand(actor, body.VehicleNumber, body.MaxWeightKg, body.MaxVolumeM3, zoneID)
	if err != nil {
		return err
	}

	result, err := s.commands.CreateVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toNewVehicle(result.Vehicle, result.Zone))
}

// ListVehicles handles GET /vehicles.
func (s *Server) ListVehicles(ctx echo.Context) error {
	if _, err := actorFrom(ctx); err != nil {
		return err
	}

	vehicles, err := s.queries.ListVehicles.Handle(ctx.Request().Context(), queries.NewListVehiclesQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Vehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = toVehicleFromView(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteVehicle handles DELETE /vehicles/{vehicle_id}.
func (s *Server) DeleteVehicle(ctx echo.Context, vehicleID openapi_types.UUID) error {
	actor, id, err := s.pathTarget(ctx, vehicleID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteVehicleCommand(actor, id)
	if err != nil {
		return err
	}

	if err = s.commands.DeleteVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: "Vehicle deleted successfully"})
}

// pathTarget resolves the caller and the identity addressed by the path.
func (s *Server) pathTarget(ctx echo.Context, raw openapi_types.UUID) (user.Actor, kernel.UUID, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return user.Actor{}, kernel.UUID{}, err
	}
	id, err := kernel.UUIDFromGoogle(raw)
	if err != nil {
		return user.Actor{}, kernel.UUID{}, err
	}
	return actor, id, nil
}
