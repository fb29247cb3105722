// Package http is the REST adapter. Server implements the generated
// ServerInterface; each method authenticates through the actor stored by the
// request validator, builds a command or query and renders the result.
// Errors are returned as-is and rendered by NewErrorHandler.
package http

import (
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/generated/servers"
)

var _ servers.ServerInterface = (*Server)(nil)

// Commands groups the command handlers the server dispatches to.
type Commands struct {
	CreateOrder           commands.CreateOrderCommandHandler
	AssignOrder           commands.AssignOrderCommandHandler
	UnassignOrder         commands.UnassignOrderCommandHandler
	CancelOrder           commands.CancelOrderCommandHandler
	ShipOrder             commands.ShipOrderCommandHandler
	CreateZone            commands.CreateZoneCommandHandler
	DeleteZone            commands.DeleteZoneCommandHandler
	CreateVehicle         commands.CreateVehicleCommandHandler
	DeleteVehicle         commands.DeleteVehicleCommandHandler
	SignupShipper         commands.SignupShipperCommandHandler
	IssueToken            commands.IssueTokenCommandHandler
	UpdateUserSettings    commands.UpdateUserSettingsCommandHandler
	UpdateCompanySettings commands.UpdateCompanySettingsCommandHandler
}

// Queries groups the query handlers the server reads through.
type Queries struct {
	ListOrders            queries.ListOrdersQueryHandler
	ListZones             queries.ListZonesQueryHandler
	ListVehicles          queries.ListVehiclesQueryHandler
	GetCompatibleVehicles queries.GetCompatibleVehiclesQueryHandler
	GetCurrentUser        queries.GetCurrentUserQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
type Server struct {
	commands Commands
	queries  Queries
}

func NewServer(cmds Commands, qs Queries) *Server {
	return &Server{commands: cmds, queries: qs}
}
