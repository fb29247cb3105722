package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateZoneCommandIsNotConstructed = errors.New(
		"CreateZoneCommand must be created via NewCreateZoneCommand constructor")
	ErrDeleteZoneCommandIsNotConstructed = errors.New(
		"DeleteZoneCommand must be created via NewDeleteZoneCommand constructor")
)

// CreateZoneCommand registers a delivery zone from raw [lat, lng] pairs.
type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	actor    user.Actor
	name     string
	boundary kernel.Polygon

	guard guard.ConstructorGuard
}

func NewCreateZoneCommand(actor user.Actor, name string, coordinates [][]float64) (CreateZoneCommand, error) {
	boundary, boundaryErr := kernel.NewPolygonFromPairs(coordinates)
	if err := errors.Join(validateActor(actor), boundaryErr); err != nil {
		return CreateZoneCommand{}, err
	}

	return CreateZoneCommand{
		actor:    actor,
		name:     name,
		boundary: boundary,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

func (c CreateZoneCommand) Actor() user.Actor        { return c.actor }
func (c CreateZoneCommand) Name() string             { return c.name }
func (c CreateZoneCommand) Boundary() kernel.Polygon { return c.boundary }

// DeleteZoneCommand removes a zone no vehicle references.
type DeleteZoneCommand struct {
	actor  user.Actor
	zoneID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteZoneCommand(actor user.Actor, zoneID kernel.UUID) (DeleteZoneCommand, error) {
	if err := errors.Join(validateActor(actor), zoneID.Validate()); err != nil {
		return DeleteZoneCommand{}, err
	}
	return DeleteZoneCommand{actor: actor, zoneID: zoneID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteZoneCommand) Validate() error {
	return c.guard.Validate(ErrDeleteZoneCommandIsNotConstructed)
}

func (c DeleteZoneCommand) Actor() user.Actor   { return c.actor }
func (c DeleteZoneCommand) ZoneID() kernel.UUID { return c.zoneID }
