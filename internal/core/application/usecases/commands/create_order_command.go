package commands

import (
	"errors"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a rental order for a unit.
// The actor becomes the order's tenant; the landlord is derived from the
// unit, never taken from input.
type CreateOrderCommand struct {
	houseID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open an order on the given unit.
func NewCreateOrderCommand(houseID kernel.UUID, actor kernel.Actor) (CreateOrderCommand, error) {
	if err := houseID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		houseID: houseID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// HouseID returns the unit to rent.
func (c CreateOrderCommand) HouseID() kernel.UUID {
	return c.houseID
}

// Actor returns the requesting party.
func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}
