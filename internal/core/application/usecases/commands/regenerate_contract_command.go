package commands

import (
	"errors"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/pkg/guard"
)

var ErrRegenerateContractCommandIsNotConstructed = errors.New(
	"RegenerateContractCommand must be created via NewRegenerateContractCommand constructor",
)

// RegenerateContractCommand requests a fresh contract document for a lease,
// replacing whatever locator the lease currently carries.
type RegenerateContractCommand struct {
	leaseID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewRegenerateContractCommand creates a contract regeneration command.
func NewRegenerateContractCommand(leaseID kernel.UUID, actor kernel.Actor) (RegenerateContractCommand, error) {
	if err := leaseID.Validate(); err != nil {
		return RegenerateContractCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return RegenerateContractCommand{}, err
	}

	return RegenerateContractCommand{
		leaseID: leaseID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegenerateContractCommand) Validate() error {
	return c.guard.Validate(ErrRegenerateContractCommandIsNotConstructed)
}

// LeaseID returns the lease whose contract is regenerated.
func (c RegenerateContractCommand) LeaseID() kernel.UUID {
	return c.leaseID
}

// Actor returns the requesting party.
func (c RegenerateContractCommand) Actor() kernel.Actor {
	return c.actor
}
