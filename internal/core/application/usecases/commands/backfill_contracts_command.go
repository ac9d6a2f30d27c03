package commands

import (
	"errors"

	"renthub/internal/pkg/guard"
)

var ErrBackfillContractsCommandIsNotConstructed = errors.New(
	"BackfillContractsCommand must be created via NewBackfillContractsCommand constructor",
)

// BackfillContractsCommand retries contract generation for leases saved
// without a contract locator. Issued by the scheduler, not by a user.
type BackfillContractsCommand struct {
	guard guard.ConstructorGuard
}

// NewBackfillContractsCommand creates a backfill command.
func NewBackfillContractsCommand() BackfillContractsCommand {
	return BackfillContractsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c BackfillContractsCommand) Validate() error {
	return c.guard.Validate(ErrBackfillContractsCommandIsNotConstructed)
}
