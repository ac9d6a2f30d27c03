package commands

import (
	"errors"
	"time"

	"renthub/internal/pkg/guard"
)

var ErrCompleteExpiredLeasesCommandIsNotConstructed = errors.New(
	"CompleteExpiredLeasesCommand must be created via NewCompleteExpiredLeasesCommand constructor",
)

// CompleteExpiredLeasesCommand sweeps active leases whose agreed end date has
// passed and marks them ended. Issued by the scheduler, not by a user.
type CompleteExpiredLeasesCommand struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewCompleteExpiredLeasesCommand creates a sweep command for the given
// reference time.
func NewCompleteExpiredLeasesCommand(asOf time.Time) (CompleteExpiredLeasesCommand, error) {
	if asOf.IsZero() {
		return CompleteExpiredLeasesCommand{}, errors.New("asOf time must not be zero")
	}

	return CompleteExpiredLeasesCommand{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteExpiredLeasesCommand) Validate() error {
	return c.guard.Validate(ErrCompleteExpiredLeasesCommandIsNotConstructed)
}

// AsOf returns the reference time of the sweep.
func (c CompleteExpiredLeasesCommand) AsOf() time.Time {
	return c.asOf
}
