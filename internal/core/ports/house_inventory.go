package ports

import (
	"context"

	"renthub/internal/core/domain/model/house"
	"renthub/internal/core/domain/model/kernel"
)

// HouseInventory is the collaborator holding rentable units. The core reads
// a unit's snapshot to validate availability and flips its status to Rented
// on confirmation; listing management stays outside the core.
type HouseInventory interface {
	// GetUnit retrieves the snapshot of a unit.
	GetUnit(ctx context.Context, id kernel.UUID) (house.Unit, error)

	// SetUnitStatus updates a unit's availability.
	SetUnitStatus(ctx context.Context, id kernel.UUID, status house.Status) error
}
