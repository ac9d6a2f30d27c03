package ports

import (
	"context"
	"time"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/domain/model/lease"
)

// LeaseRepository defines the persistence contract for lease records.
// The storage layer enforces at most one lease per order.
type LeaseRepository interface {
	// Add persists a new lease record. Inserting a second lease for the
	// same order fails on the unique order index.
	Add(ctx context.Context, aggregate *lease.LeaseRecord) error

	// Update persists changes to an existing lease record.
	Update(ctx context.Context, aggregate *lease.LeaseRecord) error

	// Get retrieves a lease record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*lease.LeaseRecord, error)

	// GetByOrderID retrieves the lease record created from the given order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*lease.LeaseRecord, error)

	// GetAllActiveExpired retrieves active leases whose end date lies
	// before asOf. Used by the lease expiry job.
	GetAllActiveExpired(ctx context.Context, asOf time.Time) ([]*lease.LeaseRecord, error)

	// GetAllMissingContract retrieves leases without a contract locator.
	// Used by the contract backfill job.
	GetAllMissingContract(ctx context.Context) ([]*lease.LeaseRecord, error)
}
