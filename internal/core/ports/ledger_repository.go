package ports

import (
	"context"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/domain/model/ledger"
)

// LedgerRepository defines the persistence contract for ledger entries.
// The ledger is append-only: no update or delete operation exists.
type LedgerRepository interface {
	// Add appends a single entry. Pay/refund flows call it once per half
	// of a settlement pair within one unit of work.
	Add(ctx context.Context, entry ledger.Entry) error

	// GetAllByOrderID retrieves every entry referencing the given order.
	GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]ledger.Entry, error)
}
