package ports

import (
	"context"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. The order number carries a unique index;
	// a collision fails the insert.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order using an optimistic
	// version check. A concurrent transition that already advanced the
	// version makes Update fail with an invalid state error, so exactly
	// one of two racing transitions wins.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
