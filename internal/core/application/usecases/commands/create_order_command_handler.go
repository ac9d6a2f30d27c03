package commands

import (
	"context"
	"time"

	"renthub/internal/core/domain/model/order"
	"renthub/internal/pkg/errs"

	"renthub/internal/core/domain/model/kernel"
)

// CreateOrderCommandHandler opens rental orders. The unit must exist and be
// available; the resulting order waits for the tenant's payment.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle validates the unit's availability and creates the order in
// WaitingPayment status. The amount is the unit's listed price and the
// deposit defaults to one month's rent.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	unit, err := uow.HouseInventory().GetUnit(ctx, cmd.HouseID())
	if err != nil {
		return nil, err
	}

	if !unit.IsAvailable() {
		return nil, errs.NewConflictError("unit", "not available")
	}

	now := time.Now().UTC()
	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		order.NewOrderNumber(now),
		unit.ID(),
		cmd.Actor().UserID(),
		unit.OwnerID(),
		unit.Price(),
		unit.Price(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
