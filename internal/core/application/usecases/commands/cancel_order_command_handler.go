package commands

import (
	"context"
	"time"

	"renthub/internal/core/domain/model/order"
	"renthub/internal/pkg/errs"
)

// CancelOrderCommandHandler withdraws unpaid orders. No money has moved, so
// cancellation touches neither the ledger nor the unit's availability.
type CancelOrderCommandHandler struct {
	uowFactory CancelOrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory CancelOrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

// Handle moves the order to Canceled. Only the order's tenant may cancel,
// and only while the order waits for payment.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !cmd.Actor().Is(o.TenantID()) {
		return nil, errs.NewPermissionError("cancel order", cmd.Actor().UserID().String())
	}

	if err = o.Cancel(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
