package commands

import (
	"context"
	"fmt"
	"time"

	"renthub/internal/core/domain/model/ledger"
	"renthub/internal/core/domain/model/order"
	"renthub/internal/pkg/errs"
)

// RefundOrderCommandHandler reverses a payment before confirmation. The
// order transition and the inverse ledger pair (landlord expense, tenant
// income) commit in one transaction or not at all.
type RefundOrderCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewRefundOrderCommandHandler creates a handler for order refunds.
func NewRefundOrderCommandHandler(uowFactory SettlementUoWFactory) RefundOrderCommandHandler {
	return RefundOrderCommandHandler{uowFactory: uowFactory}
}

// Handle moves the order to Refunded and appends the inverse settlement
// pair. Only the order's tenant may request a refund, and only while the
// order awaits confirmation.
func (h *RefundOrderCommandHandler) Handle(ctx context.Context, cmd RefundOrderCommand) (*order.Order, error) {
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
		return nil, errs.NewPermissionError("refund order", cmd.Actor().UserID().String())
	}

	now := time.Now().UTC()
	if err = o.Refund(now); err != nil {
		return nil, err
	}

	// The original payment reversed: the landlord pays the tenant back.
	pair, err := ledger.NewSettlementPair(
		o.ID(),
		o.LandlordID(),
		o.TenantID(),
		o.Amount(),
		fmt.Sprintf("refund issued for order %s", o.OrderNo()),
		fmt.Sprintf("refund received for order %s", o.OrderNo()),
		now,
	)
	if err != nil {
		return nil, err
	}

	ledgerRepo := uow.LedgerRepository()
	for _, entry := range pair {
		if err = ledgerRepo.Add(ctx, entry); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
