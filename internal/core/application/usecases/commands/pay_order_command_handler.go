package commands

import (
	"context"
	"fmt"
	"time"

	"renthub/internal/core/domain/model/ledger"
	"renthub/internal/core/domain/model/order"
	"renthub/internal/pkg/errs"
)

// PayOrderCommandHandler records the tenant's payment. The order transition
// and its balanced ledger pair (tenant expense, landlord income) commit in
// one transaction or not at all.
type PayOrderCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewPayOrderCommandHandler creates a handler for order payment.
func NewPayOrderCommandHandler(uowFactory SettlementUoWFactory) PayOrderCommandHandler {
	return PayOrderCommandHandler{uowFactory: uowFactory}
}

// Handle moves the order to PaidWaitingConfirm and appends the settlement
// pair. Only the order's tenant may pay; any other actor fails with a
// permission error before any state is touched.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (*order.Order, error) {
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
		return nil, errs.NewPermissionError("pay order", cmd.Actor().UserID().String())
	}

	now := time.Now().UTC()
	if err = o.Pay(cmd.Method(), now); err != nil {
		return nil, err
	}

	pair, err := ledger.NewSettlementPair(
		o.ID(),
		o.TenantID(),
		o.LandlordID(),
		o.Amount(),
		fmt.Sprintf("rent payment for order %s", o.OrderNo()),
		fmt.Sprintf("rent income for order %s", o.OrderNo()),
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
