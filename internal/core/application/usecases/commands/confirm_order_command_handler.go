package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"renthub/internal/core/domain/model/house"
	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/domain/model/lease"
	"renthub/internal/core/domain/model/order"
	"renthub/internal/core/domain/services"
	"renthub/internal/core/ports"
	"renthub/internal/pkg/errs"
)

// ConfirmOrderCommandHandler completes the rental workflow: the order becomes
// Confirmed, the unit leaves the market, and the lease record is created, all
// in one transaction. Contract rendering happens inside the same request but
// outside the transactional guarantee: a renderer failure degrades to a lease
// without a contract locator and never rolls the confirmation back.
type ConfirmOrderCommandHandler struct {
	uowFactory    ConfirmOrderUoWFactory
	leaseFactory  services.LeaseFactory
	renderer      ports.DocumentRenderer
	renderTimeout time.Duration
	logger        *slog.Logger
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(
	uowFactory ConfirmOrderUoWFactory,
	leaseFactory services.LeaseFactory,
	renderer ports.DocumentRenderer,
	renderTimeout time.Duration,
	logger *slog.Logger,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory:    uowFactory,
		leaseFactory:  leaseFactory,
		renderer:      renderer,
		renderTimeout: renderTimeout,
		logger:        logger,
	}
}

// Handle confirms a paid order. Only the order's landlord or an admin may
// confirm. Returns the confirmed order together with the lease it produced.
func (h *ConfirmOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmOrderCommand,
) (*order.Order, *lease.LeaseRecord, error) {
	if err := cmd.Validate(); err != nil {
		return nil, nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, nil, err
	}

	if !cmd.Actor().Is(o.LandlordID()) && !cmd.Actor().IsAdmin() {
		return nil, nil, errs.NewPermissionError("confirm order", cmd.Actor().UserID().String())
	}

	now := time.Now().UTC()
	if err = o.Confirm(now); err != nil {
		return nil, nil, err
	}

	// A confirmed order referencing a missing unit or user is corrupted
	// data, not a client mistake.
	unit, err := uow.HouseInventory().GetUnit(ctx, o.HouseID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil, errs.NewDataIntegrityErrorWithCause("house", o.HouseID().String(), err)
		}
		return nil, nil, err
	}

	if err = uow.HouseInventory().SetUnitStatus(ctx, unit.ID(), house.Rented); err != nil {
		return nil, nil, err
	}

	l, err := h.leaseFactory.CreateFromConfirmedOrder(o, unit, now)
	if err != nil {
		return nil, nil, err
	}

	tenant, err := h.resolveUser(ctx, uow, o.TenantID())
	if err != nil {
		return nil, nil, err
	}
	landlord, err := h.resolveUser(ctx, uow, o.LandlordID())
	if err != nil {
		return nil, nil, err
	}

	h.renderContract(ctx, l, o, tenant, landlord, now)

	if err = uow.LeaseRepository().Add(ctx, l); err != nil {
		return nil, nil, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return o, l, nil
}

func (h *ConfirmOrderCommandHandler) resolveUser(
	ctx context.Context,
	uow ConfirmOrderUoW,
	id kernel.UUID,
) (ports.UserSnapshot, error) {
	user, err := uow.UserDirectory().GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ports.UserSnapshot{}, errs.NewDataIntegrityErrorWithCause("user", id.String(), err)
		}
		return ports.UserSnapshot{}, err
	}
	return user, nil
}

// renderContract attempts contract generation within the configured timeout.
// Failures are logged and swallowed: the lease persists without a locator and
// the backfill job retries later.
func (h *ConfirmOrderCommandHandler) renderContract(
	ctx context.Context,
	l *lease.LeaseRecord,
	o *order.Order,
	tenant ports.UserSnapshot,
	landlord ports.UserSnapshot,
	now time.Time,
) {
	renderCtx, cancel := context.WithTimeout(ctx, h.renderTimeout)
	defer cancel()

	locator, err := h.renderer.Render(renderCtx, ports.LeaseSnapshot{
		LeaseID:       l.ID().String(),
		OrderNo:       o.OrderNo(),
		HouseID:       l.HouseID().String(),
		StartDate:     l.StartDate(),
		EndDate:       l.EndDate(),
		RentAmount:    l.RentAmount(),
		Deposit:       o.Deposit(),
		PaymentCycle:  string(l.PaymentCycle()),
		TenantName:    tenant.Name,
		TenantPhone:   tenant.Phone,
		LandlordName:  landlord.Name,
		LandlordPhone: landlord.Phone,
	})
	if err != nil {
		h.logger.Warn("contract rendering failed, lease saved without contract",
			"leaseId", l.ID().String(),
			"orderNo", o.OrderNo(),
			"error", err)
		return
	}

	if err = l.AttachContract(locator, now); err != nil {
		h.logger.Warn("contract locator rejected",
			"leaseId", l.ID().String(),
			"error", err)
	}
}
