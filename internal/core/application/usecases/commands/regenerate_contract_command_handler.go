package commands

import (
	"context"
	"errors"
	"time"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/domain/model/lease"
	"renthub/internal/core/ports"
	"renthub/internal/pkg/errs"
)

// RegenerateContractCommandHandler re-renders a lease's contract document on
// demand. Unlike confirmation, regeneration is explicit: a renderer failure
// here is reported to the caller instead of being degraded.
type RegenerateContractCommandHandler struct {
	uowFactory    ContractUoWFactory
	renderer      ports.DocumentRenderer
	renderTimeout time.Duration
}

// NewRegenerateContractCommandHandler creates a handler for contract
// regeneration.
func NewRegenerateContractCommandHandler(
	uowFactory ContractUoWFactory,
	renderer ports.DocumentRenderer,
	renderTimeout time.Duration,
) RegenerateContractCommandHandler {
	return RegenerateContractCommandHandler{
		uowFactory:    uowFactory,
		renderer:      renderer,
		renderTimeout: renderTimeout,
	}
}

// Handle renders a new contract and attaches its locator to the lease,
// overwriting the previous one. Only the lease's landlord or an admin may
// regenerate.
func (h *RegenerateContractCommandHandler) Handle(
	ctx context.Context,
	cmd RegenerateContractCommand,
) (*lease.LeaseRecord, error) {
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

	l, err := uow.LeaseRepository().Get(ctx, cmd.LeaseID())
	if err != nil {
		return nil, err
	}

	if !cmd.Actor().Is(l.LandlordID()) && !cmd.Actor().IsAdmin() {
		return nil, errs.NewPermissionError("regenerate contract", cmd.Actor().UserID().String())
	}

	snapshot, err := buildLeaseSnapshot(ctx, uow, l)
	if err != nil {
		return nil, err
	}

	renderCtx, cancel := context.WithTimeout(ctx, h.renderTimeout)
	defer cancel()

	locator, err := h.renderer.Render(renderCtx, snapshot)
	if err != nil {
		return nil, errs.NewGenerationErrorWithCause("lease contract", err)
	}

	if err = l.AttachContract(locator, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = uow.LeaseRepository().Update(ctx, l); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return l, nil
}

// buildLeaseSnapshot gathers the order and party details a contract document
// names. A lease pointing at a missing order or user is a data integrity
// failure.
func buildLeaseSnapshot(ctx context.Context, uow ContractUoW, l *lease.LeaseRecord) (ports.LeaseSnapshot, error) {
	o, err := uow.OrderRepository().Get(ctx, l.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ports.LeaseSnapshot{}, errs.NewDataIntegrityErrorWithCause("order", l.OrderID().String(), err)
		}
		return ports.LeaseSnapshot{}, err
	}

	resolve := func(id kernel.UUID) (ports.UserSnapshot, error) {
		user, err := uow.UserDirectory().GetUser(ctx, id)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return ports.UserSnapshot{}, errs.NewDataIntegrityErrorWithCause("user", id.String(), err)
			}
			return ports.UserSnapshot{}, err
		}
		return user, nil
	}

	tenant, err := resolve(l.TenantID())
	if err != nil {
		return ports.LeaseSnapshot{}, err
	}
	landlord, err := resolve(l.LandlordID())
	if err != nil {
		return ports.LeaseSnapshot{}, err
	}

	return ports.LeaseSnapshot{
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
	}, nil
}
