package commands

import (
	"context"
	"log/slog"
	"time"

	"renthub/internal/core/ports"
)

// BackfillContractsCommandHandler renders contracts for leases that were
// confirmed while the renderer was degraded. One lease failing keeps the
// sweep going; the next run retries it.
type BackfillContractsCommandHandler struct {
	uowFactory    ContractUoWFactory
	renderer      ports.DocumentRenderer
	renderTimeout time.Duration
	logger        *slog.Logger
}

// NewBackfillContractsCommandHandler creates a handler for the contract
// backfill sweep.
func NewBackfillContractsCommandHandler(
	uowFactory ContractUoWFactory,
	renderer ports.DocumentRenderer,
	renderTimeout time.Duration,
	logger *slog.Logger,
) BackfillContractsCommandHandler {
	return BackfillContractsCommandHandler{
		uowFactory:    uowFactory,
		renderer:      renderer,
		renderTimeout: renderTimeout,
		logger:        logger,
	}
}

// Handle renders and attaches a contract for every lease missing one,
// returning how many were repaired.
func (h *BackfillContractsCommandHandler) Handle(
	ctx context.Context,
	cmd BackfillContractsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	leases, err := uow.LeaseRepository().GetAllMissingContract(ctx)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, l := range leases {
		snapshot, err := buildLeaseSnapshot(ctx, uow, l)
		if err != nil {
			h.logger.Warn("contract backfill skipped lease",
				"leaseId", l.ID().String(), "error", err)
			continue
		}

		locator, err := h.render(ctx, snapshot)
		if err != nil {
			h.logger.Warn("contract backfill rendering failed",
				"leaseId", l.ID().String(), "error", err)
			continue
		}

		if err = l.AttachContract(locator, time.Now().UTC()); err != nil {
			return 0, err
		}
		if err = uow.LeaseRepository().Update(ctx, l); err != nil {
			return 0, err
		}
		repaired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if repaired > 0 {
		h.logger.Info("contracts backfilled", "count", repaired)
	}

	return repaired, nil
}

func (h *BackfillContractsCommandHandler) render(ctx context.Context, snapshot ports.LeaseSnapshot) (string, error) {
	renderCtx, cancel := context.WithTimeout(ctx, h.renderTimeout)
	defer cancel()
	return h.renderer.Render(renderCtx, snapshot)
}
