package commands

import (
	"context"
	"log/slog"
)

// CompleteExpiredLeasesCommandHandler ends active leases past their agreed
// end date. Driven by a daily job.
type CompleteExpiredLeasesCommandHandler struct {
	uowFactory LeaseUoWFactory
	logger     *slog.Logger
}

// NewCompleteExpiredLeasesCommandHandler creates a handler for the lease
// expiry sweep.
func NewCompleteExpiredLeasesCommandHandler(
	uowFactory LeaseUoWFactory,
	logger *slog.Logger,
) CompleteExpiredLeasesCommandHandler {
	return CompleteExpiredLeasesCommandHandler{uowFactory: uowFactory, logger: logger}
}

// Handle completes every active lease expired as of the command's reference
// time and returns how many were ended.
func (h *CompleteExpiredLeasesCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteExpiredLeasesCommand,
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

	leases, err := uow.LeaseRepository().GetAllActiveExpired(ctx, cmd.AsOf())
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, l := range leases {
		if err = l.Complete(cmd.AsOf()); err != nil {
			return 0, err
		}
		if err = uow.LeaseRepository().Update(ctx, l); err != nil {
			return 0, err
		}
		completed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if completed > 0 {
		h.logger.Info("expired leases completed", "count", completed)
	}

	return completed, nil
}
