package jobs

import (
	"context"
	"log/slog"

	"renthub/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ContractBackfillJob re-renders contract documents for leases that came out
// of a degraded confirmation without one. Runs hourly; each pass repairs
// whatever it can and leaves the rest for the next pass.
type ContractBackfillJob struct {
	handler commands.BackfillContractsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewContractBackfillJob creates the hourly contract repair sweep.
func NewContractBackfillJob(handler commands.BackfillContractsCommandHandler, logger *slog.Logger) *ContractBackfillJob {
	return &ContractBackfillJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "contract_backfill_job"),
	}
}

// Start schedules the sweep to run at the top of every hour.
func (j *ContractBackfillJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		repaired, err := j.handler.Handle(ctx, commands.NewBackfillContractsCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Contract backfill job failed", "error", err)
			return
		}
		if repaired > 0 {
			j.logger.InfoContext(ctx, "Contract backfill job repaired contracts", "count", repaired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Contract backfill job started (running hourly)")
	return nil
}

// Stop stops the contract backfill job.
func (j *ContractBackfillJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Contract backfill job stopped")
}
