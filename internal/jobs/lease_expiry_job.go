package jobs

import (
	"context"
	"log/slog"
	"time"

	"renthub/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LeaseExpiryJob closes active leases whose agreed end date has passed.
// Runs nightly so a lease never lingers as active past its term.
type LeaseExpiryJob struct {
	handler commands.CompleteExpiredLeasesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLeaseExpiryJob creates the nightly lease completion sweep.
func NewLeaseExpiryJob(handler commands.CompleteExpiredLeasesCommandHandler, logger *slog.Logger) *LeaseExpiryJob {
	return &LeaseExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "lease_expiry_job"),
	}
}

// Start schedules the sweep to run every night at 03:00.
func (j *LeaseExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 3 * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCompleteExpiredLeasesCommand(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Lease expiry job failed to build command", "error", err)
			return
		}

		completed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Lease expiry job failed", "error", err)
			return
		}
		if completed > 0 {
			j.logger.InfoContext(ctx, "Lease expiry job completed leases", "count", completed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Lease expiry job started (running nightly at 03:00)")
	return nil
}

// Stop stops the lease expiry job.
func (j *LeaseExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Lease expiry job stopped")
}
