package jobs

import (
	"fmt"
	"log/slog"

	"renthub/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	leaseExpiryJob      *LeaseExpiryJob
	contractBackfillJob *ContractBackfillJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	completeExpiredHandler commands.CompleteExpiredLeasesCommandHandler,
	backfillHandler commands.BackfillContractsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		leaseExpiryJob:      NewLeaseExpiryJob(completeExpiredHandler, logger),
		contractBackfillJob: NewContractBackfillJob(backfillHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.leaseExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start lease expiry job: %w", err)
	}

	if err := jm.contractBackfillJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.leaseExpiryJob.Stop()
		return fmt.Errorf("failed to start contract backfill job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.leaseExpiryJob.Stop()
	jm.contractBackfillJob.Stop()
}
