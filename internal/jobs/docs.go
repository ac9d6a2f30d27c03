// Package jobs provides scheduled background tasks for the rental platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path cannot cover.
//
// # Available Jobs
//
// 1. LeaseExpiryJob - Runs nightly to close active leases whose term has ended
// 2. ContractBackfillJob - Runs hourly to re-render contract documents for
// leases left without one after a degraded confirmation
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(completeExpiredHandler, backfillHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
