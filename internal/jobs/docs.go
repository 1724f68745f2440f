// Package jobs provides scheduled background tasks for the allocation system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the allocation service.
//
// # Available Jobs
//
// 1. AllocationJob - Runs every second to allocate queued order lines against available stock
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(allocatePendingHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The job uses the cron expression "* * * * * *" which means it runs every
// second. Each tick allocates at most one queued line, so a burst of
// submissions drains gradually without starving the database.
//
// # Error Handling
//
// The allocation job ignores expected business errors: an empty queue and
// out-of-stock lines. Out-of-stock lines stay queued and are retried on
// subsequent ticks, so they succeed once a new batch arrives.
package jobs
