// Package jobs provides scheduled background tasks for the dealership system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. PenaltyAccrualJob - Runs hourly to flag unpaid payments past their due
// date as OVERDUE and accrue the daily late penalty on each of them.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(accruePenaltiesHandler, logger)
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
// The penalty sweep uses the cron expression "0 * * * *" and runs at the top
// of every hour. Penalties accrue per calendar day, so an hourly sweep keeps
// the ledger current without re-charging the same day twice.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a failed run never
// leaves partial writes because the handler executes inside one unit of work.
package jobs
