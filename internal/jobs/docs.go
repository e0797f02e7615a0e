// Package jobs provides scheduled background tasks for the rental service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping around orders and inventory.
//
// # Available Jobs
//
// 1. StockAuditJob - Runs every minute to detect toys whose availability counters drifted outside [0, stock]
// 2. OverdueOrdersJob - Runs hourly to report orders past their return date that are still with the customer
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager over the application database
//	jobManager := jobs.NewJobManager(db, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs are read-only reporters: they log what they find and leave any
// repair to operators. Failed job starts stop any already running jobs.
package jobs
