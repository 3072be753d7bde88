// Package jobs provides scheduled background tasks for the shipping system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. QuoteExpirationJob - Runs every five minutes to flip lapsed pending quotes to expired
// 2. DocumentExpiryJob - Runs daily to surface approved documents that expired or are about to
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireQuotesHandler, expiringDocumentsHandler, 30, logger)
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
// - The expiry sweep is a single conditional update and idempotent, so a failed run is safe to retry on the next tick
// - The document scan is read-only; expiry never mutates stored statuses
// - Failed job starts will stop any already running jobs
package jobs
