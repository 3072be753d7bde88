package jobs

import (
	"fmt"
	"log/slog"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	quoteExpirationJob *QuoteExpirationJob
	documentExpiryJob  *DocumentExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up the job execution.
func NewJobManager(
	expireQuotesHandler commands.ExpireQuotesCommandHandler,
	expiringDocumentsHandler queries.GetExpiringDocumentsQueryHandler,
	expiryHorizonDays int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		quoteExpirationJob: NewQuoteExpirationJob(expireQuotesHandler, logger),
		documentExpiryJob:  NewDocumentExpiryJob(expiringDocumentsHandler, expiryHorizonDays, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.quoteExpirationJob.Start(); err != nil {
		return fmt.Errorf("failed to start quote expiration job: %w", err)
	}

	if err := jm.documentExpiryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.quoteExpirationJob.Stop()
		return fmt.Errorf("failed to start document expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.quoteExpirationJob.Stop()
	jm.documentExpiryJob.Stop()
}
