package jobs

import (
	"context"
	"log/slog"
	"time"

	"shipping/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// QuoteExpirationJob manages the scheduled expiry sweep over pending quotes.
// Runs every five minutes; the sweep is idempotent, so overlapping or missed
// runs only shift when a quote flips, never whether it flips.
type QuoteExpirationJob struct {
	handler commands.ExpireQuotesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQuoteExpirationJob creates a new job for expiring lapsed quotes.
func NewQuoteExpirationJob(handler commands.ExpireQuotesCommandHandler, logger *slog.Logger) *QuoteExpirationJob {
	return &QuoteExpirationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "quote_expiration_job"),
	}
}

// Start begins the quote expiration job to run every five minutes.
func (j *QuoteExpirationJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireQuotesCommand(time.Now().UTC())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Quote expiration sweep not constructed", "error", cmdErr)
			return
		}

		expired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Quote expiration sweep failed", "error", handleErr)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired lapsed quotes", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quote expiration job started (running every five minutes)")
	return nil
}

// Stop stops the quote expiration job.
func (j *QuoteExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Quote expiration job stopped")
}
