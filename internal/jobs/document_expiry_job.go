package jobs

import (
	"context"
	"log/slog"

	"shipping/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultExpiryHorizonDays is the look-ahead window for the daily document
// expiry scan.
const DefaultExpiryHorizonDays = 30

// DocumentExpiryJob surfaces approved documents that expired or are about to.
// Runs daily. Expiry is advisory: the job reads and reports, it never
// flips a stored document status.
type DocumentExpiryJob struct {
	handler     queries.GetExpiringDocumentsQueryHandler
	horizonDays int
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewDocumentExpiryJob creates a new job scanning for expiring documents.
func NewDocumentExpiryJob(
	handler queries.GetExpiringDocumentsQueryHandler,
	horizonDays int,
	logger *slog.Logger,
) *DocumentExpiryJob {
	if horizonDays <= 0 {
		horizonDays = DefaultExpiryHorizonDays
	}
	return &DocumentExpiryJob{
		handler:     handler,
		horizonDays: horizonDays,
		cron:        cron.New(),
		logger:      logger.With("component", "document_expiry_job"),
	}
}

// Start begins the document expiry job to run daily at 06:00.
func (j *DocumentExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 6 * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetExpiringDocumentsQuery(j.horizonDays)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Document expiry query not constructed", "error", queryErr)
			return
		}

		expiring, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Document expiry scan failed", "error", handleErr)
			return
		}

		for _, doc := range expiring {
			j.logger.WarnContext(ctx, "Approved document expiring",
				"document_id", doc.ID.String(),
				"booking_id", doc.BookingID.String(),
				"doc_type", doc.DocType,
				"expiry_date", doc.ExpiryDate,
				"expired", doc.Expired,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Document expiry job started (running daily)")
	return nil
}

// Stop stops the document expiry job.
func (j *DocumentExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Document expiry job stopped")
}
