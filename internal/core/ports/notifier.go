package ports

import (
	"context"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/document"
	"shipping/internal/core/domain/model/quote"
)

// Notifier publishes lifecycle events to interested consumers after a
// transition commits. Delivery is best-effort: handlers log publish failures
// and never roll back the committed transition because of one.
type Notifier interface {
	// NotifyQuoteDecided publishes a quote approval, rejection, or expiry.
	NotifyQuoteDecided(ctx context.Context, aggregate *quote.Quote) error

	// NotifyBookingStatusChanged publishes a booking status transition,
	// including cancellation.
	NotifyBookingStatusChanged(ctx context.Context, aggregate *booking.Booking) error

	// NotifyDocumentReviewed publishes a document approval, rejection, or
	// revision request.
	NotifyDocumentReviewed(ctx context.Context, aggregate *document.Document) error
}
