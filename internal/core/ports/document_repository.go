package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/document"
	"shipping/internal/core/domain/model/kernel"
)

// DocumentRepository defines the persistence contract for document aggregates.
type DocumentRepository interface {
	// Add persists a new document aggregate to storage.
	Add(ctx context.Context, aggregate *document.Document) error

	// Update persists changes to an existing document aggregate.
	Update(ctx context.Context, aggregate *document.Document) error

	// Get retrieves a document aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*document.Document, error)

	// GetByBookingID retrieves all documents attached to the given booking.
	GetByBookingID(ctx context.Context, bookingID kernel.UUID) ([]*document.Document, error)

	// GetExpiring retrieves approved documents whose expiry date has passed
	// or falls within horizonDays of now. Read-only; stored statuses are
	// never touched.
	GetExpiring(ctx context.Context, now time.Time, horizonDays int) ([]*document.Document, error)
}
