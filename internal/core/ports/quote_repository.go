package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
)

// QuoteRepository defines the persistence contract for quote aggregates.
type QuoteRepository interface {
	// Add persists a new quote aggregate to storage.
	Add(ctx context.Context, aggregate *quote.Quote) error

	// Update persists changes to an existing quote aggregate.
	Update(ctx context.Context, aggregate *quote.Quote) error

	// UpdateWithStatusGuard persists the aggregate only if the stored row is
	// still in the expected status. Returns a VersionConflictError when the
	// guard fails, which signals a concurrent transition won the race.
	// Used by conversion to guarantee at-most-one booking per quote.
	UpdateWithStatusGuard(ctx context.Context, aggregate *quote.Quote, expected quote.Status) error

	// Get retrieves a quote aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error)

	// ExpirePending flips every pending quote whose validity lapsed before
	// now to expired, in one conditional update. Idempotent; returns the
	// number of quotes expired by this call.
	ExpirePending(ctx context.Context, now time.Time) (int, error)

	// NextSequence returns the next reference sequence number for the month
	// containing now.
	NextSequence(ctx context.Context, now time.Time) (int, error)
}
