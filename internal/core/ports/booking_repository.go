package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// Add persists a new booking aggregate to storage.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists changes to an existing booking aggregate.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// GetForUpdate retrieves a booking holding a row lock until the enclosing
	// transaction ends. The payment handlers use it to serialize paid-amount
	// recomputation for one booking.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// GetByQuoteID retrieves the booking converted from the given quote,
	// or an ObjectNotFoundError when the quote was never converted.
	GetByQuoteID(ctx context.Context, quoteID kernel.UUID) (*booking.Booking, error)

	// NextSequence returns the next reference sequence number for the month
	// containing now.
	NextSequence(ctx context.Context, now time.Time) (int, error)
}
