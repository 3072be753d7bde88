package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
type PaymentRepository interface {
	// Add persists a new payment aggregate to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment aggregate.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByBookingID retrieves all payments recorded against the given
	// booking. The ledger handlers sum their applied amounts to recompute
	// the booking's paid amount.
	GetByBookingID(ctx context.Context, bookingID kernel.UUID) ([]*payment.Payment, error)

	// NextSequence returns the next reference sequence number for the month
	// containing now.
	NextSequence(ctx context.Context, now time.Time) (int, error)
}
