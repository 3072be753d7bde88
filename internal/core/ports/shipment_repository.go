package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByBookingID retrieves the shipment attached to the given booking.
	GetByBookingID(ctx context.Context, bookingID kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingNumber retrieves a shipment by its customer-facing
	// tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error)

	// NextSequence returns the next tracking sequence number for the month
	// containing now.
	NextSequence(ctx context.Context, now time.Time) (int, error)
}
