package queries

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetBookingReadinessQueryIsNotConstructed = errors.New(
		"GetBookingReadinessQuery must be created via NewGetBookingReadinessQuery constructor",
	)
)

// GetBookingReadinessQuery retrieves the composite readiness view for one
// booking: documentation completeness against the required checklist plus
// payment coverage. The view is advisory, it never gates a status change.
type GetBookingReadinessQuery struct {
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBookingReadinessQuery creates a readiness query for the given booking.
func NewGetBookingReadinessQuery(bookingID kernel.UUID) (GetBookingReadinessQuery, error) {
	if err := bookingID.Validate(); err != nil {
		return GetBookingReadinessQuery{}, err
	}
	return GetBookingReadinessQuery{
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// BookingID returns the booking to evaluate.
func (q GetBookingReadinessQuery) BookingID() kernel.UUID {
	return q.bookingID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBookingReadinessQueryIsNotConstructed if validation fails.
func (q GetBookingReadinessQuery) Validate() error {
	return q.guard.Validate(ErrGetBookingReadinessQueryIsNotConstructed)
}

// ChecklistItemResponse reports one required document type and whether an
// approved document of that type exists.
type ChecklistItemResponse struct {
	DocType   string
	Satisfied bool
}

// GetBookingReadinessQueryResponse is the composite readiness view.
// Ready is true only when the checklist is complete and the booking is
// fully paid.
type GetBookingReadinessQueryResponse struct {
	BookingID         kernel.UUID
	Reference         string
	Status            string
	TotalAmount       kernel.Money
	PaidAmount        kernel.Money
	Coverage          string
	Checklist         []ChecklistItemResponse
	DocumentsComplete bool
	Ready             bool
}
