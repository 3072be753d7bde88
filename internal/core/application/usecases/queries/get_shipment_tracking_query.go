package queries

import (
	"errors"
	"time"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetShipmentTrackingQueryIsNotConstructed = errors.New(
		"GetShipmentTrackingQuery must be created via NewGetShipmentTrackingQuery constructor",
	)
)

// GetShipmentTrackingQuery retrieves the customer-facing tracking view for
// one shipment by its tracking number.
//
// Example:
//
//	query, err := NewGetShipmentTrackingQuery("TRK2026090001")
//	if err != nil {
//	    return err
//	}
//
//	tracking, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s: %s (%d%%)\n", tracking.TrackingNumber, tracking.Status, tracking.ProgressPercent)
type GetShipmentTrackingQuery struct {
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewGetShipmentTrackingQuery creates a tracking query for the given number.
func NewGetShipmentTrackingQuery(trackingNumber string) (GetShipmentTrackingQuery, error) {
	if trackingNumber == "" {
		return GetShipmentTrackingQuery{}, errs.NewValueIsRequiredError("tracking number")
	}
	return GetShipmentTrackingQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// TrackingNumber returns the tracking number to look up.
func (q GetShipmentTrackingQuery) TrackingNumber() string {
	return q.trackingNumber
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentTrackingQueryIsNotConstructed if validation fails.
func (q GetShipmentTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentTrackingQueryIsNotConstructed)
}

// GetShipmentTrackingQueryResponse is the tracking view for one shipment.
// ProgressPercent, Delayed, and DaysDelayed are derived at query time from
// the carrier schedule; they are never stored.
type GetShipmentTrackingQueryResponse struct {
	TrackingNumber   string
	Status           string
	CarrierName      string
	DeparturePort    string
	ArrivalPort      string
	CurrentLocation  string
	DepartureDate    *time.Time
	EstimatedArrival *time.Time
	ActualArrival    *time.Time
	ProgressPercent  int
	Delayed          bool
	DaysDelayed      int
}
