package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentTrackingQueryHandler retrieves shipment tracking information
// from the database. Progress and delay are computed through the domain
// model so the read side and the aggregates can never disagree on them.
type GetShipmentTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentTrackingQueryHandler creates a handler for tracking queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentTrackingQueryHandler(db *gorm.DB) GetShipmentTrackingQueryHandler {
	return GetShipmentTrackingQueryHandler{db: db}
}

// Handle executes the query to retrieve the tracking view for one shipment.
// Returns an ObjectNotFoundError when no shipment carries the number.
func (h GetShipmentTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentTrackingQuery,
) (GetShipmentTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentTrackingQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			booking_id,
			carrier_name,
			departure_port,
			arrival_port,
			departure_date,
			estimated_arrival,
			actual_arrival,
			current_location,
			status
		FROM shipments
		WHERE tracking_number = ?
	`, query.TrackingNumber()).Row()

	var id, bookingID uuid.UUID
	var trackingNumber, carrierName, departurePort, arrivalPort, currentLocation string
	var departureDate, estimatedArrival, actualArrival sql.NullTime
	var status int

	err := row.Scan(
		&id,
		&trackingNumber,
		&bookingID,
		&carrierName,
		&departurePort,
		&arrivalPort,
		&departureDate,
		&estimatedArrival,
		&actualArrival,
		&currentLocation,
		&status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetShipmentTrackingQueryResponse{},
				errs.NewObjectNotFoundError("shipment", query.TrackingNumber())
		}
		return GetShipmentTrackingQueryResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetShipmentTrackingQueryResponse{}, err
	}
	shipmentBookingID, err := kernel.UUIDFromBytes(bookingID[:])
	if err != nil {
		return GetShipmentTrackingQueryResponse{}, err
	}

	aggregate, err := shipment.RestoreShipment(
		shipmentID,
		trackingNumber,
		shipmentBookingID,
		carrierName,
		departurePort,
		arrivalPort,
		nullTimePtr(departureDate),
		nullTimePtr(estimatedArrival),
		nullTimePtr(actualArrival),
		currentLocation,
		shipment.Status(status),
	)
	if err != nil {
		return GetShipmentTrackingQueryResponse{}, err
	}

	now := time.Now().UTC()
	return GetShipmentTrackingQueryResponse{
		TrackingNumber:   aggregate.TrackingNumber(),
		Status:           aggregate.Status().String(),
		CarrierName:      aggregate.CarrierName(),
		DeparturePort:    aggregate.DeparturePort(),
		ArrivalPort:      aggregate.ArrivalPort(),
		CurrentLocation:  aggregate.CurrentLocation(),
		DepartureDate:    aggregate.DepartureDate(),
		EstimatedArrival: aggregate.EstimatedArrival(),
		ActualArrival:    aggregate.ActualArrival(),
		ProgressPercent:  aggregate.Progress(now),
		Delayed:          aggregate.IsDelayed(now),
		DaysDelayed:      aggregate.DaysDelayed(now),
	}, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
