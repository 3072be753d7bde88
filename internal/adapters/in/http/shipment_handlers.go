package http

import (
	"net/http"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// CreateShipmentRequest is the body for POST /api/v1/shipments.
type CreateShipmentRequest struct {
	BookingID        string     `json:"booking_id"`
	CarrierName      string     `json:"carrier_name"`
	DeparturePort    string     `json:"departure_port"`
	ArrivalPort      string     `json:"arrival_port"`
	DepartureDate    *time.Time `json:"departure_date,omitempty"`
	EstimatedArrival *time.Time `json:"estimated_arrival,omitempty"`
}

// UpdateShipmentStatusRequest is the body for PUT /api/v1/shipments/:id/status.
type UpdateShipmentStatusRequest struct {
	Status string `json:"status"`
}

// UpdateShipmentLocationRequest is the body for PUT /api/v1/shipments/:id/location.
type UpdateShipmentLocationRequest struct {
	Location string `json:"location"`
}

// UpdateShipmentArrivalRequest is the body for PUT /api/v1/shipments/:id/arrival.
type UpdateShipmentArrivalRequest struct {
	EstimatedArrival time.Time `json:"estimated_arrival"`
}

// ShipmentTrackingResponse is the body of GET /api/v1/tracking/:number.
type ShipmentTrackingResponse struct {
	TrackingNumber   string     `json:"tracking_number"`
	Status           string     `json:"status"`
	CarrierName      string     `json:"carrier_name"`
	DeparturePort    string     `json:"departure_port"`
	ArrivalPort      string     `json:"arrival_port"`
	CurrentLocation  string     `json:"current_location,omitempty"`
	DepartureDate    *time.Time `json:"departure_date,omitempty"`
	EstimatedArrival *time.Time `json:"estimated_arrival,omitempty"`
	ActualArrival    *time.Time `json:"actual_arrival,omitempty"`
	ProgressPercent  int        `json:"progress_percent"`
	Delayed          bool       `json:"delayed"`
	DaysDelayed      int        `json:"days_delayed"`
}

// CreateShipment handles POST /api/v1/shipments - attaches a shipment to a
// confirmed booking.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request CreateShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	bookingID, err := parseUUID("booking id", request.BookingID)
	if err != nil {
		return respondError(ctx, err)
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID,
		bookingID,
		request.CarrierName,
		request.DeparturePort,
		request.ArrivalPort,
		request.DepartureDate,
		request.EstimatedArrival,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: shipmentID.String()})
}

// UpdateShipmentStatus handles PUT /api/v1/shipments/:id/status.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	shipmentID, err := parseUUID("shipment id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateShipmentStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	status, err := shipment.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(shipmentID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateShipmentStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateShipmentLocation handles PUT /api/v1/shipments/:id/location.
func (s *Server) UpdateShipmentLocation(ctx echo.Context) error {
	shipmentID, err := parseUUID("shipment id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateShipmentLocationRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateShipmentLocationCommand(shipmentID, request.Location)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateShipmentLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateShipmentArrival handles PUT /api/v1/shipments/:id/arrival.
func (s *Server) UpdateShipmentArrival(ctx echo.Context) error {
	shipmentID, err := parseUUID("shipment id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateShipmentArrivalRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateShipmentArrivalCommand(shipmentID, request.EstimatedArrival)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateShipmentArrival.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShipmentTracking handles GET /api/v1/tracking/:number - the public
// tracking view looked up by tracking number.
func (s *Server) GetShipmentTracking(ctx echo.Context) error {
	query, err := queries.NewGetShipmentTrackingQuery(ctx.Param("number"))
	if err != nil {
		return respondError(ctx, err)
	}

	tracking, err := s.handlers.GetShipmentTracking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShipmentTrackingResponse{
		TrackingNumber:   tracking.TrackingNumber,
		Status:           tracking.Status,
		CarrierName:      tracking.CarrierName,
		DeparturePort:    tracking.DeparturePort,
		ArrivalPort:      tracking.ArrivalPort,
		CurrentLocation:  tracking.CurrentLocation,
		DepartureDate:    tracking.DepartureDate,
		EstimatedArrival: tracking.EstimatedArrival,
		ActualArrival:    tracking.ActualArrival,
		ProgressPercent:  tracking.ProgressPercent,
		Delayed:          tracking.Delayed,
		DaysDelayed:      tracking.DaysDelayed,
	})
}
