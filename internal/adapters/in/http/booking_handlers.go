package http

import (
	"net/http"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateBookingRequest is the body for POST /api/v1/bookings. Used for
// direct bookings that do not originate from a quote.
type CreateBookingRequest struct {
	CustomerID        string           `json:"customer_id"`
	VehicleID         string           `json:"vehicle_id"`
	RouteID           string           `json:"route_id"`
	TotalAmount       MoneyRequest     `json:"total_amount"`
	Recipient         RecipientRequest `json:"recipient"`
	PickupDate        *time.Time       `json:"pickup_date,omitempty"`
	EstimatedDelivery *time.Time       `json:"estimated_delivery,omitempty"`
	CreatedBy         ActorRequest     `json:"created_by"`
}

// CancelBookingRequest is the body for POST /api/v1/bookings/:id/cancel.
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// UpdateBookingStatusRequest is the body for PUT /api/v1/bookings/:id/status.
type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// ChecklistItemJSON is one required document type in the readiness view.
type ChecklistItemJSON struct {
	DocType   string `json:"doc_type"`
	Satisfied bool   `json:"satisfied"`
}

// BookingReadinessResponse is the body of GET /api/v1/bookings/:id/readiness.
type BookingReadinessResponse struct {
	BookingID         string              `json:"booking_id"`
	Reference         string              `json:"reference"`
	Status            string              `json:"status"`
	TotalAmount       string              `json:"total_amount"`
	PaidAmount        string              `json:"paid_amount"`
	Coverage          string              `json:"coverage"`
	Checklist         []ChecklistItemJSON `json:"checklist"`
	DocumentsComplete bool                `json:"documents_complete"`
	Ready             bool                `json:"ready"`
}

// CreateBooking handles POST /api/v1/bookings - creates a direct booking.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var request CreateBookingRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	customerID, err := parseUUID("customer id", request.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}
	vehicleID, err := parseUUID("vehicle id", request.VehicleID)
	if err != nil {
		return respondError(ctx, err)
	}
	routeID, err := parseUUID("route id", request.RouteID)
	if err != nil {
		return respondError(ctx, err)
	}
	totalAmount, err := request.TotalAmount.toMoney()
	if err != nil {
		return respondError(ctx, err)
	}
	recipient, err := request.Recipient.toRecipient()
	if err != nil {
		return respondError(ctx, err)
	}
	createdBy, err := request.CreatedBy.toActor()
	if err != nil {
		return respondError(ctx, err)
	}

	bookingID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(
		bookingID,
		customerID,
		vehicleID,
		routeID,
		totalAmount,
		recipient,
		request.PickupDate,
		request.EstimatedDelivery,
		createdBy,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateBooking.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: bookingID.String()})
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel.
func (s *Server) CancelBooking(ctx echo.Context) error {
	bookingID, err := parseUUID("booking id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request CancelBookingRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelBookingCommand(bookingID, request.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CancelBooking.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateBookingStatus handles PUT /api/v1/bookings/:id/status.
func (s *Server) UpdateBookingStatus(ctx echo.Context) error {
	bookingID, err := parseUUID("booking id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateBookingStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	status, err := booking.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateBookingStatusCommand(bookingID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateBookingStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetBookingReadiness handles GET /api/v1/bookings/:id/readiness - reports
// document completeness and payment coverage for a booking.
func (s *Server) GetBookingReadiness(ctx echo.Context) error {
	bookingID, err := parseUUID("booking id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetBookingReadinessQuery(bookingID)
	if err != nil {
		return respondError(ctx, err)
	}

	readiness, err := s.handlers.GetBookingReadiness.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	checklist := make([]ChecklistItemJSON, len(readiness.Checklist))
	for i, item := range readiness.Checklist {
		checklist[i] = ChecklistItemJSON{
			DocType:   item.DocType,
			Satisfied: item.Satisfied,
		}
	}

	return ctx.JSON(http.StatusOK, BookingReadinessResponse{
		BookingID:         readiness.BookingID.String(),
		Reference:         readiness.Reference,
		Status:            readiness.Status,
		TotalAmount:       readiness.TotalAmount.String(),
		PaidAmount:        readiness.PaidAmount.String(),
		Coverage:          readiness.Coverage,
		Checklist:         checklist,
		DocumentsComplete: readiness.DocumentsComplete,
		Ready:             readiness.Ready,
	})
}
