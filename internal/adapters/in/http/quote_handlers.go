package http

import (
	"net/http"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateQuoteRequest is the body for POST /api/v1/quotes.
type CreateQuoteRequest struct {
	CustomerID string         `json:"customer_id"`
	RouteID    string         `json:"route_id"`
	Vehicle    VehicleRequest `json:"vehicle"`
	BasePrice  MoneyRequest   `json:"base_price"`
	Fees       []FeeRequest   `json:"fees,omitempty"`
	ValidUntil *time.Time     `json:"valid_until,omitempty"`
	CreatedBy  ActorRequest   `json:"created_by"`
}

// ApproveQuoteRequest is the body for POST /api/v1/quotes/:id/approve.
type ApproveQuoteRequest struct {
	OperatorID string `json:"operator_id"`
	Note       string `json:"note,omitempty"`
}

// RejectQuoteRequest is the body for POST /api/v1/quotes/:id/reject.
type RejectQuoteRequest struct {
	OperatorID string `json:"operator_id"`
	Reason     string `json:"reason"`
}

// ExtendQuoteValidityRequest is the body for POST /api/v1/quotes/:id/extend.
type ExtendQuoteValidityRequest struct {
	ValidUntil time.Time `json:"valid_until"`
}

// UpdateQuotePricingRequest is the body for PUT /api/v1/quotes/:id/pricing.
type UpdateQuotePricingRequest struct {
	Vehicle   VehicleRequest `json:"vehicle"`
	BasePrice MoneyRequest   `json:"base_price"`
	Fees      []FeeRequest   `json:"fees,omitempty"`
}

// ConvertQuoteRequest is the body for POST /api/v1/quotes/:id/convert.
type ConvertQuoteRequest struct {
	VehicleID         string           `json:"vehicle_id"`
	Recipient         RecipientRequest `json:"recipient"`
	PickupDate        *time.Time       `json:"pickup_date,omitempty"`
	EstimatedDelivery *time.Time       `json:"estimated_delivery,omitempty"`
	OperatorID        string           `json:"operator_id"`
}

// PendingQuoteResponse is one entry of GET /api/v1/quotes/pending.
type PendingQuoteResponse struct {
	ID          string    `json:"id"`
	Reference   string    `json:"reference"`
	CustomerID  string    `json:"customer_id"`
	TotalAmount string    `json:"total_amount"`
	ValidUntil  time.Time `json:"valid_until"`
}

// CreateQuote handles POST /api/v1/quotes - prices a new quote.
func (s *Server) CreateQuote(ctx echo.Context) error {
	var request CreateQuoteRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	customerID, err := parseUUID("customer id", request.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}
	routeID, err := parseUUID("route id", request.RouteID)
	if err != nil {
		return respondError(ctx, err)
	}
	vehicle, err := request.Vehicle.toVehicle()
	if err != nil {
		return respondError(ctx, err)
	}
	basePrice, err := request.BasePrice.toMoney()
	if err != nil {
		return respondError(ctx, err)
	}
	fees, err := toFees(request.Fees)
	if err != nil {
		return respondError(ctx, err)
	}
	createdBy, err := request.CreatedBy.toActor()
	if err != nil {
		return respondError(ctx, err)
	}

	var validUntil time.Time
	if request.ValidUntil != nil {
		validUntil = *request.ValidUntil
	}

	quoteID := kernel.NewUUID()
	cmd, err := commands.NewCreateQuoteCommand(
		quoteID,
		customerID,
		routeID,
		vehicle,
		basePrice,
		fees,
		validUntil,
		createdBy,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateQuote.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: quoteID.String()})
}

// ApproveQuote handles POST /api/v1/quotes/:id/approve.
func (s *Server) ApproveQuote(ctx echo.Context) error {
	quoteID, err := parseUUID("quote id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request ApproveQuoteRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	operatorID, err := parseUUID("operator id", request.OperatorID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewApproveQuoteCommand(quoteID, kernel.NewOperatorActor(operatorID), request.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ApproveQuote.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectQuote handles POST /api/v1/quotes/:id/reject.
func (s *Server) RejectQuote(ctx echo.Context) error {
	quoteID, err := parseUUID("quote id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request RejectQuoteRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	operatorID, err := parseUUID("operator id", request.OperatorID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRejectQuoteCommand(quoteID, kernel.NewOperatorActor(operatorID), request.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RejectQuote.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ExtendQuoteValidity handles POST /api/v1/quotes/:id/extend.
func (s *Server) ExtendQuoteValidity(ctx echo.Context) error {
	quoteID, err := parseUUID("quote id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request ExtendQuoteValidityRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewExtendQuoteValidityCommand(quoteID, request.ValidUntil)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ExtendQuoteValidity.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateQuotePricing handles PUT /api/v1/quotes/:id/pricing.
func (s *Server) UpdateQuotePricing(ctx echo.Context) error {
	quoteID, err := parseUUID("quote id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateQuotePricingRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	vehicle, err := request.Vehicle.toVehicle()
	if err != nil {
		return respondError(ctx, err)
	}
	basePrice, err := request.BasePrice.toMoney()
	if err != nil {
		return respondError(ctx, err)
	}
	fees, err := toFees(request.Fees)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateQuotePricingCommand(quoteID, vehicle, basePrice, fees)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateQuotePricing.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConvertQuote handles POST /api/v1/quotes/:id/convert - converts an approved
// quote into a booking and returns the new booking's id.
func (s *Server) ConvertQuote(ctx echo.Context) error {
	quoteID, err := parseUUID("quote id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request ConvertQuoteRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	vehicleID, err := parseUUID("vehicle id", request.VehicleID)
	if err != nil {
		return respondError(ctx, err)
	}
	recipient, err := request.Recipient.toRecipient()
	if err != nil {
		return respondError(ctx, err)
	}
	operatorID, err := parseUUID("operator id", request.OperatorID)
	if err != nil {
		return respondError(ctx, err)
	}

	bookingID := kernel.NewUUID()
	cmd, err := commands.NewConvertQuoteCommand(
		quoteID,
		bookingID,
		vehicleID,
		recipient,
		request.PickupDate,
		request.EstimatedDelivery,
		kernel.NewOperatorActor(operatorID),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ConvertQuote.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: bookingID.String()})
}

// GetPendingQuotes handles GET /api/v1/quotes/pending - lists pending quotes
// still within their validity window.
func (s *Server) GetPendingQuotes(ctx echo.Context) error {
	query := queries.NewGetPendingQuotesQuery()

	pending, err := s.handlers.GetPendingQuotes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PendingQuoteResponse, len(pending))
	for i, item := range pending {
		response[i] = PendingQuoteResponse{
			ID:          item.ID.String(),
			Reference:   item.Reference,
			CustomerID:  item.CustomerID.String(),
			TotalAmount: item.TotalAmount.String(),
			ValidUntil:  item.ValidUntil,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
