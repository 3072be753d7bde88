// Package http exposes the order lifecycle over a REST API.
// Handlers translate JSON requests into commands and queries, and map
// domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server routes to.
type Handlers struct {
	// Quote commands
	CreateQuote         commands.CreateQuoteCommandHandler
	ApproveQuote        commands.ApproveQuoteCommandHandler
	RejectQuote         commands.RejectQuoteCommandHandler
	ExtendQuoteValidity commands.ExtendQuoteValidityCommandHandler
	UpdateQuotePricing  commands.UpdateQuotePricingCommandHandler
	ConvertQuote        commands.ConvertQuoteCommandHandler

	// Booking commands
	CreateBooking       commands.CreateBookingCommandHandler
	CancelBooking       commands.CancelBookingCommandHandler
	UpdateBookingStatus commands.UpdateBookingStatusCommandHandler

	// Shipment commands
	CreateShipment         commands.CreateShipmentCommandHandler
	UpdateShipmentStatus   commands.UpdateShipmentStatusCommandHandler
	UpdateShipmentLocation commands.UpdateShipmentLocationCommandHandler
	UpdateShipmentArrival  commands.UpdateShipmentArrivalCommandHandler

	// Document commands
	UploadDocument      commands.UploadDocumentCommandHandler
	ReviewDocument      commands.ReviewDocumentCommandHandler
	ResubmitDocument    commands.ResubmitDocumentCommandHandler
	BulkReviewDocuments commands.BulkReviewDocumentsCommandHandler

	// Payment commands
	RecordPayment   commands.RecordPaymentCommandHandler
	CompletePayment commands.CompletePaymentCommandHandler
	FailPayment     commands.FailPaymentCommandHandler
	CancelPayment   commands.CancelPaymentCommandHandler
	RetryPayment    commands.RetryPaymentCommandHandler
	RefundPayment   commands.RefundPaymentCommandHandler

	// Queries
	GetPendingQuotes     queries.GetPendingQuotesQueryHandler
	GetBookingReadiness  queries.GetBookingReadinessQueryHandler
	GetShipmentTracking  queries.GetShipmentTrackingQueryHandler
	GetExpiringDocuments queries.GetExpiringDocumentsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server routing to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/quotes", s.CreateQuote)
	api.GET("/quotes/pending", s.GetPendingQuotes)
	api.POST("/quotes/:id/approve", s.ApproveQuote)
	api.POST("/quotes/:id/reject", s.RejectQuote)
	api.POST("/quotes/:id/extend", s.ExtendQuoteValidity)
	api.PUT("/quotes/:id/pricing", s.UpdateQuotePricing)
	api.POST("/quotes/:id/convert", s.ConvertQuote)

	api.POST("/bookings", s.CreateBooking)
	api.POST("/bookings/:id/cancel", s.CancelBooking)
	api.PUT("/bookings/:id/status", s.UpdateBookingStatus)
	api.GET("/bookings/:id/readiness", s.GetBookingReadiness)

	api.POST("/shipments", s.CreateShipment)
	api.PUT("/shipments/:id/status", s.UpdateShipmentStatus)
	api.PUT("/shipments/:id/location", s.UpdateShipmentLocation)
	api.PUT("/shipments/:id/arrival", s.UpdateShipmentArrival)
	api.GET("/tracking/:number", s.GetShipmentTracking)

	api.POST("/documents", s.UploadDocument)
	api.POST("/documents/bulk-review", s.BulkReviewDocuments)
	api.GET("/documents/expiring", s.GetExpiringDocuments)
	api.POST("/documents/:id/review", s.ReviewDocument)
	api.POST("/documents/:id/resubmit", s.ResubmitDocument)

	api.POST("/payments", s.RecordPayment)
	api.POST("/payments/:id/complete", s.CompletePayment)
	api.POST("/payments/:id/fail", s.FailPayment)
	api.POST("/payments/:id/cancel", s.CancelPayment)
	api.POST("/payments/:id/retry", s.RetryPayment)
	api.POST("/payments/:id/refund", s.RefundPayment)
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IDResponse returns the server-assigned identifier of a created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// respondError maps domain errors onto HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrAmountMismatch):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

// respondBadRequest is used for malformed request bodies before any command
// is constructed.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
