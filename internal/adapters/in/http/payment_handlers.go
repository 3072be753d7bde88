package http

import (
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"

	"github.com/labstack/echo/v4"
)

// RecordPaymentRequest is the body for POST /api/v1/payments.
type RecordPaymentRequest struct {
	BookingID  string       `json:"booking_id"`
	CustomerID string       `json:"customer_id"`
	Amount     MoneyRequest `json:"amount"`
	Method     string       `json:"method"`
	RecordedBy ActorRequest `json:"recorded_by"`
}

// FailPaymentRequest is the body for POST /api/v1/payments/:id/fail.
type FailPaymentRequest struct {
	Reason string `json:"reason"`
}

// RefundPaymentRequest is the body for POST /api/v1/payments/:id/refund.
type RefundPaymentRequest struct {
	Amount MoneyRequest `json:"amount"`
}

// RecordPayment handles POST /api/v1/payments - records a pending payment
// against a booking.
func (s *Server) RecordPayment(ctx echo.Context) error {
	var request RecordPaymentRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	bookingID, err := parseUUID("booking id", request.BookingID)
	if err != nil {
		return respondError(ctx, err)
	}
	customerID, err := parseUUID("customer id", request.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}
	amount, err := request.Amount.toMoney()
	if err != nil {
		return respondError(ctx, err)
	}
	method, err := payment.MethodFromString(request.Method)
	if err != nil {
		return respondError(ctx, err)
	}
	recordedBy, err := request.RecordedBy.toActor()
	if err != nil {
		return respondError(ctx, err)
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentCommand(
		paymentID,
		bookingID,
		customerID,
		amount,
		method,
		recordedBy,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RecordPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: paymentID.String()})
}

// CompletePayment handles POST /api/v1/payments/:id/complete.
func (s *Server) CompletePayment(ctx echo.Context) error {
	paymentID, err := parseUUID("payment id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompletePaymentCommand(paymentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CompletePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FailPayment handles POST /api/v1/payments/:id/fail.
func (s *Server) FailPayment(ctx echo.Context) error {
	paymentID, err := parseUUID("payment id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request FailPaymentRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFailPaymentCommand(paymentID, request.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.FailPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelPayment handles POST /api/v1/payments/:id/cancel.
func (s *Server) CancelPayment(ctx echo.Context) error {
	paymentID, err := parseUUID("payment id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelPaymentCommand(paymentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CancelPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RetryPayment handles POST /api/v1/payments/:id/retry - returns a failed
// payment to pending for another attempt.
func (s *Server) RetryPayment(ctx echo.Context) error {
	paymentID, err := parseUUID("payment id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRetryPaymentCommand(paymentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RetryPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RefundPayment handles POST /api/v1/payments/:id/refund.
func (s *Server) RefundPayment(ctx echo.Context) error {
	paymentID, err := parseUUID("payment id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request RefundPaymentRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	amount, err := request.Amount.toMoney()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRefundPaymentCommand(paymentID, amount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RefundPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
