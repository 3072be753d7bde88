package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/booking"
)

// ConvertQuoteCommandHandler turns an approved quote into a booking. The
// quote's status flip and the booking insert share one transaction, and the
// flip is written with a status guard: if a concurrent conversion already
// moved the quote out of approved, the guard fails with a version conflict
// and this transaction rolls back, so at most one booking is ever created
// from a given quote.
type ConvertQuoteCommandHandler struct {
	uowFactory ConversionUoWFactory
}

// NewConvertQuoteCommandHandler creates a handler for quote conversion.
func NewConvertQuoteCommandHandler(uowFactory ConversionUoWFactory) ConvertQuoteCommandHandler {
	return ConvertQuoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle converts the quote and creates the booking atomically. The booking
// copies the quote's total and currency; a caller that lost the conversion
// race receives ErrQuoteAlreadyConverted or a version conflict.
func (h *ConvertQuoteCommandHandler) Handle(ctx context.Context, cmd ConvertQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quoteRepo := uow.QuoteRepository()
	quoteAggregate, err := quoteRepo.Get(ctx, cmd.QuoteID())
	if err != nil {
		return err
	}

	priorStatus := quoteAggregate.Status()
	if err = quoteAggregate.Convert(); err != nil {
		return err
	}

	if err = quoteRepo.UpdateWithStatusGuard(ctx, quoteAggregate, priorStatus); err != nil {
		return err
	}

	bookingRepo := uow.BookingRepository()
	sequence, err := bookingRepo.NextSequence(ctx, now)
	if err != nil {
		return err
	}

	quoteID := quoteAggregate.ID()
	bookingAggregate, err := booking.NewBooking(
		cmd.BookingID(),
		booking.NewReference(now, sequence),
		quoteAggregate.CustomerID(),
		&quoteID,
		cmd.VehicleID(),
		quoteAggregate.RouteID(),
		quoteAggregate.TotalAmount(),
		cmd.Recipient(),
		cmd.PickupDate(),
		cmd.EstimatedDelivery(),
		cmd.Operator(),
	)
	if err != nil {
		return err
	}

	if err = bookingRepo.Add(ctx, bookingAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
