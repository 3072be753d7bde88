package commands

import (
	"context"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/payment"
	"shipping/internal/pkg/errs"
)

// RecordPaymentCommandHandler registers a pending payment against a booking.
// A pending payment does not touch the booking's paid amount; only a later
// completion or refund does.
type RecordPaymentCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(uowFactory LedgerUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the booking exists and shares the payment's currency, then
// persists the pending payment with the next monthly reference.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	bookingAggregate, err := uow.BookingRepository().Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}
	if bookingAggregate.Currency() != cmd.Amount().Currency() {
		return errs.NewAmountMismatchErrorWithCause("payment amount",
			fmt.Errorf("payment in %s, booking in %s", cmd.Amount().Currency(), bookingAggregate.Currency()))
	}

	paymentRepo := uow.PaymentRepository()
	sequence, err := paymentRepo.NextSequence(ctx, now)
	if err != nil {
		return err
	}

	aggregate, err := payment.NewPayment(
		cmd.PaymentID(),
		payment.NewReference(now, sequence),
		cmd.BookingID(),
		cmd.CustomerID(),
		cmd.Amount(),
		cmd.Method(),
		cmd.RecordedBy(),
	)
	if err != nil {
		return err
	}

	if err = paymentRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
