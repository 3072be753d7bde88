package commands

import (
	"context"
	"time"
)

// CompletePaymentCommandHandler settles a pending payment and recomputes the
// owning booking's paid amount inside the same transaction. The booking row
// is locked first, so two payments for one booking completing concurrently
// serialize and neither update is lost.
type CompletePaymentCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewCompletePaymentCommandHandler creates a handler for payment settlement.
func NewCompletePaymentCommandHandler(uowFactory LedgerUoWFactory) CompletePaymentCommandHandler {
	return CompletePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle settles the payment and rewrites the booking's ledger sum.
func (h *CompletePaymentCommandHandler) Handle(ctx context.Context, cmd CompletePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	aggregate, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = aggregate.Complete(time.Now().UTC()); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = recomputeBookingPaidAmount(ctx, uow, aggregate.BookingID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
