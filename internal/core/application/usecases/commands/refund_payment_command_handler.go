package commands

import (
	"context"
	"time"
)

// RefundPaymentCommandHandler returns part or all of a completed payment and
// recomputes the owning booking's paid amount under the same booking lock as
// settlement.
type RefundPaymentCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewRefundPaymentCommandHandler creates a handler for refunds.
func NewRefundPaymentCommandHandler(uowFactory LedgerUoWFactory) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the refund and rewrites the booking's ledger sum.
func (h *RefundPaymentCommandHandler) Handle(ctx context.Context, cmd RefundPaymentCommand) error {
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

	if err = aggregate.Refund(cmd.Amount(), time.Now().UTC()); err != nil {
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
