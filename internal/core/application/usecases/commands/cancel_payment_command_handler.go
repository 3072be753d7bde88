package commands

import (
	"context"
)

// CancelPaymentCommandHandler voids a pending payment. A cancelled payment
// never contributed to the booking's paid amount, so no recompute happens.
type CancelPaymentCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewCancelPaymentCommandHandler creates a handler for payment cancellation.
func NewCancelPaymentCommandHandler(uowFactory LedgerUoWFactory) CancelPaymentCommandHandler {
	return CancelPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the payment and voids it.
func (h *CancelPaymentCommandHandler) Handle(ctx context.Context, cmd CancelPaymentCommand) error {
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

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
