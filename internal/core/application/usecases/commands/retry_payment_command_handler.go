package commands

import (
	"context"
)

// RetryPaymentCommandHandler moves a failed payment back to pending, clearing
// the recorded failure reason.
type RetryPaymentCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewRetryPaymentCommandHandler creates a handler for payment retries.
func NewRetryPaymentCommandHandler(uowFactory LedgerUoWFactory) RetryPaymentCommandHandler {
	return RetryPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the payment and reopens it for settlement.
func (h *RetryPaymentCommandHandler) Handle(ctx context.Context, cmd RetryPaymentCommand) error {
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

	if err = aggregate.Retry(); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
