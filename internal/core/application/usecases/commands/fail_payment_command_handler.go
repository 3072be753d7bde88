package commands

import (
	"context"
)

// FailPaymentCommandHandler marks a pending payment as failed. The payment
// stays retryable and the booking's paid amount is untouched.
type FailPaymentCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewFailPaymentCommandHandler creates a handler for settlement failures.
func NewFailPaymentCommandHandler(uowFactory LedgerUoWFactory) FailPaymentCommandHandler {
	return FailPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the payment and records the failure.
func (h *FailPaymentCommandHandler) Handle(ctx context.Context, cmd FailPaymentCommand) error {
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

	if err = aggregate.Fail(cmd.Reason()); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
