package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// RejectQuoteCommandHandler rejects a pending quote with a stored reason and
// notifies consumers after the commit.
type RejectQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
	notifier   ports.Notifier
}

// NewRejectQuoteCommandHandler creates a handler for quote rejection.
func NewRejectQuoteCommandHandler(uowFactory QuoteUoWFactory, notifier ports.Notifier) RejectQuoteCommandHandler {
	return RejectQuoteCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the quote, applies the rejection, and publishes the decision.
func (h *RejectQuoteCommandHandler) Handle(ctx context.Context, cmd RejectQuoteCommand) error {
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

	quoteRepo := uow.QuoteRepository()
	aggregate, err := quoteRepo.Get(ctx, cmd.QuoteID())
	if err != nil {
		return err
	}

	if err = aggregate.Reject(cmd.Operator(), cmd.Reason()); err != nil {
		return err
	}

	if err = quoteRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.NotifyQuoteDecided(ctx, aggregate)

	return nil
}
