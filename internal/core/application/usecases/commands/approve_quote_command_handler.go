package commands

import (
	"context"
	"time"

	"shipping/internal/core/ports"
)

// ApproveQuoteCommandHandler approves a pending quote and records who decided
// and when. Consumers are notified after the commit; a publish failure never
// rolls the approval back.
type ApproveQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
	notifier   ports.Notifier
}

// NewApproveQuoteCommandHandler creates a handler for quote approval.
func NewApproveQuoteCommandHandler(uowFactory QuoteUoWFactory, notifier ports.Notifier) ApproveQuoteCommandHandler {
	return ApproveQuoteCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the quote, applies the approval, and publishes the decision.
func (h *ApproveQuoteCommandHandler) Handle(ctx context.Context, cmd ApproveQuoteCommand) error {
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

	if err = aggregate.Approve(cmd.Operator(), cmd.Note(), time.Now().UTC()); err != nil {
		return err
	}

	if err = quoteRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort: the approval is already committed.
	_ = h.notifier.NotifyQuoteDecided(ctx, aggregate)

	return nil
}
