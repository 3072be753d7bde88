package commands

import (
	"context"
)

// ExtendQuoteValidityCommandHandler moves a pending quote's validity deadline
// strictly forward.
type ExtendQuoteValidityCommandHandler struct {
	uowFactory QuoteUoWFactory
}

// NewExtendQuoteValidityCommandHandler creates a handler for validity extension.
func NewExtendQuoteValidityCommandHandler(uowFactory QuoteUoWFactory) ExtendQuoteValidityCommandHandler {
	return ExtendQuoteValidityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the quote and applies the new deadline.
func (h *ExtendQuoteValidityCommandHandler) Handle(ctx context.Context, cmd ExtendQuoteValidityCommand) error {
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

	if err = aggregate.ExtendValidity(cmd.ValidUntil()); err != nil {
		return err
	}

	if err = quoteRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
