package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/quote"
	"shipping/internal/core/domain/services"
)

// CreateQuoteCommandHandler prices and registers a new quote in pending
// status. Pricing runs through the calculator at creation time and the result
// is persisted onto the quote, so later route-rate changes never reprice it.
type CreateQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
	calculator services.PricingCalculator
}

// NewCreateQuoteCommandHandler creates a handler for quote creation.
func NewCreateQuoteCommandHandler(uowFactory QuoteUoWFactory) CreateQuoteCommandHandler {
	return CreateQuoteCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewPricingCalculator(),
	}
}

// Handle prices the quote, assigns the next monthly reference, and persists
// the aggregate.
func (h *CreateQuoteCommandHandler) Handle(ctx context.Context, cmd CreateQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pricing, err := h.calculator.Compute(cmd.BasePrice(), cmd.Vehicle(), cmd.Fees())
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quoteRepo := uow.QuoteRepository()
	sequence, err := quoteRepo.NextSequence(ctx, now)
	if err != nil {
		return err
	}

	aggregate, err := quote.NewQuote(
		cmd.QuoteID(),
		quote.NewReference(now, sequence),
		cmd.CustomerID(),
		cmd.RouteID(),
		cmd.Vehicle(),
		pricing.BasePrice,
		cmd.Fees(),
		cmd.ValidUntil(),
		cmd.CreatedBy(),
		now,
	)
	if err != nil {
		return err
	}

	if err = quoteRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
