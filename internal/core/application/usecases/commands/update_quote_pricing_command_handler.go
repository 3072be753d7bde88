package commands

import (
	"context"

	"shipping/internal/core/domain/services"
)

// UpdateQuotePricingCommandHandler reprices a pending quote. The total is
// recomputed from the new components, so the total invariant holds after
// every edit.
type UpdateQuotePricingCommandHandler struct {
	uowFactory QuoteUoWFactory
	calculator services.PricingCalculator
}

// NewUpdateQuotePricingCommandHandler creates a handler for quote repricing.
func NewUpdateQuotePricingCommandHandler(uowFactory QuoteUoWFactory) UpdateQuotePricingCommandHandler {
	return UpdateQuotePricingCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewPricingCalculator(),
	}
}

// Handle loads the quote and applies the new pricing.
func (h *UpdateQuotePricingCommandHandler) Handle(ctx context.Context, cmd UpdateQuotePricingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pricing, err := h.calculator.Compute(cmd.BasePrice(), cmd.Vehicle(), cmd.Fees())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.UpdatePricing(pricing.BasePrice, cmd.Fees()); err != nil {
		return err
	}

	if err = quoteRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
