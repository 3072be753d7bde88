package commands

import (
	"context"
)

// ExpireQuotesCommandHandler runs the quote-expiration sweep. The sweep is a
// single conditional update over rows still pending, so it is idempotent and
// safe to run concurrently with individual approvals: a quote approved after
// the sweep's read is simply no longer pending and stays untouched.
type ExpireQuotesCommandHandler struct {
	uowFactory QuoteUoWFactory
}

// NewExpireQuotesCommandHandler creates a handler for the expiration sweep.
func NewExpireQuotesCommandHandler(uowFactory QuoteUoWFactory) ExpireQuotesCommandHandler {
	return ExpireQuotesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle expires all lapsed pending quotes and returns how many were flipped
// by this run. A repeat run finds nothing left to expire and returns zero.
func (h *ExpireQuotesCommandHandler) Handle(ctx context.Context, cmd ExpireQuotesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	expired, err := uow.QuoteRepository().ExpirePending(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
