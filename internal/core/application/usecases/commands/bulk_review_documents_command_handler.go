package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
)

// BulkReviewOutcome reports one document's result within a bulk review.
type BulkReviewOutcome struct {
	DocumentID kernel.UUID
	Err        error
}

// BulkReviewDocumentsCommandHandler applies a shared verdict to each listed
// document in its own transaction. A document that cannot take the verdict
// (not pending, not found) is reported in its outcome and the rest proceed.
type BulkReviewDocumentsCommandHandler struct {
	uowFactory DocumentUoWFactory
	notifier   ports.Notifier
}

// NewBulkReviewDocumentsCommandHandler creates a handler for bulk review.
func NewBulkReviewDocumentsCommandHandler(
	uowFactory DocumentUoWFactory,
	notifier ports.Notifier,
) BulkReviewDocumentsCommandHandler {
	return BulkReviewDocumentsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle reviews every document independently and returns one outcome per
// requested id, in request order.
func (h *BulkReviewDocumentsCommandHandler) Handle(
	ctx context.Context,
	cmd BulkReviewDocumentsCommand,
) ([]BulkReviewOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	outcomes := make([]BulkReviewOutcome, 0, len(cmd.DocumentIDs()))

	for _, documentID := range cmd.DocumentIDs() {
		outcomes = append(outcomes, BulkReviewOutcome{
			DocumentID: documentID,
			Err:        h.reviewOne(ctx, cmd, documentID, now),
		})
	}

	return outcomes, nil
}

func (h *BulkReviewDocumentsCommandHandler) reviewOne(
	ctx context.Context,
	cmd BulkReviewDocumentsCommand,
	documentID kernel.UUID,
	now time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	documentRepo := uow.DocumentRepository()
	aggregate, err := documentRepo.Get(ctx, documentID)
	if err != nil {
		return err
	}

	itemCmd, err := newReviewDocumentCommand(documentID, cmd.Operator(), cmd.Decision(), cmd.Note())
	if err != nil {
		return err
	}

	if err = applyReviewDecision(aggregate, itemCmd, now); err != nil {
		return err
	}

	if err = documentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.NotifyDocumentReviewed(ctx, aggregate)

	return nil
}
