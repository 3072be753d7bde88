package commands

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/domain/model/document"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// ReviewDocumentCommandHandler applies an operator's verdict to one pending
// document and notifies consumers after the commit.
type ReviewDocumentCommandHandler struct {
	uowFactory DocumentUoWFactory
	notifier   ports.Notifier
}

// NewReviewDocumentCommandHandler creates a handler for document review.
func NewReviewDocumentCommandHandler(uowFactory DocumentUoWFactory, notifier ports.Notifier) ReviewDocumentCommandHandler {
	return ReviewDocumentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the document, applies the verdict, and publishes the outcome.
func (h *ReviewDocumentCommandHandler) Handle(ctx context.Context, cmd ReviewDocumentCommand) error {
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

	documentRepo := uow.DocumentRepository()
	aggregate, err := documentRepo.Get(ctx, cmd.DocumentID())
	if err != nil {
		return err
	}

	if err = applyReviewDecision(aggregate, cmd, time.Now().UTC()); err != nil {
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

func applyReviewDecision(aggregate *document.Document, cmd ReviewDocumentCommand, now time.Time) error {
	switch cmd.Decision() {
	case DecisionApprove:
		return aggregate.Approve(cmd.Operator(), cmd.Note(), now)
	case DecisionReject:
		return aggregate.Reject(cmd.Operator(), cmd.Note(), now)
	case DecisionRequestRevision:
		return aggregate.RequestRevision(cmd.Operator(), cmd.Note(), now)
	default:
		return errs.NewValueIsInvalidErrorWithCause("decision",
			errors.New("review decision is not recognized"))
	}
}
