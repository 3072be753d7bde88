package commands

import (
	"context"
	"time"
)

// ResubmitDocumentCommandHandler replaces the file of a document sent back
// for revision and returns it to the review queue.
type ResubmitDocumentCommandHandler struct {
	uowFactory DocumentUoWFactory
}

// NewResubmitDocumentCommandHandler creates a handler for resubmissions.
func NewResubmitDocumentCommandHandler(uowFactory DocumentUoWFactory) ResubmitDocumentCommandHandler {
	return ResubmitDocumentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the document and swaps in the corrected file.
func (h *ResubmitDocumentCommandHandler) Handle(ctx context.Context, cmd ResubmitDocumentCommand) error {
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

	if err = aggregate.Resubmit(cmd.File(), time.Now().UTC()); err != nil {
		return err
	}

	if err = documentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
