package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/document"
)

// UploadDocumentCommandHandler registers an uploaded document in pending
// status, ready for operator review.
type UploadDocumentCommandHandler struct {
	uowFactory DocumentUoWFactory
}

// NewUploadDocumentCommandHandler creates a handler for document uploads.
func NewUploadDocumentCommandHandler(uowFactory DocumentUoWFactory) UploadDocumentCommandHandler {
	return UploadDocumentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the document aggregate.
func (h *UploadDocumentCommandHandler) Handle(ctx context.Context, cmd UploadDocumentCommand) error {
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

	aggregate, err := document.NewDocument(
		cmd.DocumentID(),
		cmd.BookingID(),
		cmd.CustomerID(),
		cmd.DocType(),
		cmd.File(),
		cmd.ExpiryDate(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.DocumentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
