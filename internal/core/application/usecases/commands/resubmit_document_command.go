package commands

import (
	"errors"

	"shipping/internal/core/domain/model/document"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrResubmitDocumentCommandIsNotConstructed = errors.New(
	"ResubmitDocumentCommand must be created via NewResubmitDocumentCommand constructor",
)

// ResubmitDocumentCommand represents a corrected file replacing one sent
// back for revision.
type ResubmitDocumentCommand struct { //nolint:recvcheck //using for validation
	documentID kernel.UUID
	file       document.FileMeta

	guard guard.ConstructorGuard
}

// NewResubmitDocumentCommand creates a command to resubmit a document.
func NewResubmitDocumentCommand(documentID kernel.UUID, file document.FileMeta) (ResubmitDocumentCommand, error) {
	cmd := ResubmitDocumentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDocumentID(documentID),
		cmd.setFile(file),
	); err != nil {
		return ResubmitDocumentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResubmitDocumentCommand) Validate() error {
	return c.guard.Validate(ErrResubmitDocumentCommandIsNotConstructed)
}

// DocumentID returns the document's unique identifier.
func (c ResubmitDocumentCommand) DocumentID() kernel.UUID {
	return c.documentID
}

// File returns the corrected file descriptor.
func (c ResubmitDocumentCommand) File() document.FileMeta {
	return c.file
}

func (c *ResubmitDocumentCommand) setDocumentID(documentID kernel.UUID) error {
	if err := documentID.Validate(); err != nil {
		return err
	}
	c.documentID = documentID
	return nil
}

func (c *ResubmitDocumentCommand) setFile(file document.FileMeta) error {
	if err := file.Validate(); err != nil {
		return err
	}
	c.file = file
	return nil
}
