package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/document"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrUploadDocumentCommandIsNotConstructed = errors.New(
	"UploadDocumentCommand must be created via NewUploadDocumentCommand constructor",
)

// UploadDocumentCommand represents a customer uploading a compliance or
// identity document against a booking.
type UploadDocumentCommand struct { //nolint:recvcheck //using for validation
	documentID kernel.UUID
	bookingID  kernel.UUID
	customerID kernel.UUID
	docType    document.Type
	file       document.FileMeta
	expiryDate *time.Time

	guard guard.ConstructorGuard
}

// NewUploadDocumentCommand creates a command to register an upload.
func NewUploadDocumentCommand(
	documentID kernel.UUID,
	bookingID kernel.UUID,
	customerID kernel.UUID,
	docType document.Type,
	file document.FileMeta,
	expiryDate *time.Time,
) (UploadDocumentCommand, error) {
	cmd := UploadDocumentCommand{
		expiryDate: expiryDate,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDocumentID(documentID),
		cmd.setBookingID(bookingID),
		cmd.setCustomerID(customerID),
		cmd.setDocType(docType),
		cmd.setFile(file),
	); err != nil {
		return UploadDocumentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadDocumentCommand) Validate() error {
	return c.guard.Validate(ErrUploadDocumentCommandIsNotConstructed)
}

// DocumentID returns the unique identifier for the document.
func (c UploadDocumentCommand) DocumentID() kernel.UUID {
	return c.documentID
}

// BookingID returns the owning booking's identifier.
func (c UploadDocumentCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// CustomerID returns the uploading customer's identifier.
func (c UploadDocumentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DocType returns the document's classification.
func (c UploadDocumentCommand) DocType() document.Type {
	return c.docType
}

// File returns the stored file descriptor.
func (c UploadDocumentCommand) File() document.FileMeta {
	return c.file
}

// ExpiryDate returns the document's expiry, nil for non-expiring documents.
func (c UploadDocumentCommand) ExpiryDate() *time.Time {
	return c.expiryDate
}

func (c *UploadDocumentCommand) setDocumentID(documentID kernel.UUID) error {
	if err := documentID.Validate(); err != nil {
		return err
	}
	c.documentID = documentID
	return nil
}

func (c *UploadDocumentCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *UploadDocumentCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *UploadDocumentCommand) setDocType(docType document.Type) error {
	if err := docType.Validate(); err != nil {
		return err
	}
	c.docType = docType
	return nil
}

func (c *UploadDocumentCommand) setFile(file document.FileMeta) error {
	if err := file.Validate(); err != nil {
		return err
	}
	c.file = file
	return nil
}
