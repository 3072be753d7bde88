package document

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrDocumentIsNotConstructed is returned when a Document instance was not
	// created through the NewDocument or RestoreDocument factory methods.
	ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument or RestoreDocument")
)

// Document is an uploaded compliance or identity file attached to a booking
// and awaiting operator verification. Verification is a one-shot decision
// from Pending; a revision request reopens the loop by sending the document
// back through Pending on resubmission.
type Document struct {
	id               kernel.UUID
	bookingID        kernel.UUID
	customerID       kernel.UUID
	docType          Type
	file             FileMeta
	status           Status
	rejectionReason  string
	verificationNote string
	expiryDate       *time.Time
	uploadedAt       time.Time
	verifiedBy       *kernel.Actor
	verifiedAt       *time.Time

	isConstructed bool
}

// NewDocument creates a pending document from a fresh upload. expiryDate is
// nil for documents that do not expire.
func NewDocument(
	id kernel.UUID,
	bookingID kernel.UUID,
	customerID kernel.UUID,
	docType Type,
	file FileMeta,
	expiryDate *time.Time,
	uploadedAt time.Time,
) (*Document, error) {
	d := &Document{
		status:        StatusPending,
		expiryDate:    expiryDate,
		uploadedAt:    uploadedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setBookingID(bookingID),
		d.setCustomerID(customerID),
		d.setType(docType),
		d.setFile(file),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDocument reconstructs a document from persistence.
func RestoreDocument(
	id kernel.UUID,
	bookingID kernel.UUID,
	customerID kernel.UUID,
	docType Type,
	file FileMeta,
	status Status,
	rejectionReason string,
	verificationNote string,
	expiryDate *time.Time,
	uploadedAt time.Time,
	verifiedBy *kernel.Actor,
	verifiedAt *time.Time,
) (*Document, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	d := &Document{
		status:           status,
		rejectionReason:  rejectionReason,
		verificationNote: verificationNote,
		expiryDate:       expiryDate,
		uploadedAt:       uploadedAt,
		verifiedBy:       verifiedBy,
		verifiedAt:       verifiedAt,
		isConstructed:    true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setBookingID(bookingID),
		d.setCustomerID(customerID),
		d.setType(docType),
		d.setFile(file),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Document instance was properly constructed.
func (d *Document) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDocumentIsNotConstructed
	}
	return nil
}

// IsEqual compares two documents by their unique identifiers.
func (d *Document) IsEqual(other *Document) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the document's unique identifier.
func (d *Document) ID() kernel.UUID {
	return d.id
}

// BookingID returns the owning booking's identifier.
func (d *Document) BookingID() kernel.UUID {
	return d.bookingID
}

// CustomerID returns the uploading customer's identifier.
func (d *Document) CustomerID() kernel.UUID {
	return d.customerID
}

// Type returns the document's classification.
func (d *Document) Type() Type {
	return d.docType
}

// File returns the stored file descriptor.
func (d *Document) File() FileMeta {
	return d.file
}

// Status returns the current verification state.
func (d *Document) Status() Status {
	return d.status
}

// RejectionReason returns the stored reason, empty unless rejected or sent
// back for revision.
func (d *Document) RejectionReason() string {
	return d.rejectionReason
}

// VerificationNote returns the approver's optional note.
func (d *Document) VerificationNote() string {
	return d.verificationNote
}

// ExpiryDate returns the document's expiry, nil for non-expiring documents.
func (d *Document) ExpiryDate() *time.Time {
	return d.expiryDate
}

// UploadedAt returns the upload time of the current file.
func (d *Document) UploadedAt() time.Time {
	return d.uploadedAt
}

// VerifiedBy returns the deciding operator, nil while pending.
func (d *Document) VerifiedBy() *kernel.Actor {
	return d.verifiedBy
}

// VerifiedAt returns the decision time, nil while pending.
func (d *Document) VerifiedAt() *time.Time {
	return d.verifiedAt
}

// Approve verifies a pending document. The note is optional.
func (d *Document) Approve(by kernel.Actor, note string, now time.Time) error {
	if err := by.Validate(); err != nil {
		return err
	}

	next, err := d.status.TransitionTo(StatusApproved)
	if err != nil {
		return err
	}

	d.status = next
	d.verificationNote = note
	d.verifiedBy = &by
	d.verifiedAt = &now
	return nil
}

// Reject refuses a pending document. The reason is mandatory and stored.
func (d *Document) Reject(by kernel.Actor, reason string, now time.Time) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}

	next, err := d.status.TransitionTo(StatusRejected)
	if err != nil {
		return err
	}

	d.status = next
	d.rejectionReason = reason
	d.verifiedBy = &by
	d.verifiedAt = &now
	return nil
}

// RequestRevision sends a pending document back to the customer for
// correction. The reason is mandatory and stored.
func (d *Document) RequestRevision(by kernel.Actor, reason string, now time.Time) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("revision reason")
	}

	next, err := d.status.TransitionTo(StatusRequiresRevision)
	if err != nil {
		return err
	}

	d.status = next
	d.rejectionReason = reason
	d.verifiedBy = &by
	d.verifiedAt = &now
	return nil
}

// Resubmit replaces the file of a document sent back for revision and
// returns it to the review queue.
func (d *Document) Resubmit(file FileMeta, uploadedAt time.Time) error {
	next, err := d.status.TransitionTo(StatusPending)
	if err != nil {
		return err
	}
	if err := file.Validate(); err != nil {
		return err
	}

	d.status = next
	d.file = file
	d.uploadedAt = uploadedAt
	d.rejectionReason = ""
	d.verificationNote = ""
	d.verifiedBy = nil
	d.verifiedAt = nil
	return nil
}

// IsExpired reports whether the expiry date has passed. Advisory only: an
// expired approved document keeps its stored status.
func (d *Document) IsExpired(now time.Time) bool {
	return d.expiryDate != nil && now.After(*d.expiryDate)
}

// ExpiresWithin reports whether the expiry date falls inside the horizon
// [now, now+horizonDays], or has already passed.
func (d *Document) ExpiresWithin(now time.Time, horizonDays int) bool {
	if d.expiryDate == nil {
		return false
	}
	return !d.expiryDate.After(now.AddDate(0, 0, horizonDays))
}

func (d *Document) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Document) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	d.bookingID = bookingID
	return nil
}

func (d *Document) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	d.customerID = customerID
	return nil
}

func (d *Document) setType(docType Type) error {
	if err := docType.Validate(); err != nil {
		return err
	}
	d.docType = docType
	return nil
}

func (d *Document) setFile(file FileMeta) error {
	if err := file.Validate(); err != nil {
		return err
	}
	d.file = file
	return nil
}
