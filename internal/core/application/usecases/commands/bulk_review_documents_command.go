package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrBulkReviewDocumentsCommandIsNotConstructed = errors.New(
	"BulkReviewDocumentsCommand must be created via a BulkReviewDocumentsCommand constructor",
)

// BulkReviewDocumentsCommand applies one verdict to many documents. Each
// document is reviewed independently: one failure never aborts the rest, and
// every item's outcome is reported.
type BulkReviewDocumentsCommand struct { //nolint:recvcheck //using for validation
	documentIDs []kernel.UUID
	operator    kernel.Actor
	decision    ReviewDecision
	note        string

	guard guard.ConstructorGuard
}

// NewBulkApproveDocumentsCommand creates a bulk approval. The note is optional.
func NewBulkApproveDocumentsCommand(documentIDs []kernel.UUID, operator kernel.Actor, note string) (BulkReviewDocumentsCommand, error) {
	return newBulkReviewDocumentsCommand(documentIDs, operator, DecisionApprove, note)
}

// NewBulkRejectDocumentsCommand creates a bulk rejection. The reason is
// mandatory and shared by every item.
func NewBulkRejectDocumentsCommand(documentIDs []kernel.UUID, operator kernel.Actor, reason string) (BulkReviewDocumentsCommand, error) {
	if reason == "" {
		return BulkReviewDocumentsCommand{}, errs.NewValueIsRequiredError("rejection reason")
	}
	return newBulkReviewDocumentsCommand(documentIDs, operator, DecisionReject, reason)
}

func newBulkReviewDocumentsCommand(
	documentIDs []kernel.UUID,
	operator kernel.Actor,
	decision ReviewDecision,
	note string,
) (BulkReviewDocumentsCommand, error) {
	cmd := BulkReviewDocumentsCommand{
		decision: decision,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDocumentIDs(documentIDs),
		cmd.setOperator(operator),
	); err != nil {
		return BulkReviewDocumentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c BulkReviewDocumentsCommand) Validate() error {
	return c.guard.Validate(ErrBulkReviewDocumentsCommandIsNotConstructed)
}

// DocumentIDs returns the documents under review.
func (c BulkReviewDocumentsCommand) DocumentIDs() []kernel.UUID {
	return c.documentIDs
}

// Operator returns the reviewing operator.
func (c BulkReviewDocumentsCommand) Operator() kernel.Actor {
	return c.operator
}

// Decision returns the shared verdict.
func (c BulkReviewDocumentsCommand) Decision() ReviewDecision {
	return c.decision
}

// Note returns the shared note or reason.
func (c BulkReviewDocumentsCommand) Note() string {
	return c.note
}

func (c *BulkReviewDocumentsCommand) setDocumentIDs(documentIDs []kernel.UUID) error {
	if len(documentIDs) == 0 {
		return errs.NewValueIsRequiredError("document ids")
	}
	for _, id := range documentIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.documentIDs = documentIDs
	return nil
}

func (c *BulkReviewDocumentsCommand) setOperator(operator kernel.Actor) error {
	if err := operator.Validate(); err != nil {
		return err
	}
	c.operator = operator
	return nil
}
