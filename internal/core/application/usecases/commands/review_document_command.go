package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrReviewDocumentCommandIsNotConstructed = errors.New(
	"ReviewDocumentCommand must be created via a ReviewDocumentCommand constructor",
)

// ReviewDecision is the operator's verdict on a pending document.
type ReviewDecision int

const (
	// DecisionUnknown represents an invalid or undefined decision.
	DecisionUnknown ReviewDecision = iota

	// DecisionApprove verifies the document.
	DecisionApprove

	// DecisionReject refuses the document. Requires a reason.
	DecisionReject

	// DecisionRequestRevision sends the document back for correction.
	// Requires a reason.
	DecisionRequestRevision
)

// ReviewDocumentCommand represents a single-document review verdict. The
// same command backs approval, rejection, and revision requests; the bulk
// handler applies it per item.
type ReviewDocumentCommand struct { //nolint:recvcheck //using for validation
	documentID kernel.UUID
	operator   kernel.Actor
	decision   ReviewDecision
	note       string

	guard guard.ConstructorGuard
}

// NewApproveDocumentCommand creates an approval verdict. The note is optional.
func NewApproveDocumentCommand(documentID kernel.UUID, operator kernel.Actor, note string) (ReviewDocumentCommand, error) {
	return newReviewDocumentCommand(documentID, operator, DecisionApprove, note)
}

// NewRejectDocumentCommand creates a rejection verdict. The reason is mandatory.
func NewRejectDocumentCommand(documentID kernel.UUID, operator kernel.Actor, reason string) (ReviewDocumentCommand, error) {
	if reason == "" {
		return ReviewDocumentCommand{}, errs.NewValueIsRequiredError("rejection reason")
	}
	return newReviewDocumentCommand(documentID, operator, DecisionReject, reason)
}

// NewRequestDocumentRevisionCommand creates a revision request. The reason
// is mandatory.
func NewRequestDocumentRevisionCommand(documentID kernel.UUID, operator kernel.Actor, reason string) (ReviewDocumentCommand, error) {
	if reason == "" {
		return ReviewDocumentCommand{}, errs.NewValueIsRequiredError("revision reason")
	}
	return newReviewDocumentCommand(documentID, operator, DecisionRequestRevision, reason)
}

func newReviewDocumentCommand(
	documentID kernel.UUID,
	operator kernel.Actor,
	decision ReviewDecision,
	note string,
) (ReviewDocumentCommand, error) {
	cmd := ReviewDocumentCommand{
		decision: decision,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDocumentID(documentID),
		cmd.setOperator(operator),
	); err != nil {
		return ReviewDocumentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c ReviewDocumentCommand) Validate() error {
	return c.guard.Validate(ErrReviewDocumentCommandIsNotConstructed)
}

// DocumentID returns the document's unique identifier.
func (c ReviewDocumentCommand) DocumentID() kernel.UUID {
	return c.documentID
}

// Operator returns the reviewing operator.
func (c ReviewDocumentCommand) Operator() kernel.Actor {
	return c.operator
}

// Decision returns the verdict.
func (c ReviewDocumentCommand) Decision() ReviewDecision {
	return c.decision
}

// Note returns the approval note or the rejection/revision reason.
func (c ReviewDocumentCommand) Note() string {
	return c.note
}

func (c *ReviewDocumentCommand) setDocumentID(documentID kernel.UUID) error {
	if err := documentID.Validate(); err != nil {
		return err
	}
	c.documentID = documentID
	return nil
}

func (c *ReviewDocumentCommand) setOperator(operator kernel.Actor) error {
	if err := operator.Validate(); err != nil {
		return err
	}
	c.operator = operator
	return nil
}
