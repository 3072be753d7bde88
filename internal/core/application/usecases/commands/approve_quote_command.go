package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrApproveQuoteCommandIsNotConstructed = errors.New(
	"ApproveQuoteCommand must be created via NewApproveQuoteCommand constructor",
)

// ApproveQuoteCommand represents an operator's decision to approve a pending
// quote. The note is optional.
type ApproveQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID  kernel.UUID
	operator kernel.Actor
	note     string

	guard guard.ConstructorGuard
}

// NewApproveQuoteCommand creates a command to approve a quote.
func NewApproveQuoteCommand(quoteID kernel.UUID, operator kernel.Actor, note string) (ApproveQuoteCommand, error) {
	cmd := ApproveQuoteCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setOperator(operator),
	); err != nil {
		return ApproveQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveQuoteCommand) Validate() error {
	return c.guard.Validate(ErrApproveQuoteCommandIsNotConstructed)
}

// QuoteID returns the quote's unique identifier.
func (c ApproveQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

// Operator returns the approving operator.
func (c ApproveQuoteCommand) Operator() kernel.Actor {
	return c.operator
}

// Note returns the optional approval note.
func (c ApproveQuoteCommand) Note() string {
	return c.note
}

func (c *ApproveQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}
	c.quoteID = quoteID
	return nil
}

func (c *ApproveQuoteCommand) setOperator(operator kernel.Actor) error {
	if err := operator.Validate(); err != nil {
		return err
	}
	c.operator = operator
	return nil
}
