package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrRejectQuoteCommandIsNotConstructed = errors.New(
	"RejectQuoteCommand must be created via NewRejectQuoteCommand constructor",
)

// RejectQuoteCommand represents an operator's decision to reject a pending
// quote. The reason is mandatory.
type RejectQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID  kernel.UUID
	operator kernel.Actor
	reason   string

	guard guard.ConstructorGuard
}

// NewRejectQuoteCommand creates a command to reject a quote.
func NewRejectQuoteCommand(quoteID kernel.UUID, operator kernel.Actor, reason string) (RejectQuoteCommand, error) {
	cmd := RejectQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setOperator(operator),
		cmd.setReason(reason),
	); err != nil {
		return RejectQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectQuoteCommand) Validate() error {
	return c.guard.Validate(ErrRejectQuoteCommandIsNotConstructed)
}

// QuoteID returns the quote's unique identifier.
func (c RejectQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

// Operator returns the rejecting operator.
func (c RejectQuoteCommand) Operator() kernel.Actor {
	return c.operator
}

// Reason returns the mandatory rejection reason.
func (c RejectQuoteCommand) Reason() string {
	return c.reason
}

func (c *RejectQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}
	c.quoteID = quoteID
	return nil
}

func (c *RejectQuoteCommand) setOperator(operator kernel.Actor) error {
	if err := operator.Validate(); err != nil {
		return err
	}
	c.operator = operator
	return nil
}

func (c *RejectQuoteCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}
	c.reason = reason
	return nil
}
