package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrExtendQuoteValidityCommandIsNotConstructed = errors.New(
	"ExtendQuoteValidityCommand must be created via NewExtendQuoteValidityCommand constructor",
)

// ExtendQuoteValidityCommand represents a request to push a pending quote's
// validity deadline forward.
type ExtendQuoteValidityCommand struct { //nolint:recvcheck //using for validation
	quoteID    kernel.UUID
	validUntil time.Time

	guard guard.ConstructorGuard
}

// NewExtendQuoteValidityCommand creates a command to extend a quote's validity.
func NewExtendQuoteValidityCommand(quoteID kernel.UUID, validUntil time.Time) (ExtendQuoteValidityCommand, error) {
	cmd := ExtendQuoteValidityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setValidUntil(validUntil),
	); err != nil {
		return ExtendQuoteValidityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExtendQuoteValidityCommand) Validate() error {
	return c.guard.Validate(ErrExtendQuoteValidityCommandIsNotConstructed)
}

// QuoteID returns the quote's unique identifier.
func (c ExtendQuoteValidityCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

// ValidUntil returns the requested new deadline.
func (c ExtendQuoteValidityCommand) ValidUntil() time.Time {
	return c.validUntil
}

func (c *ExtendQuoteValidityCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}
	c.quoteID = quoteID
	return nil
}

func (c *ExtendQuoteValidityCommand) setValidUntil(validUntil time.Time) error {
	if validUntil.IsZero() {
		return errs.NewValueIsRequiredError("valid until")
	}
	c.validUntil = validUntil
	return nil
}
