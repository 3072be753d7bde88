package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrFailPaymentCommandIsNotConstructed = errors.New(
	"FailPaymentCommand must be created via NewFailPaymentCommand constructor",
)

// FailPaymentCommand represents a failed settlement attempt. Failure never
// touches the booking's paid amount.
type FailPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewFailPaymentCommand creates a command to mark a payment failed.
func NewFailPaymentCommand(paymentID kernel.UUID, reason string) (FailPaymentCommand, error) {
	cmd := FailPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setReason(reason),
	); err != nil {
		return FailPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FailPaymentCommand) Validate() error {
	return c.guard.Validate(ErrFailPaymentCommandIsNotConstructed)
}

// PaymentID returns the payment's unique identifier.
func (c FailPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Reason returns the failure cause.
func (c FailPaymentCommand) Reason() string {
	return c.reason
}

func (c *FailPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	c.paymentID = paymentID
	return nil
}

func (c *FailPaymentCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("failure reason")
	}
	c.reason = reason
	return nil
}
