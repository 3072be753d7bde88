package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrRetryPaymentCommandIsNotConstructed = errors.New(
	"RetryPaymentCommand must be created via NewRetryPaymentCommand constructor",
)

// RetryPaymentCommand represents a request to move a failed payment back to
// pending for another settlement attempt.
type RetryPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRetryPaymentCommand creates a command to retry a failed payment.
func NewRetryPaymentCommand(paymentID kernel.UUID) (RetryPaymentCommand, error) {
	cmd := RetryPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPaymentID(paymentID); err != nil {
		return RetryPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RetryPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRetryPaymentCommandIsNotConstructed)
}

// PaymentID returns the payment's unique identifier.
func (c RetryPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c *RetryPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	c.paymentID = paymentID
	return nil
}
