package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCancelBookingCommandIsNotConstructed = errors.New(
	"CancelBookingCommand must be created via NewCancelBookingCommand constructor",
)

// CancelBookingCommand represents a request to abandon a booking. The reason
// is mandatory and stored; attached shipments, documents, and payments stay
// for audit.
type CancelBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewCancelBookingCommand creates a command to cancel a booking.
func NewCancelBookingCommand(bookingID kernel.UUID, reason string) (CancelBookingCommand, error) {
	cmd := CancelBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setReason(reason),
	); err != nil {
		return CancelBookingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelBookingCommand) Validate() error {
	return c.guard.Validate(ErrCancelBookingCommandIsNotConstructed)
}

// BookingID returns the booking's unique identifier.
func (c CancelBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// Reason returns the mandatory cancellation reason.
func (c CancelBookingCommand) Reason() string {
	return c.reason
}

func (c *CancelBookingCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *CancelBookingCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellation reason")
	}
	c.reason = reason
	return nil
}
