package commands

import (
	"errors"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrUpdateBookingStatusCommandIsNotConstructed = errors.New(
	"UpdateBookingStatusCommand must be created via NewUpdateBookingStatusCommand constructor",
)

// UpdateBookingStatusCommand represents a request to move a booking along
// its forward status chain. Cancellation has its own command because it
// carries a mandatory reason.
type UpdateBookingStatusCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	newStatus booking.Status

	guard guard.ConstructorGuard
}

// NewUpdateBookingStatusCommand creates a command to advance a booking.
func NewUpdateBookingStatusCommand(bookingID kernel.UUID, newStatus booking.Status) (UpdateBookingStatusCommand, error) {
	cmd := UpdateBookingStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateBookingStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBookingStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBookingStatusCommandIsNotConstructed)
}

// BookingID returns the booking's unique identifier.
func (c UpdateBookingStatusCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// NewStatus returns the requested target status.
func (c UpdateBookingStatusCommand) NewStatus() booking.Status {
	return c.newStatus
}

func (c *UpdateBookingStatusCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *UpdateBookingStatusCommand) setNewStatus(newStatus booking.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
