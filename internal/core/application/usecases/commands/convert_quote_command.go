package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrConvertQuoteCommandIsNotConstructed = errors.New(
	"ConvertQuoteCommand must be created via NewConvertQuoteCommand constructor",
)

// ConvertQuoteCommand represents a request to turn an approved quote into a
// booking. The caller resolves the shipped vehicle's record and supplies the
// recipient block; pricing is copied from the quote, never re-entered.
type ConvertQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID           kernel.UUID
	bookingID         kernel.UUID
	vehicleID         kernel.UUID
	recipient         booking.Recipient
	pickupDate        *time.Time
	estimatedDelivery *time.Time
	operator          kernel.Actor

	guard guard.ConstructorGuard
}

// NewConvertQuoteCommand creates a command to convert a quote into a booking.
func NewConvertQuoteCommand(
	quoteID kernel.UUID,
	bookingID kernel.UUID,
	vehicleID kernel.UUID,
	recipient booking.Recipient,
	pickupDate *time.Time,
	estimatedDelivery *time.Time,
	operator kernel.Actor,
) (ConvertQuoteCommand, error) {
	cmd := ConvertQuoteCommand{
		pickupDate:        pickupDate,
		estimatedDelivery: estimatedDelivery,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setBookingID(bookingID),
		cmd.setVehicleID(vehicleID),
		cmd.setRecipient(recipient),
		cmd.setOperator(operator),
	); err != nil {
		return ConvertQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConvertQuoteCommand) Validate() error {
	return c.guard.Validate(ErrConvertQuoteCommandIsNotConstructed)
}

// QuoteID returns the quote's unique identifier.
func (c ConvertQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

// BookingID returns the identifier for the booking being created.
func (c ConvertQuoteCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// VehicleID returns the shipped vehicle's record identifier.
func (c ConvertQuoteCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Recipient returns the destination contact block.
func (c ConvertQuoteCommand) Recipient() booking.Recipient {
	return c.recipient
}

// PickupDate returns the scheduled pickup, nil when unscheduled.
func (c ConvertQuoteCommand) PickupDate() *time.Time {
	return c.pickupDate
}

// EstimatedDelivery returns the delivery estimate, nil when unknown.
func (c ConvertQuoteCommand) EstimatedDelivery() *time.Time {
	return c.estimatedDelivery
}

// Operator returns the converting operator.
func (c ConvertQuoteCommand) Operator() kernel.Actor {
	return c.operator
}

func (c *ConvertQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}
	c.quoteID = quoteID
	return nil
}

func (c *ConvertQuoteCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *ConvertQuoteCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *ConvertQuoteCommand) setRecipient(recipient booking.Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	c.recipient = recipient
	return nil
}

func (c *ConvertQuoteCommand) setOperator(operator kernel.Actor) error {
	if err := operator.Validate(); err != nil {
		return err
	}
	c.operator = operator
	return nil
}
