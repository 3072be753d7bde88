package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
	"shipping/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a request to register a pending payment
// against a booking.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID  kernel.UUID
	bookingID  kernel.UUID
	customerID kernel.UUID
	amount     kernel.Money
	method     payment.Method
	recordedBy kernel.Actor

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment.
func NewRecordPaymentCommand(
	paymentID kernel.UUID,
	bookingID kernel.UUID,
	customerID kernel.UUID,
	amount kernel.Money,
	method payment.Method,
	recordedBy kernel.Actor,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setBookingID(bookingID),
		cmd.setCustomerID(customerID),
		cmd.setAmount(amount),
		cmd.setMethod(method),
		cmd.setRecordedBy(recordedBy),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// PaymentID returns the unique identifier for the payment.
func (c RecordPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// BookingID returns the owning booking's identifier.
func (c RecordPaymentCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// CustomerID returns the paying customer's identifier.
func (c RecordPaymentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Amount returns the payment amount.
func (c RecordPaymentCommand) Amount() kernel.Money {
	return c.amount
}

// Method returns how the payment was made.
func (c RecordPaymentCommand) Method() payment.Method {
	return c.method
}

// RecordedBy returns the actor recording the payment.
func (c RecordPaymentCommand) RecordedBy() kernel.Actor {
	return c.recordedBy
}

func (c *RecordPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	c.paymentID = paymentID
	return nil
}

func (c *RecordPaymentCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *RecordPaymentCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	c.amount = amount
	return nil
}

func (c *RecordPaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}

func (c *RecordPaymentCommand) setRecordedBy(recordedBy kernel.Actor) error {
	if err := recordedBy.Validate(); err != nil {
		return err
	}
	c.recordedBy = recordedBy
	return nil
}
