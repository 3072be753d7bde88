package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// CreateBookingCommand represents a request to register a direct booking,
// one created without a quote. The operator supplies the pricing.
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID         kernel.UUID
	customerID        kernel.UUID
	vehicleID         kernel.UUID
	routeID           kernel.UUID
	totalAmount       kernel.Money
	recipient         booking.Recipient
	pickupDate        *time.Time
	estimatedDelivery *time.Time
	createdBy         kernel.Actor

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand creates a command to register a direct booking.
func NewCreateBookingCommand(
	bookingID kernel.UUID,
	customerID kernel.UUID,
	vehicleID kernel.UUID,
	routeID kernel.UUID,
	totalAmount kernel.Money,
	recipient booking.Recipient,
	pickupDate *time.Time,
	estimatedDelivery *time.Time,
	createdBy kernel.Actor,
) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		pickupDate:        pickupDate,
		estimatedDelivery: estimatedDelivery,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setCustomerID(customerID),
		cmd.setVehicleID(vehicleID),
		cmd.setRouteID(routeID),
		cmd.setTotalAmount(totalAmount),
		cmd.setRecipient(recipient),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

// BookingID returns the unique identifier for the booking.
func (c CreateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// CustomerID returns the owning customer's identifier.
func (c CreateBookingCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// VehicleID returns the shipped vehicle's identifier.
func (c CreateBookingCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// RouteID returns the route's identifier.
func (c CreateBookingCommand) RouteID() kernel.UUID {
	return c.routeID
}

// TotalAmount returns the operator-supplied total.
func (c CreateBookingCommand) TotalAmount() kernel.Money {
	return c.totalAmount
}

// Recipient returns the destination contact block.
func (c CreateBookingCommand) Recipient() booking.Recipient {
	return c.recipient
}

// PickupDate returns the scheduled pickup, nil when unscheduled.
func (c CreateBookingCommand) PickupDate() *time.Time {
	return c.pickupDate
}

// EstimatedDelivery returns the delivery estimate, nil when unknown.
func (c CreateBookingCommand) EstimatedDelivery() *time.Time {
	return c.estimatedDelivery
}

// CreatedBy returns the actor creating the booking.
func (c CreateBookingCommand) CreatedBy() kernel.Actor {
	return c.createdBy
}

func (c *CreateBookingCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *CreateBookingCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateBookingCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *CreateBookingCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	c.routeID = routeID
	return nil
}

func (c *CreateBookingCommand) setTotalAmount(totalAmount kernel.Money) error {
	if err := totalAmount.Validate(); err != nil {
		return err
	}
	c.totalAmount = totalAmount
	return nil
}

func (c *CreateBookingCommand) setRecipient(recipient booking.Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	c.recipient = recipient
	return nil
}

func (c *CreateBookingCommand) setCreatedBy(createdBy kernel.Actor) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	c.createdBy = createdBy
	return nil
}
