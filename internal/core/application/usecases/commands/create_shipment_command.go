package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to attach the transit record to
// a confirmed booking.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID       kernel.UUID
	bookingID        kernel.UUID
	carrierName      string
	departurePort    string
	arrivalPort      string
	departureDate    *time.Time
	estimatedArrival *time.Time

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to attach a shipment.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	bookingID kernel.UUID,
	carrierName string,
	departurePort string,
	arrivalPort string,
	departureDate *time.Time,
	estimatedArrival *time.Time,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		departureDate:    departureDate,
		estimatedArrival: estimatedArrival,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setBookingID(bookingID),
		cmd.setCarrierName(carrierName),
		cmd.setPorts(departurePort, arrivalPort),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// BookingID returns the owning booking's identifier.
func (c CreateShipmentCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// CarrierName returns the carrier operating the transit.
func (c CreateShipmentCommand) CarrierName() string {
	return c.carrierName
}

// DeparturePort returns the origin port.
func (c CreateShipmentCommand) DeparturePort() string {
	return c.departurePort
}

// ArrivalPort returns the destination port.
func (c CreateShipmentCommand) ArrivalPort() string {
	return c.arrivalPort
}

// DepartureDate returns the scheduled departure, nil when uncommitted.
func (c CreateShipmentCommand) DepartureDate() *time.Time {
	return c.departureDate
}

// EstimatedArrival returns the carrier's estimate, nil when uncommitted.
func (c CreateShipmentCommand) EstimatedArrival() *time.Time {
	return c.estimatedArrival
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *CreateShipmentCommand) setCarrierName(carrierName string) error {
	if carrierName == "" {
		return errs.NewValueIsRequiredError("carrier name")
	}
	c.carrierName = carrierName
	return nil
}

func (c *CreateShipmentCommand) setPorts(departurePort, arrivalPort string) error {
	if departurePort == "" {
		return errs.NewValueIsRequiredError("departure port")
	}
	if arrivalPort == "" {
		return errs.NewValueIsRequiredError("arrival port")
	}
	c.departurePort = departurePort
	c.arrivalPort = arrivalPort
	return nil
}
