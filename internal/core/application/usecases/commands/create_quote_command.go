package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
	"shipping/internal/pkg/guard"
)

var ErrCreateQuoteCommandIsNotConstructed = errors.New(
	"CreateQuoteCommand must be created via NewCreateQuoteCommand constructor",
)

// CreateQuoteCommand represents a request to price and register a new quote.
// The vehicle snapshot and fee list are validated domain values built by the
// caller; validUntil may be zero to apply the default validity window.
type CreateQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID    kernel.UUID
	customerID kernel.UUID
	routeID    kernel.UUID
	vehicle    quote.VehicleSnapshot
	basePrice  kernel.Money
	fees       []quote.Fee
	validUntil time.Time
	createdBy  kernel.Actor

	guard guard.ConstructorGuard
}

// NewCreateQuoteCommand creates a command to register a new quote.
func NewCreateQuoteCommand(
	quoteID kernel.UUID,
	customerID kernel.UUID,
	routeID kernel.UUID,
	vehicle quote.VehicleSnapshot,
	basePrice kernel.Money,
	fees []quote.Fee,
	validUntil time.Time,
	createdBy kernel.Actor,
) (CreateQuoteCommand, error) {
	cmd := CreateQuoteCommand{
		fees:       fees,
		validUntil: validUntil,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setCustomerID(customerID),
		cmd.setRouteID(routeID),
		cmd.setVehicle(vehicle),
		cmd.setBasePrice(basePrice),
		cmd.setFees(fees),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return CreateQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateQuoteCommand) Validate() error {
	return c.guard.Validate(ErrCreateQuoteCommandIsNotConstructed)
}

// QuoteID returns the unique identifier for the quote.
func (c CreateQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

// CustomerID returns the requesting customer's identifier.
func (c CreateQuoteCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RouteID returns the priced route's identifier.
func (c CreateQuoteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Vehicle returns the snapshot of the vehicle being shipped.
func (c CreateQuoteCommand) Vehicle() quote.VehicleSnapshot {
	return c.vehicle
}

// BasePrice returns the route's base rate for this vehicle.
func (c CreateQuoteCommand) BasePrice() kernel.Money {
	return c.basePrice
}

// Fees returns the ordered list of additional fees.
func (c CreateQuoteCommand) Fees() []quote.Fee {
	return c.fees
}

// ValidUntil returns the requested validity deadline, zero for the default.
func (c CreateQuoteCommand) ValidUntil() time.Time {
	return c.validUntil
}

// CreatedBy returns the actor creating the quote.
func (c CreateQuoteCommand) CreatedBy() kernel.Actor {
	return c.createdBy
}

func (c *CreateQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}
	c.quoteID = quoteID
	return nil
}

func (c *CreateQuoteCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateQuoteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	c.routeID = routeID
	return nil
}

func (c *CreateQuoteCommand) setVehicle(vehicle quote.VehicleSnapshot) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	c.vehicle = vehicle
	return nil
}

func (c *CreateQuoteCommand) setBasePrice(basePrice kernel.Money) error {
	if err := basePrice.Validate(); err != nil {
		return err
	}
	c.basePrice = basePrice
	return nil
}

func (c *CreateQuoteCommand) setFees(fees []quote.Fee) error {
	for _, fee := range fees {
		if err := fee.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *CreateQuoteCommand) setCreatedBy(createdBy kernel.Actor) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	c.createdBy = createdBy
	return nil
}
