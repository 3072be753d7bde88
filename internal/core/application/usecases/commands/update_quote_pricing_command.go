package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
	"shipping/internal/pkg/guard"
)

var ErrUpdateQuotePricingCommandIsNotConstructed = errors.New(
	"UpdateQuotePricingCommand must be created via NewUpdateQuotePricingCommand constructor",
)

// UpdateQuotePricingCommand represents a request to reprice a pending quote.
type UpdateQuotePricingCommand struct { //nolint:recvcheck //using for validation
	quoteID   kernel.UUID
	vehicle   quote.VehicleSnapshot
	basePrice kernel.Money
	fees      []quote.Fee

	guard guard.ConstructorGuard
}

// NewUpdateQuotePricingCommand creates a command to reprice a quote.
func NewUpdateQuotePricingCommand(
	quoteID kernel.UUID,
	vehicle quote.VehicleSnapshot,
	basePrice kernel.Money,
	fees []quote.Fee,
) (UpdateQuotePricingCommand, error) {
	cmd := UpdateQuotePricingCommand{
		fees:  fees,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setVehicle(vehicle),
		cmd.setBasePrice(basePrice),
		cmd.setFees(fees),
	); err != nil {
		return UpdateQuotePricingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateQuotePricingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateQuotePricingCommandIsNotConstructed)
}

// QuoteID returns the quote's unique identifier.
func (c UpdateQuotePricingCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

// Vehicle returns the snapshot used to validate the new pricing.
func (c UpdateQuotePricingCommand) Vehicle() quote.VehicleSnapshot {
	return c.vehicle
}

// BasePrice returns the new base price.
func (c UpdateQuotePricingCommand) BasePrice() kernel.Money {
	return c.basePrice
}

// Fees returns the new ordered fee list.
func (c UpdateQuotePricingCommand) Fees() []quote.Fee {
	return c.fees
}

func (c *UpdateQuotePricingCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}
	c.quoteID = quoteID
	return nil
}

func (c *UpdateQuotePricingCommand) setVehicle(vehicle quote.VehicleSnapshot) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	c.vehicle = vehicle
	return nil
}

func (c *UpdateQuotePricingCommand) setBasePrice(basePrice kernel.Money) error {
	if err := basePrice.Validate(); err != nil {
		return err
	}
	c.basePrice = basePrice
	return nil
}

func (c *UpdateQuotePricingCommand) setFees(fees []quote.Fee) error {
	for _, fee := range fees {
		if err := fee.Validate(); err != nil {
			return err
		}
	}
	return nil
}
