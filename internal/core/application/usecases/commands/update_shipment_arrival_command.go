package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrUpdateShipmentArrivalCommandIsNotConstructed = errors.New(
	"UpdateShipmentArrivalCommand must be created via NewUpdateShipmentArrivalCommand constructor",
)

// UpdateShipmentArrivalCommand represents a revised carrier arrival estimate.
type UpdateShipmentArrivalCommand struct { //nolint:recvcheck //using for validation
	shipmentID       kernel.UUID
	estimatedArrival time.Time

	guard guard.ConstructorGuard
}

// NewUpdateShipmentArrivalCommand creates a command to revise the estimate.
func NewUpdateShipmentArrivalCommand(shipmentID kernel.UUID, estimatedArrival time.Time) (UpdateShipmentArrivalCommand, error) {
	cmd := UpdateShipmentArrivalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setEstimatedArrival(estimatedArrival),
	); err != nil {
		return UpdateShipmentArrivalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentArrivalCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentArrivalCommandIsNotConstructed)
}

// ShipmentID returns the shipment's unique identifier.
func (c UpdateShipmentArrivalCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// EstimatedArrival returns the revised estimate.
func (c UpdateShipmentArrivalCommand) EstimatedArrival() time.Time {
	return c.estimatedArrival
}

func (c *UpdateShipmentArrivalCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentArrivalCommand) setEstimatedArrival(estimatedArrival time.Time) error {
	if estimatedArrival.IsZero() {
		return errs.NewValueIsRequiredError("estimated arrival")
	}
	c.estimatedArrival = estimatedArrival
	return nil
}
