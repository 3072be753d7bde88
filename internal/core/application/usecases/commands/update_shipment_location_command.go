package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrUpdateShipmentLocationCommandIsNotConstructed = errors.New(
	"UpdateShipmentLocationCommand must be created via NewUpdateShipmentLocationCommand constructor",
)

// UpdateShipmentLocationCommand represents a carrier position report.
type UpdateShipmentLocationCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	location   string

	guard guard.ConstructorGuard
}

// NewUpdateShipmentLocationCommand creates a command to record a position.
func NewUpdateShipmentLocationCommand(shipmentID kernel.UUID, location string) (UpdateShipmentLocationCommand, error) {
	cmd := UpdateShipmentLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setLocation(location),
	); err != nil {
		return UpdateShipmentLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentLocationCommandIsNotConstructed)
}

// ShipmentID returns the shipment's unique identifier.
func (c UpdateShipmentLocationCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Location returns the reported position as free text.
func (c UpdateShipmentLocationCommand) Location() string {
	return c.location
}

func (c *UpdateShipmentLocationCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentLocationCommand) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	c.location = location
	return nil
}
