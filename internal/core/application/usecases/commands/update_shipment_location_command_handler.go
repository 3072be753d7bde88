package commands

import (
	"context"
)

// UpdateShipmentLocationCommandHandler records a carrier position report on
// a shipment still in transit.
type UpdateShipmentLocationCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentLocationCommandHandler creates a handler for position reports.
func NewUpdateShipmentLocationCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentLocationCommandHandler {
	return UpdateShipmentLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the shipment and records the new position.
func (h *UpdateShipmentLocationCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateLocation(cmd.Location()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
