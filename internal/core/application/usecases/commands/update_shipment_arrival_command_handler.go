package commands

import (
	"context"
)

// UpdateShipmentArrivalCommandHandler records a revised arrival estimate on
// a shipment still in transit. The delay overlay follows the new estimate on
// the next read.
type UpdateShipmentArrivalCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentArrivalCommandHandler creates a handler for estimate revisions.
func NewUpdateShipmentArrivalCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentArrivalCommandHandler {
	return UpdateShipmentArrivalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the shipment and records the revised estimate.
func (h *UpdateShipmentArrivalCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentArrivalCommand) error {
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

	if err = aggregate.UpdateEstimatedArrival(cmd.EstimatedArrival()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
