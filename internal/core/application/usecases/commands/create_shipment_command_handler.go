package commands

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

// CreateShipmentCommandHandler attaches the one-to-one transit record to a
// confirmed booking.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment attachment.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the booking is confirmed, assigns the next tracking number,
// and persists the shipment.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookingAggregate, err := uow.BookingRepository().Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}
	if bookingAggregate.Status() != booking.Confirmed {
		return errs.NewValueIsInvalidErrorWithCause("booking",
			errors.New("shipments attach to confirmed bookings only, booking is "+bookingAggregate.Status().String()))
	}

	shipmentRepo := uow.ShipmentRepository()
	sequence, err := shipmentRepo.NextSequence(ctx, now)
	if err != nil {
		return err
	}

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(),
		shipment.NewTrackingNumber(now, sequence),
		cmd.BookingID(),
		cmd.CarrierName(),
		cmd.DeparturePort(),
		cmd.ArrivalPort(),
		cmd.DepartureDate(),
		cmd.EstimatedArrival(),
	)
	if err != nil {
		return err
	}

	if err = shipmentRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
