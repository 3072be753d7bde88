package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/booking"
)

// CreateBookingCommandHandler registers a direct booking in pending status.
type CreateBookingCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewCreateBookingCommandHandler creates a handler for direct booking creation.
func NewCreateBookingCommandHandler(uowFactory BookingUoWFactory) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns the next monthly reference and persists the booking.
func (h *CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) error {
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

	bookingRepo := uow.BookingRepository()
	sequence, err := bookingRepo.NextSequence(ctx, now)
	if err != nil {
		return err
	}

	aggregate, err := booking.NewBooking(
		cmd.BookingID(),
		booking.NewReference(now, sequence),
		cmd.CustomerID(),
		nil,
		cmd.VehicleID(),
		cmd.RouteID(),
		cmd.TotalAmount(),
		cmd.Recipient(),
		cmd.PickupDate(),
		cmd.EstimatedDelivery(),
		cmd.CreatedBy(),
	)
	if err != nil {
		return err
	}

	if err = bookingRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
