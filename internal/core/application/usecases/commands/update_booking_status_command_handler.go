package commands

import (
	"context"
	"time"

	"shipping/internal/core/ports"
)

// UpdateBookingStatusCommandHandler advances a booking along the forward
// chain and notifies consumers after the commit. Payment coverage never
// gates the transition; the readiness view is advisory.
type UpdateBookingStatusCommandHandler struct {
	uowFactory BookingUoWFactory
	notifier   ports.Notifier
}

// NewUpdateBookingStatusCommandHandler creates a handler for booking status updates.
func NewUpdateBookingStatusCommandHandler(
	uowFactory BookingUoWFactory,
	notifier ports.Notifier,
) UpdateBookingStatusCommandHandler {
	return UpdateBookingStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the booking, applies the transition, and publishes the change.
func (h *UpdateBookingStatusCommandHandler) Handle(ctx context.Context, cmd UpdateBookingStatusCommand) error {
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

	bookingRepo := uow.BookingRepository()
	aggregate, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateStatus(cmd.NewStatus(), time.Now().UTC()); err != nil {
		return err
	}

	if err = bookingRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.NotifyBookingStatusChanged(ctx, aggregate)

	return nil
}
