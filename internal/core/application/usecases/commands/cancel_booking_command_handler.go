package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// CancelBookingCommandHandler abandons a non-terminal booking and notifies
// consumers after the commit. Nothing attached to the booking is deleted.
type CancelBookingCommandHandler struct {
	uowFactory BookingUoWFactory
	notifier   ports.Notifier
}

// NewCancelBookingCommandHandler creates a handler for booking cancellation.
func NewCancelBookingCommandHandler(uowFactory BookingUoWFactory, notifier ports.Notifier) CancelBookingCommandHandler {
	return CancelBookingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the booking, applies the cancellation, and publishes it.
func (h *CancelBookingCommandHandler) Handle(ctx context.Context, cmd CancelBookingCommand) error {
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

	if err = aggregate.Cancel(cmd.Reason()); err != nil {
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
