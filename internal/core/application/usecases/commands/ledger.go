package commands

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
)

// recomputeBookingPaidAmount rewrites a booking's paid amount as the sum of
// its payments' applied amounts. The caller must already hold the booking's
// row lock (GetForUpdate) inside the enclosing transaction; the lock is what
// serializes concurrent completions and refunds for the same booking.
func recomputeBookingPaidAmount(ctx context.Context, uow LedgerUoW, bookingID kernel.UUID) error {
	bookingRepo := uow.BookingRepository()
	bookingAggregate, err := bookingRepo.GetForUpdate(ctx, bookingID)
	if err != nil {
		return err
	}

	payments, err := uow.PaymentRepository().GetByBookingID(ctx, bookingID)
	if err != nil {
		return err
	}

	paid, err := kernel.ZeroMoney(bookingAggregate.Currency())
	if err != nil {
		return err
	}
	for _, p := range payments {
		applied, err := p.AppliedAmount()
		if err != nil {
			return err
		}
		if applied.IsZero() {
			continue
		}
		if paid, err = paid.Add(applied); err != nil {
			return err
		}
	}

	if err = bookingAggregate.ApplyLedgerTotal(paid); err != nil {
		return err
	}

	return bookingRepo.Update(ctx, bookingAggregate)
}
