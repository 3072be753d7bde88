package booking_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usd(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(amount, kernel.DefaultCurrency)
	require.NoError(t, err)
	return m
}

func testRecipient(t *testing.T) booking.Recipient {
	t.Helper()
	r, err := booking.NewRecipient(
		"Amina Diallo", "+221771234567", "amina@example.com",
		"12 Rue de la Corniche", "Dakar", "SN",
	)
	require.NoError(t, err)
	return r
}

func newPendingBooking(t *testing.T, now time.Time) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(
		kernel.NewUUID(),
		booking.NewReference(now, 1),
		kernel.NewUUID(),
		nil,
		kernel.NewUUID(),
		kernel.NewUUID(),
		usd(t, "2150.00"),
		testRecipient(t),
		nil,
		nil,
		kernel.NewOperatorActor(kernel.NewUUID()),
	)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("starts pending and unpaid", func(t *testing.T) {
		b := newPendingBooking(t, now)

		assert.Equal(t, booking.Pending, b.Status())
		assert.True(t, b.PaidAmount().IsZero())
		assert.Equal(t, b.TotalAmount().Currency(), b.PaidAmount().Currency())

		coverage, err := b.Coverage()
		require.NoError(t, err)
		assert.Equal(t, booking.Unpaid, coverage)
	})

	t.Run("keeps the source quote id", func(t *testing.T) {
		quoteID := kernel.NewUUID()
		b, err := booking.NewBooking(
			kernel.NewUUID(), "BK2026090002", kernel.NewUUID(), &quoteID,
			kernel.NewUUID(), kernel.NewUUID(),
			usd(t, "2150.00"), testRecipient(t), nil, nil,
			kernel.NewOperatorActor(kernel.NewUUID()),
		)
		require.NoError(t, err)
		require.NotNil(t, b.QuoteID())
		assert.True(t, b.QuoteID().IsEqual(quoteID))
	})

	t.Run("rejects missing reference", func(t *testing.T) {
		_, err := booking.NewBooking(
			kernel.NewUUID(), "", kernel.NewUUID(), nil,
			kernel.NewUUID(), kernel.NewUUID(),
			usd(t, "2150.00"), testRecipient(t), nil, nil,
			kernel.NewOperatorActor(kernel.NewUUID()),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var b booking.Booking
		require.ErrorIs(t, b.Validate(), booking.ErrBookingIsNotConstructed)
	})
}

func TestNewReference(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "BK2026090017", booking.NewReference(now, 17))
}

func TestBooking_UpdateStatus(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("walks the forward chain", func(t *testing.T) {
		b := newPendingBooking(t, now)

		require.NoError(t, b.UpdateStatus(booking.Confirmed, now))
		require.NoError(t, b.UpdateStatus(booking.InTransit, now))

		deliveredAt := now.AddDate(0, 0, 12)
		require.NoError(t, b.UpdateStatus(booking.Delivered, deliveredAt))
		assert.Equal(t, booking.Delivered, b.Status())
		require.NotNil(t, b.ActualDelivery())
		assert.Equal(t, deliveredAt, *b.ActualDelivery())
	})

	t.Run("refuses skipped states", func(t *testing.T) {
		b := newPendingBooking(t, now)
		err := b.UpdateStatus(booking.Delivered, now)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, booking.Pending, b.Status())
		assert.Nil(t, b.ActualDelivery())
	})

	t.Run("cancellation must go through Cancel", func(t *testing.T) {
		b := newPendingBooking(t, now)
		require.ErrorIs(t, b.UpdateStatus(booking.Cancelled, now), errs.ErrValueIsInvalid)
	})
}

func TestBooking_Cancel(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("requires a reason", func(t *testing.T) {
		b := newPendingBooking(t, now)
		require.ErrorIs(t, b.Cancel(""), errs.ErrValueIsRequired)
		assert.Equal(t, booking.Pending, b.Status())
	})

	t.Run("cancellable from in_transit", func(t *testing.T) {
		b := newPendingBooking(t, now)
		require.NoError(t, b.UpdateStatus(booking.Confirmed, now))
		require.NoError(t, b.UpdateStatus(booking.InTransit, now))

		require.NoError(t, b.Cancel("vehicle failed port inspection"))
		assert.Equal(t, booking.Cancelled, b.Status())
		assert.Equal(t, "vehicle failed port inspection", b.CancellationReason())
	})

	t.Run("not cancellable after delivery", func(t *testing.T) {
		b := newPendingBooking(t, now)
		require.NoError(t, b.UpdateStatus(booking.Confirmed, now))
		require.NoError(t, b.UpdateStatus(booking.InTransit, now))
		require.NoError(t, b.UpdateStatus(booking.Delivered, now))

		require.ErrorIs(t, b.Cancel("too late"), errs.ErrInvalidTransition)
	})
}

func TestBooking_ApplyLedgerTotal(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("coverage follows the ledger sum", func(t *testing.T) {
		b := newPendingBooking(t, now)

		require.NoError(t, b.ApplyLedgerTotal(usd(t, "1000.00")))
		coverage, err := b.Coverage()
		require.NoError(t, err)
		assert.Equal(t, booking.Partial, coverage)

		require.NoError(t, b.ApplyLedgerTotal(usd(t, "2150.00")))
		coverage, err = b.Coverage()
		require.NoError(t, err)
		assert.Equal(t, booking.Paid, coverage)

		require.NoError(t, b.ApplyLedgerTotal(usd(t, "0.00")))
		coverage, err = b.Coverage()
		require.NoError(t, err)
		assert.Equal(t, booking.Unpaid, coverage)
	})

	t.Run("overpayment still reads as paid", func(t *testing.T) {
		b := newPendingBooking(t, now)
		require.NoError(t, b.ApplyLedgerTotal(usd(t, "3000.00")))

		coverage, err := b.Coverage()
		require.NoError(t, err)
		assert.Equal(t, booking.Paid, coverage)
	})

	t.Run("rejects a foreign currency", func(t *testing.T) {
		b := newPendingBooking(t, now)
		eur, err := kernel.NewMoneyFromString("500.00", "EUR")
		require.NoError(t, err)

		require.ErrorIs(t, b.ApplyLedgerTotal(eur), errs.ErrAmountMismatch)
	})
}

func TestBooking_Scheduling(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("records pickup and estimate", func(t *testing.T) {
		b := newPendingBooking(t, now)
		pickup := now.AddDate(0, 0, 3)
		estimate := now.AddDate(0, 0, 21)

		require.NoError(t, b.SchedulePickup(pickup))
		require.NoError(t, b.UpdateEstimatedDelivery(estimate))
		require.NotNil(t, b.PickupDate())
		assert.Equal(t, pickup, *b.PickupDate())
		require.NotNil(t, b.EstimatedDelivery())
		assert.Equal(t, estimate, *b.EstimatedDelivery())
	})

	t.Run("frozen once terminal", func(t *testing.T) {
		b := newPendingBooking(t, now)
		require.NoError(t, b.Cancel("customer withdrew"))

		require.ErrorIs(t, b.SchedulePickup(now), errs.ErrInvalidTransition)
		require.ErrorIs(t, b.UpdateEstimatedDelivery(now), errs.ErrInvalidTransition)
	})
}

func TestDeriveCoverage(t *testing.T) {
	tests := []struct {
		name  string
		paid  string
		total string
		want  booking.Coverage
	}{
		{"nothing paid", "0.00", "2150.00", booking.Unpaid},
		{"partially paid", "500.00", "2150.00", booking.Partial},
		{"exactly paid", "2150.00", "2150.00", booking.Paid},
		{"overpaid", "2500.00", "2150.00", booking.Paid},
		{"zero total", "0.00", "0.00", booking.Unpaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := booking.DeriveCoverage(usd(t, tt.paid), usd(t, tt.total))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRestoreBooking(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("restores a persisted booking", func(t *testing.T) {
		pickup := now.AddDate(0, 0, 3)
		b, err := booking.RestoreBooking(
			kernel.NewUUID(), "BK2026090005", kernel.NewUUID(), nil,
			kernel.NewUUID(), kernel.NewUUID(),
			booking.InTransit,
			usd(t, "2150.00"), usd(t, "1000.00"),
			testRecipient(t),
			&pickup, nil, nil, "",
			kernel.NewOperatorActor(kernel.NewUUID()),
		)
		require.NoError(t, err)
		assert.Equal(t, booking.InTransit, b.Status())
		assert.Equal(t, "1000.00 USD", b.PaidAmount().String())
	})

	t.Run("rejects mixed currencies", func(t *testing.T) {
		eur, err := kernel.NewMoneyFromString("100.00", "EUR")
		require.NoError(t, err)

		_, err = booking.RestoreBooking(
			kernel.NewUUID(), "BK2026090005", kernel.NewUUID(), nil,
			kernel.NewUUID(), kernel.NewUUID(),
			booking.Pending,
			usd(t, "2150.00"), eur,
			testRecipient(t),
			nil, nil, nil, "",
			kernel.NewOperatorActor(kernel.NewUUID()),
		)
		require.ErrorIs(t, err, errs.ErrAmountMismatch)
	})
}
