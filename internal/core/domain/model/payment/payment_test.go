package payment_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
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

func newPendingPayment(t *testing.T, amount string) *payment.Payment {
	t.Helper()
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	p, err := payment.NewPayment(
		kernel.NewUUID(),
		payment.NewReference(now, 1),
		kernel.NewUUID(),
		kernel.NewUUID(),
		usd(t, amount),
		payment.MethodBankTransfer,
		kernel.NewCustomerActor(kernel.NewUUID()),
	)
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	t.Run("starts pending with nothing applied", func(t *testing.T) {
		p := newPendingPayment(t, "400.00")

		assert.Equal(t, payment.StatusPending, p.Status())
		applied, err := p.AppliedAmount()
		require.NoError(t, err)
		assert.True(t, applied.IsZero())
	})

	t.Run("rejects a zero amount", func(t *testing.T) {
		now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		_, err := payment.NewPayment(
			kernel.NewUUID(), payment.NewReference(now, 1),
			kernel.NewUUID(), kernel.NewUUID(),
			usd(t, "0.00"), payment.MethodCash,
			kernel.NewCustomerActor(kernel.NewUUID()),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p payment.Payment
		require.ErrorIs(t, p.Validate(), payment.ErrPaymentIsNotConstructed)
	})
}

func TestNewReference(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "PAY2026090008", payment.NewReference(now, 8))
}

func TestPayment_Complete(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("settles and applies the full amount", func(t *testing.T) {
		p := newPendingPayment(t, "400.00")

		require.NoError(t, p.Complete(now))
		assert.Equal(t, payment.StatusCompleted, p.Status())
		require.NotNil(t, p.PaymentDate())
		assert.Equal(t, now, *p.PaymentDate())

		applied, err := p.AppliedAmount()
		require.NoError(t, err)
		assert.Equal(t, "400.00 USD", applied.String())
	})

	t.Run("cannot complete twice", func(t *testing.T) {
		p := newPendingPayment(t, "400.00")
		require.NoError(t, p.Complete(now))
		require.ErrorIs(t, p.Complete(now), errs.ErrInvalidTransition)
	})
}

func TestPayment_FailAndRetry(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("failure keeps the reason, retry clears it", func(t *testing.T) {
		p := newPendingPayment(t, "400.00")

		require.NoError(t, p.Fail("issuer declined"))
		assert.Equal(t, payment.StatusFailed, p.Status())
		assert.Equal(t, "issuer declined", p.FailureReason())

		applied, err := p.AppliedAmount()
		require.NoError(t, err)
		assert.True(t, applied.IsZero())

		require.NoError(t, p.Retry())
		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Empty(t, p.FailureReason())

		require.NoError(t, p.Complete(now))
		assert.Equal(t, payment.StatusCompleted, p.Status())
	})

	t.Run("failure requires a reason", func(t *testing.T) {
		p := newPendingPayment(t, "400.00")
		require.ErrorIs(t, p.Fail(""), errs.ErrValueIsRequired)
	})

	t.Run("only failed payments retry", func(t *testing.T) {
		p := newPendingPayment(t, "400.00")
		require.ErrorIs(t, p.Retry(), errs.ErrInvalidTransition)
	})
}

func TestPayment_Cancel(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("withdraws a pending payment", func(t *testing.T) {
		p := newPendingPayment(t, "400.00")
		require.NoError(t, p.Cancel())
		assert.Equal(t, payment.StatusCancelled, p.Status())
	})

	t.Run("completed payments cannot cancel", func(t *testing.T) {
		p := newPendingPayment(t, "400.00")
		require.NoError(t, p.Complete(now))
		require.ErrorIs(t, p.Cancel(), errs.ErrInvalidTransition)
	})
}

func TestPayment_Refund(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("full refund removes the contribution", func(t *testing.T) {
		p := newPendingPayment(t, "400.00")
		require.NoError(t, p.Complete(now))

		require.NoError(t, p.Refund(usd(t, "400.00"), now))
		assert.Equal(t, payment.StatusRefunded, p.Status())

		applied, err := p.AppliedAmount()
		require.NoError(t, err)
		assert.True(t, applied.IsZero())
	})

	t.Run("partial refund leaves the remainder", func(t *testing.T) {
		p := newPendingPayment(t, "400.00")
		require.NoError(t, p.Complete(now))

		require.NoError(t, p.Refund(usd(t, "150.00"), now))
		applied, err := p.AppliedAmount()
		require.NoError(t, err)
		assert.Equal(t, "250.00 USD", applied.String())
	})

	t.Run("refund cannot exceed the payment", func(t *testing.T) {
		p := newPendingPayment(t, "400.00")
		require.NoError(t, p.Complete(now))

		require.ErrorIs(t, p.Refund(usd(t, "500.00"), now), errs.ErrAmountMismatch)
		assert.Equal(t, payment.StatusCompleted, p.Status())
	})

	t.Run("pending payments cannot refund", func(t *testing.T) {
		p := newPendingPayment(t, "400.00")
		require.ErrorIs(t, p.Refund(usd(t, "100.00"), now), errs.ErrInvalidTransition)
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    payment.Status
		to      payment.Status
		allowed bool
	}{
		{"pending to completed", payment.StatusPending, payment.StatusCompleted, true},
		{"pending to failed", payment.StatusPending, payment.StatusFailed, true},
		{"pending to cancelled", payment.StatusPending, payment.StatusCancelled, true},
		{"pending to refunded", payment.StatusPending, payment.StatusRefunded, false},
		{"completed to refunded", payment.StatusCompleted, payment.StatusRefunded, true},
		{"completed to failed", payment.StatusCompleted, payment.StatusFailed, false},
		{"failed retries to pending", payment.StatusFailed, payment.StatusPending, true},
		{"refunded is terminal", payment.StatusRefunded, payment.StatusPending, false},
		{"cancelled is terminal", payment.StatusCancelled, payment.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.TransitionTo(tt.to)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, got)
			} else {
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
			}
		})
	}
}

func TestMethodFromString(t *testing.T) {
	got, err := payment.MethodFromString("mobile_money")
	require.NoError(t, err)
	assert.Equal(t, payment.MethodMobileMoney, got)

	_, err = payment.MethodFromString("crypto")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
