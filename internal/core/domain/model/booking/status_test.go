package booking_test

import (
	"testing"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_TransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    booking.Status
		to      booking.Status
		allowed bool
	}{
		{"pending to confirmed", booking.Pending, booking.Confirmed, true},
		{"pending to cancelled", booking.Pending, booking.Cancelled, true},
		{"pending skips to in_transit", booking.Pending, booking.InTransit, false},
		{"pending skips to delivered", booking.Pending, booking.Delivered, false},
		{"confirmed to in_transit", booking.Confirmed, booking.InTransit, true},
		{"confirmed to cancelled", booking.Confirmed, booking.Cancelled, true},
		{"confirmed back to pending", booking.Confirmed, booking.Pending, false},
		{"in_transit to delivered", booking.InTransit, booking.Delivered, true},
		{"in_transit to cancelled", booking.InTransit, booking.Cancelled, true},
		{"delivered is terminal", booking.Delivered, booking.Cancelled, false},
		{"cancelled is terminal", booking.Cancelled, booking.Confirmed, false},
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

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, booking.Delivered.IsTerminal())
	assert.True(t, booking.Cancelled.IsTerminal())
	assert.False(t, booking.Pending.IsTerminal())
	assert.False(t, booking.Confirmed.IsTerminal())
	assert.False(t, booking.InTransit.IsTerminal())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses persisted names", func(t *testing.T) {
		got, err := booking.StatusFromString("in_transit")
		require.NoError(t, err)
		assert.Equal(t, booking.InTransit, got)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := booking.StatusFromString("shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, booking.Confirmed.Validate())
	require.ErrorIs(t, booking.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, booking.Status(99).Validate(), errs.ErrValueIsInvalid)
}
