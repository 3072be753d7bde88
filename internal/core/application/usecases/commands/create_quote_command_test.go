package commands_test

import (
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateQuoteCommand_ValidInput(t *testing.T) {
	quoteID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	routeID := kernel.NewUUID()
	vehicle := testVehicle(t)
	basePrice := usd(t, "2000.00")
	operator := kernel.NewOperatorActor(kernel.NewUUID())

	cmd, err := commands.NewCreateQuoteCommand(
		quoteID, customerID, routeID, vehicle, basePrice, nil, time.Time{}, operator)
	require.NoError(t, err)
	assert.Equal(t, quoteID, cmd.QuoteID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, routeID, cmd.RouteID())
	assert.Equal(t, vehicle, cmd.Vehicle())
	assert.True(t, basePrice.IsEqual(cmd.BasePrice()))
	assert.True(t, cmd.ValidUntil().IsZero())
}

func TestNewCreateQuoteCommand_InvalidQuoteID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateQuoteCommand(
		invalidID, kernel.NewUUID(), kernel.NewUUID(), testVehicle(t),
		usd(t, "2000.00"), nil, time.Time{}, kernel.NewOperatorActor(kernel.NewUUID()))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateQuoteCommand_InvalidVehicle(t *testing.T) {
	_, err := commands.NewCreateQuoteCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), quote.VehicleSnapshot{},
		usd(t, "2000.00"), nil, time.Time{}, kernel.NewOperatorActor(kernel.NewUUID()))
	require.Error(t, err)
}

func TestNewCreateQuoteCommand_InvalidBasePrice(t *testing.T) {
	_, err := commands.NewCreateQuoteCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), testVehicle(t),
		kernel.Money{}, nil, time.Time{}, kernel.NewOperatorActor(kernel.NewUUID()))
	require.Error(t, err)
}

func TestNewCreateQuoteCommand_InvalidFee(t *testing.T) {
	_, err := commands.NewCreateQuoteCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), testVehicle(t),
		usd(t, "2000.00"), []quote.Fee{{}}, time.Time{}, kernel.NewOperatorActor(kernel.NewUUID()))
	require.Error(t, err)
}
