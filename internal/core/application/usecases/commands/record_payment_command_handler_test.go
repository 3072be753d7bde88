package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	bookingAggregate := testBooking(t, "2150.00")

	cmd, err := commands.NewRecordPaymentCommand(
		kernel.NewUUID(),
		bookingAggregate.ID(),
		bookingAggregate.CustomerID(),
		usd(t, "400.00"),
		payment.MethodMobileMoney,
		kernel.NewOperatorActor(kernel.NewUUID()),
	)
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockLedgerUoW)

	var recorded *payment.Payment
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Get", mock.Anything, bookingAggregate.ID()).Return(bookingAggregate, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("NextSequence", mock.Anything, mock.AnythingOfType("time.Time")).Return(12, nil).Once(),
		paymentRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).
			Run(func(args mock.Arguments) { recorded = args.Get(1).(*payment.Payment) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordPaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	// A recorded payment is pending and contributes nothing until completed.
	require.NotNil(t, recorded)
	assert.Equal(t, payment.StatusPending, recorded.Status())
	applied, err := recorded.AppliedAmount()
	require.NoError(t, err)
	assert.True(t, applied.IsZero())
	assert.Equal(t, "0.00 USD", bookingAggregate.PaidAmount().String())

	paymentRepo.AssertExpectations(t)
	bookingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRecordPaymentCommandHandler_Handle_CurrencyMismatch(t *testing.T) {
	ctx := t.Context()
	bookingAggregate := testBooking(t, "2150.00")

	eur, err := kernel.NewMoneyFromString("400.00", "EUR")
	require.NoError(t, err)
	cmd, err := commands.NewRecordPaymentCommand(
		kernel.NewUUID(),
		bookingAggregate.ID(),
		bookingAggregate.CustomerID(),
		eur,
		payment.MethodBankTransfer,
		kernel.NewOperatorActor(kernel.NewUUID()),
	)
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Get", mock.Anything, bookingAggregate.ID()).Return(bookingAggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordPaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAmountMismatch)
	paymentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
