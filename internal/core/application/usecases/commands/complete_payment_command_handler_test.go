package commands_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByBookingID(ctx context.Context, bookingID kernel.UUID) ([]*payment.Payment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) NextSequence(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

type MockLedgerUoW struct{ mock.Mock }

func (m *MockLedgerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockLedgerUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

func testBooking(t *testing.T, total string) *booking.Booking {
	t.Helper()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	b, err := booking.NewBooking(
		kernel.NewUUID(),
		booking.NewReference(now, 1),
		kernel.NewUUID(),
		nil,
		kernel.NewUUID(),
		kernel.NewUUID(),
		usd(t, total),
		testRecipient(t),
		nil,
		nil,
		kernel.NewOperatorActor(kernel.NewUUID()),
	)
	require.NoError(t, err)
	return b
}

func testPayment(t *testing.T, bookingID kernel.UUID, amount string) *payment.Payment {
	t.Helper()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	p, err := payment.NewPayment(
		kernel.NewUUID(),
		payment.NewReference(now, 1),
		bookingID,
		kernel.NewUUID(),
		usd(t, amount),
		payment.MethodBankTransfer,
		kernel.NewOperatorActor(kernel.NewUUID()),
	)
	require.NoError(t, err)
	return p
}

func TestCompletePaymentCommandHandler_Handle_RecomputesPaidAmount(t *testing.T) {
	ctx := t.Context()
	bookingAggregate := testBooking(t, "2150.00")
	paymentAggregate := testPayment(t, bookingAggregate.ID(), "400.00")
	cmd, err := commands.NewCompletePaymentCommand(paymentAggregate.ID())
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("Get", mock.Anything, paymentAggregate.ID()).Return(paymentAggregate, nil).Once(),
		paymentRepo.On("Update", mock.Anything, paymentAggregate).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("GetForUpdate", mock.Anything, bookingAggregate.ID()).Return(bookingAggregate, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByBookingID", mock.Anything, bookingAggregate.ID()).
			Return([]*payment.Payment{paymentAggregate}, nil).Once(),
		bookingRepo.On("Update", mock.Anything, bookingAggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompletePaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, payment.StatusCompleted, paymentAggregate.Status())
	assert.Equal(t, "400.00 USD", bookingAggregate.PaidAmount().String())
	coverage, err := bookingAggregate.Coverage()
	require.NoError(t, err)
	assert.Equal(t, booking.Partial, coverage)

	paymentRepo.AssertExpectations(t)
	bookingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompletePaymentCommandHandler_Handle_AlreadyCompleted(t *testing.T) {
	ctx := t.Context()
	bookingAggregate := testBooking(t, "2150.00")
	paymentAggregate := testPayment(t, bookingAggregate.ID(), "400.00")
	require.NoError(t, paymentAggregate.Complete(time.Now().UTC()))
	cmd, err := commands.NewCompletePaymentCommand(paymentAggregate.ID())
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("Get", mock.Anything, paymentAggregate.ID()).Return(paymentAggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompletePaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)

	paymentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRefundPaymentCommandHandler_Handle_PartialRefundRecomputes(t *testing.T) {
	ctx := t.Context()
	bookingAggregate := testBooking(t, "2150.00")
	paymentAggregate := testPayment(t, bookingAggregate.ID(), "400.00")
	require.NoError(t, paymentAggregate.Complete(time.Now().UTC()))

	cmd, err := commands.NewRefundPaymentCommand(paymentAggregate.ID(), usd(t, "150.00"))
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("Get", mock.Anything, paymentAggregate.ID()).Return(paymentAggregate, nil).Once(),
		paymentRepo.On("Update", mock.Anything, paymentAggregate).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("GetForUpdate", mock.Anything, bookingAggregate.ID()).Return(bookingAggregate, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByBookingID", mock.Anything, bookingAggregate.ID()).
			Return([]*payment.Payment{paymentAggregate}, nil).Once(),
		bookingRepo.On("Update", mock.Anything, bookingAggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefundPaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, payment.StatusRefunded, paymentAggregate.Status())
	assert.Equal(t, "250.00 USD", bookingAggregate.PaidAmount().String())

	paymentRepo.AssertExpectations(t)
	bookingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestFailPaymentCommandHandler_Handle_NoLedgerTouch(t *testing.T) {
	ctx := t.Context()
	bookingAggregate := testBooking(t, "2150.00")
	paymentAggregate := testPayment(t, bookingAggregate.ID(), "400.00")
	cmd, err := commands.NewFailPaymentCommand(paymentAggregate.ID(), "card declined")
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("Get", mock.Anything, paymentAggregate.ID()).Return(paymentAggregate, nil).Once(),
		paymentRepo.On("Update", mock.Anything, paymentAggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFailPaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, payment.StatusFailed, paymentAggregate.Status())
	assert.Equal(t, "card declined", paymentAggregate.FailureReason())
	bookingRepo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)

	paymentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
