package commands_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, aggregate *booking.Booking) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByQuoteID(ctx context.Context, quoteID kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) NextSequence(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

type MockConversionUoW struct{ mock.Mock }

func (m *MockConversionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockConversionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockConversionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockConversionUoW) QuoteRepository() ports.QuoteRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRepository)
}

func (m *MockConversionUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}

type MockConversionUoWFactory struct{ mock.Mock }

func (m *MockConversionUoWFactory) Create() commands.ConversionUoW {
	args := m.Called()
	return args.Get(0).(commands.ConversionUoW)
}

func testRecipient(t *testing.T) booking.Recipient {
	t.Helper()
	recipient, err := booking.NewRecipient(
		"Amina Diallo", "+221770000000", "amina@example.sn", "12 Rue Carnot", "Dakar", "SN")
	require.NoError(t, err)
	return recipient
}

func quoteInStatus(t *testing.T, approved bool) *quote.Quote {
	t.Helper()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	operator := kernel.NewOperatorActor(kernel.NewUUID())

	q, err := quote.NewQuote(
		kernel.NewUUID(),
		quote.NewReference(now, 1),
		kernel.NewUUID(),
		kernel.NewUUID(),
		testVehicle(t),
		usd(t, "2000.00"),
		nil,
		time.Time{},
		operator,
		now,
	)
	require.NoError(t, err)

	if approved {
		require.NoError(t, q.Approve(operator, "", now))
	}
	return q
}

func validConvertQuoteCommand(t *testing.T, quoteID kernel.UUID) commands.ConvertQuoteCommand {
	t.Helper()
	cmd, err := commands.NewConvertQuoteCommand(
		quoteID,
		kernel.NewUUID(),
		kernel.NewUUID(),
		testRecipient(t),
		nil,
		nil,
		kernel.NewOperatorActor(kernel.NewUUID()),
	)
	require.NoError(t, err)
	return cmd
}

func TestConvertQuoteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	approvedQuote := quoteInStatus(t, true)
	cmd := validConvertQuoteCommand(t, approvedQuote.ID())

	quoteRepo := new(MockQuoteRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockConversionUoW)

	var created *booking.Booking
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(quoteRepo).Once(),
		quoteRepo.On("Get", mock.Anything, approvedQuote.ID()).Return(approvedQuote, nil).Once(),
		quoteRepo.On("UpdateWithStatusGuard", mock.Anything, approvedQuote, quote.Approved).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("NextSequence", mock.Anything, mock.AnythingOfType("time.Time")).Return(3, nil).Once(),
		bookingRepo.On("Add", mock.Anything, mock.AnythingOfType("*booking.Booking")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*booking.Booking) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConversionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConvertQuoteCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, quote.Converted, approvedQuote.Status())
	require.NotNil(t, created)
	require.NotNil(t, created.QuoteID())
	assert.True(t, created.QuoteID().IsEqual(approvedQuote.ID()))
	assert.True(t, created.TotalAmount().IsEqual(approvedQuote.TotalAmount()))
	assert.Equal(t, approvedQuote.CustomerID(), created.CustomerID())
	assert.Equal(t, booking.Pending, created.Status())

	quoteRepo.AssertExpectations(t)
	bookingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestConvertQuoteCommandHandler_Handle_GuardConflictRollsBack(t *testing.T) {
	ctx := t.Context()
	approvedQuote := quoteInStatus(t, true)
	cmd := validConvertQuoteCommand(t, approvedQuote.ID())

	quoteRepo := new(MockQuoteRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockConversionUoW)
	conflict := errs.NewVersionConflictError("quote status", approvedQuote.ID())
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(quoteRepo).Once(),
		quoteRepo.On("Get", mock.Anything, approvedQuote.ID()).Return(approvedQuote, nil).Once(),
		quoteRepo.On("UpdateWithStatusGuard", mock.Anything, approvedQuote, quote.Approved).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConversionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConvertQuoteCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVersionConflict)

	// The losing transaction never touches the booking table.
	bookingRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	quoteRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestConvertQuoteCommandHandler_Handle_PendingQuoteRefused(t *testing.T) {
	ctx := t.Context()
	pendingQuote := quoteInStatus(t, false)
	cmd := validConvertQuoteCommand(t, pendingQuote.ID())

	quoteRepo := new(MockQuoteRepository)
	uow := new(MockConversionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(quoteRepo).Once(),
		quoteRepo.On("Get", mock.Anything, pendingQuote.ID()).Return(pendingQuote, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConversionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConvertQuoteCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, quote.Pending, pendingQuote.Status())

	quoteRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
