package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQuoteRepository struct{ mock.Mock }

func (m *MockQuoteRepository) Add(ctx context.Context, aggregate *quote.Quote) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockQuoteRepository) Update(ctx context.Context, aggregate *quote.Quote) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockQuoteRepository) UpdateWithStatusGuard(
	ctx context.Context, aggregate *quote.Quote, expected quote.Status,
) error {
	args := m.Called(ctx, aggregate, expected)
	return args.Error(0)
}

func (m *MockQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quote.Quote), args.Error(1)
}

func (m *MockQuoteRepository) ExpirePending(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

func (m *MockQuoteRepository) NextSequence(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

type MockQuoteUoW struct{ mock.Mock }

func (m *MockQuoteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockQuoteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockQuoteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockQuoteUoW) QuoteRepository() ports.QuoteRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRepository)
}

type MockQuoteUoWFactory struct{ mock.Mock }

func (m *MockQuoteUoWFactory) Create() commands.QuoteUoW {
	args := m.Called()
	return args.Get(0).(commands.QuoteUoW)
}

func usd(t *testing.T, amount string) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoneyFromString(amount, kernel.DefaultCurrency)
	require.NoError(t, err)
	return money
}

func testVehicle(t *testing.T) quote.VehicleSnapshot {
	t.Helper()
	vehicle, err := quote.NewVehicleSnapshot("Toyota", "Land Cruiser", 2021, 490, 198, 188)
	require.NoError(t, err)
	return vehicle
}

func validCreateQuoteCommand(t *testing.T) commands.CreateQuoteCommand {
	t.Helper()
	fee, err := quote.NewFee("ocean freight", usd(t, "150.00"))
	require.NoError(t, err)

	cmd, err := commands.NewCreateQuoteCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		testVehicle(t),
		usd(t, "2000.00"),
		[]quote.Fee{fee},
		time.Time{},
		kernel.NewOperatorActor(kernel.NewUUID()),
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateQuoteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateQuoteCommand(t)

	repo := new(MockQuoteRepository)
	uow := new(MockQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(repo).Once(),
		repo.On("NextSequence", mock.Anything, mock.AnythingOfType("time.Time")).Return(7, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*quote.Quote")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateQuoteCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateQuoteCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateQuoteCommand{} // not constructed properly
	factory := new(MockQuoteUoWFactory)
	h := commands.NewCreateQuoteCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateQuoteCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateQuoteCommand(t)

	repo := new(MockQuoteRepository)
	uow := new(MockQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(repo).Once(),
		repo.On("NextSequence", mock.Anything, mock.AnythingOfType("time.Time")).Return(7, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*quote.Quote")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateQuoteCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateQuoteCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateQuoteCommand(t)

	repo := new(MockQuoteRepository)
	uow := new(MockQuoteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(repo).Once(),
		repo.On("NextSequence", mock.Anything, mock.AnythingOfType("time.Time")).Return(7, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*quote.Quote")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateQuoteCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
