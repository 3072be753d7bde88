package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "shipping/internal/adapters/out/postgres"
	"shipping/internal/adapters/out/postgres/bookingrepo"
	"shipping/internal/adapters/out/postgres/documentrepo"
	"shipping/internal/adapters/out/postgres/paymentrepo"
	"shipping/internal/adapters/out/postgres/quoterepo"
	"shipping/internal/adapters/out/postgres/refseq"
	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
	"shipping/internal/core/domain/model/quote"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based unit of work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container, connects, and migrates
// the schema used by the repositories.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&quoterepo.QuoteDTO{},
		&quoterepo.QuoteFeeDTO{},
		&bookingrepo.BookingDTO{},
		&shipmentrepo.ShipmentDTO{},
		&documentrepo.DocumentDTO{},
		&paymentrepo.PaymentDTO{},
		&refseq.CounterDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE quotes, quote_fees, bookings, shipments, documents, payments, reference_counters").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated unit of
// work instances that each expose all repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.QuoteRepository())
	suite.NotNil(uow1.BookingRepository())
	suite.NotNil(uow1.ShipmentRepository())
	suite.NotNil(uow1.DocumentRepository())
	suite.NotNil(uow1.PaymentRepository())
	suite.NotNil(uow2.QuoteRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, repeated begin, commit,
// and rollback behave as a well-formed transaction boundary.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies commit and rollback fail without
// an active transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_QuoteRoundTrip verifies a quote with fee lines survives a
// full persistence round trip, fees in position order.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_QuoteRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testQuote := suite.createTestQuote()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.QuoteRepository().Add(ctx, testQuote)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().QuoteRepository().Get(ctx, testQuote.ID())
	suite.Require().NoError(err)
	suite.Equal(testQuote.Reference(), retrieved.Reference())
	suite.True(testQuote.TotalAmount().IsEqual(retrieved.TotalAmount()))

	fees := retrieved.Fees()
	suite.Require().Len(fees, 2)
	suite.Equal("ocean freight", fees[0].Name())
	suite.Equal("port handling", fees[1].Name())
}

// TestUnitOfWork_ConversionAtomicity verifies the quote flip and the booking
// insert share one transaction: rollback discards both, commit keeps both.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConversionAtomicity() {
	ctx := context.Background()
	now := time.Now().UTC()

	testQuote := suite.createApprovedTestQuote(now)
	seedUow := suite.factory.Create()
	err := seedUow.QuoteRepository().Add(ctx, testQuote)
	suite.Require().NoError(err)

	convert := func() (*booking.Booking, ports.UnitOfWork) {
		uow := suite.factory.Create()
		suite.Require().NoError(uow.Begin(ctx))

		fetched, getErr := uow.QuoteRepository().Get(ctx, testQuote.ID())
		suite.Require().NoError(getErr)
		suite.Require().NoError(fetched.Convert())
		suite.Require().NoError(
			uow.QuoteRepository().UpdateWithStatusGuard(ctx, fetched, quote.Approved))

		newBooking := suite.createTestBookingFromQuote(fetched, now)
		suite.Require().NoError(uow.BookingRepository().Add(ctx, newBooking))
		return newBooking, uow
	}

	// First attempt rolls back: neither side persists.
	rolledBack, uow := convert()
	suite.Require().NoError(uow.Rollback(ctx))

	retrieved, err := suite.factory.Create().QuoteRepository().Get(ctx, testQuote.ID())
	suite.Require().NoError(err)
	suite.Equal(quote.Approved, retrieved.Status(), "Quote should stay approved after rollback")

	_, err = suite.factory.Create().BookingRepository().Get(ctx, rolledBack.ID())
	suite.Require().Error(err, "Booking should not exist after rollback")

	// Second attempt commits: both sides persist.
	committed, uow := convert()
	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err = suite.factory.Create().QuoteRepository().Get(ctx, testQuote.ID())
	suite.Require().NoError(err)
	suite.Equal(quote.Converted, retrieved.Status())

	byQuote, err := suite.factory.Create().BookingRepository().GetByQuoteID(ctx, testQuote.ID())
	suite.Require().NoError(err)
	suite.True(byQuote.ID().IsEqual(committed.ID()))
}

// TestUnitOfWork_StatusGuardConflict verifies a stale conversion loses the
// race: once the stored status moved on, the guarded update reports a
// version conflict instead of silently double-converting.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StatusGuardConflict() {
	ctx := context.Background()
	now := time.Now().UTC()

	testQuote := suite.createApprovedTestQuote(now)
	seedUow := suite.factory.Create()
	err := seedUow.QuoteRepository().Add(ctx, testQuote)
	suite.Require().NoError(err)

	// Two readers load the approved quote.
	winner, err := suite.factory.Create().QuoteRepository().Get(ctx, testQuote.ID())
	suite.Require().NoError(err)
	loser, err := suite.factory.Create().QuoteRepository().Get(ctx, testQuote.ID())
	suite.Require().NoError(err)

	winnerUow := suite.factory.Create()
	suite.Require().NoError(winnerUow.Begin(ctx))
	suite.Require().NoError(winner.Convert())
	suite.Require().NoError(
		winnerUow.QuoteRepository().UpdateWithStatusGuard(ctx, winner, quote.Approved))
	suite.Require().NoError(winnerUow.Commit(ctx))

	loserUow := suite.factory.Create()
	suite.Require().NoError(loserUow.Begin(ctx))
	suite.Require().NoError(loser.Convert())
	err = loserUow.QuoteRepository().UpdateWithStatusGuard(ctx, loser, quote.Approved)
	suite.Require().ErrorIs(err, errs.ErrVersionConflict)
	suite.Require().NoError(loserUow.Rollback(ctx))
}

// TestUnitOfWork_PaymentLedgerPersistence verifies a completed payment and
// the recomputed booking paid amount persist together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PaymentLedgerPersistence() {
	ctx := context.Background()
	now := time.Now().UTC()

	testBooking := suite.createTestBooking(now, "2150.00")
	testPayment := suite.createTestPayment(now, testBooking.ID(), "400.00")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BookingRepository().Add(ctx, testBooking))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, testPayment))
	suite.Require().NoError(uow.Commit(ctx))

	// Complete the payment and push the ledger sum onto the booking.
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	fetched, err := uow.PaymentRepository().Get(ctx, testPayment.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(fetched.Complete(now))
	suite.Require().NoError(uow.PaymentRepository().Update(ctx, fetched))

	locked, err := uow.BookingRepository().GetForUpdate(ctx, testBooking.ID())
	suite.Require().NoError(err)

	applied, err := fetched.AppliedAmount()
	suite.Require().NoError(err)
	suite.Require().NoError(locked.ApplyLedgerTotal(applied))
	suite.Require().NoError(uow.BookingRepository().Update(ctx, locked))
	suite.Require().NoError(uow.Commit(ctx))

	retrievedBooking, err := suite.factory.Create().BookingRepository().Get(ctx, testBooking.ID())
	suite.Require().NoError(err)
	suite.Equal("400.00 USD", retrievedBooking.PaidAmount().String())
	coverage, err := retrievedBooking.Coverage()
	suite.Require().NoError(err)
	suite.Equal(booking.Partial, coverage)

	retrievedPayment, err := suite.factory.Create().PaymentRepository().Get(ctx, testPayment.ID())
	suite.Require().NoError(err)
	suite.Equal(payment.StatusCompleted, retrievedPayment.Status())
}

// TestUnitOfWork_NextSequence verifies reference sequences advance per scope
// and scopes count independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_NextSequence() {
	ctx := context.Background()
	now := time.Now().UTC()
	uow := suite.factory.Create()

	first, err := uow.QuoteRepository().NextSequence(ctx, now)
	suite.Require().NoError(err)
	suite.Equal(1, first)

	second, err := uow.QuoteRepository().NextSequence(ctx, now)
	suite.Require().NoError(err)
	suite.Equal(2, second)

	bookingFirst, err := uow.BookingRepository().NextSequence(ctx, now)
	suite.Require().NoError(err)
	suite.Equal(1, bookingFirst, "Booking sequence should not share the quote counter")
}

// TestUnitOfWork_ExpirePendingSweep verifies the expiry sweep flips lapsed
// pending quotes exactly once.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ExpirePendingSweep() {
	ctx := context.Background()

	testQuote := suite.createTestQuote()
	seedUow := suite.factory.Create()
	err := seedUow.QuoteRepository().Add(ctx, testQuote)
	suite.Require().NoError(err)

	afterValidity := testQuote.ValidUntil().Add(time.Hour)

	count, err := suite.factory.Create().QuoteRepository().ExpirePending(ctx, afterValidity)
	suite.Require().NoError(err)
	suite.Equal(1, count)

	count, err = suite.factory.Create().QuoteRepository().ExpirePending(ctx, afterValidity)
	suite.Require().NoError(err)
	suite.Equal(0, count, "Second sweep should find nothing")

	retrieved, err := suite.factory.Create().QuoteRepository().Get(ctx, testQuote.ID())
	suite.Require().NoError(err)
	suite.Equal(quote.Expired, retrieved.Status())
}

// createTestQuote creates a pending quote with two fee lines.
func (suite *UnitOfWorkIntegrationTestSuite) createTestQuote() *quote.Quote {
	now := time.Now().UTC()
	basePrice, err := kernel.NewMoneyFromString("2000.00", kernel.DefaultCurrency)
	suite.Require().NoError(err)

	freight, err := kernel.NewMoneyFromString("150.00", kernel.DefaultCurrency)
	suite.Require().NoError(err)
	freightFee, err := quote.NewFee("ocean freight", freight)
	suite.Require().NoError(err)

	handling, err := kernel.NewMoneyFromString("80.00", kernel.DefaultCurrency)
	suite.Require().NoError(err)
	handlingFee, err := quote.NewFee("port handling", handling)
	suite.Require().NoError(err)

	vehicle, err := quote.NewVehicleSnapshot("Toyota", "Land Cruiser", 2021, 490, 198, 188)
	suite.Require().NoError(err)

	q, err := quote.NewQuote(
		kernel.NewUUID(),
		quote.NewReference(now, suite.nextRef()),
		kernel.NewUUID(),
		kernel.NewUUID(),
		vehicle,
		basePrice,
		[]quote.Fee{freightFee, handlingFee},
		time.Time{},
		kernel.NewOperatorActor(kernel.NewUUID()),
		now,
	)
	suite.Require().NoError(err)
	return q
}

// createApprovedTestQuote creates a quote already approved at now.
func (suite *UnitOfWorkIntegrationTestSuite) createApprovedTestQuote(now time.Time) *quote.Quote {
	q := suite.createTestQuote()
	err := q.Approve(kernel.NewOperatorActor(kernel.NewUUID()), "", now)
	suite.Require().NoError(err)
	return q
}

// createTestBooking creates a pending booking with the given total.
func (suite *UnitOfWorkIntegrationTestSuite) createTestBooking(now time.Time, total string) *booking.Booking {
	totalAmount, err := kernel.NewMoneyFromString(total, kernel.DefaultCurrency)
	suite.Require().NoError(err)

	recipient, err := booking.NewRecipient(
		"Amina Diallo", "+221770000000", "amina@example.sn", "12 Rue Carnot", "Dakar", "SN")
	suite.Require().NoError(err)

	b, err := booking.NewBooking(
		kernel.NewUUID(),
		booking.NewReference(now, suite.nextRef()),
		kernel.NewUUID(),
		nil,
		kernel.NewUUID(),
		kernel.NewUUID(),
		totalAmount,
		recipient,
		nil,
		nil,
		kernel.NewOperatorActor(kernel.NewUUID()),
	)
	suite.Require().NoError(err)
	return b
}

// createTestBookingFromQuote creates a booking carrying the quote's total
// and back-reference, as conversion does.
func (suite *UnitOfWorkIntegrationTestSuite) createTestBookingFromQuote(q *quote.Quote, now time.Time) *booking.Booking {
	recipient, err := booking.NewRecipient(
		"Amina Diallo", "+221770000000", "amina@example.sn", "12 Rue Carnot", "Dakar", "SN")
	suite.Require().NoError(err)

	quoteID := q.ID()
	b, err := booking.NewBooking(
		kernel.NewUUID(),
		booking.NewReference(now, suite.nextRef()),
		q.CustomerID(),
		&quoteID,
		kernel.NewUUID(),
		q.RouteID(),
		q.TotalAmount(),
		recipient,
		nil,
		nil,
		kernel.NewOperatorActor(kernel.NewUUID()),
	)
	suite.Require().NoError(err)
	return b
}

// createTestPayment creates a pending payment against the given booking.
func (suite *UnitOfWorkIntegrationTestSuite) createTestPayment(now time.Time, bookingID kernel.UUID, amount string) *payment.Payment {
	money, err := kernel.NewMoneyFromString(amount, kernel.DefaultCurrency)
	suite.Require().NoError(err)

	p, err := payment.NewPayment(
		kernel.NewUUID(),
		payment.NewReference(now, suite.nextRef()),
		bookingID,
		kernel.NewUUID(),
		money,
		payment.MethodBankTransfer,
		kernel.NewOperatorActor(kernel.NewUUID()),
	)
	suite.Require().NoError(err)
	return p
}

var refCounter int

// nextRef hands out distinct sequence numbers so unique reference indexes
// never collide across tests.
func (suite *UnitOfWorkIntegrationTestSuite) nextRef() int {
	refCounter++
	return refCounter
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
