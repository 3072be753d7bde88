package queries_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/bookingrepo"
	"shipping/internal/adapters/out/postgres/documentrepo"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/document"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetBookingReadinessQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetBookingReadinessQueryHandler
}

func (suite *GetBookingReadinessQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&bookingrepo.BookingDTO{}, &documentrepo.DocumentDTO{})
	suite.Require().NoError(err)

	checklist, err := services.NewDocumentChecklist(nil)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetBookingReadinessQueryHandler(db, checklist)
}

func (suite *GetBookingReadinessQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetBookingReadinessQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE bookings, documents").Error
	suite.Require().NoError(err)
}

func (suite *GetBookingReadinessQueryHandlerTestSuite) TestHandle_NewBooking_NothingSatisfied() {
	testBooking := suite.createBooking("2150.00")
	suite.saveBooking(testBooking)

	query, err := queries.NewGetBookingReadinessQuery(testBooking.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(testBooking.ID().IsEqual(result.BookingID))
	suite.Equal(testBooking.Reference(), result.Reference)
	suite.Equal("pending", result.Status)
	suite.Equal("unpaid", result.Coverage)
	suite.False(result.DocumentsComplete)
	suite.False(result.Ready)

	suite.Require().Len(result.Checklist, 4)
	for _, item := range result.Checklist {
		suite.False(item.Satisfied, "No document type should be satisfied yet")
	}
}

func (suite *GetBookingReadinessQueryHandlerTestSuite) TestHandle_ApprovedDocsAndFullPayment_Ready() {
	now := time.Now().UTC()
	testBooking := suite.createBooking("2150.00")
	suite.Require().NoError(testBooking.ApplyLedgerTotal(suite.usd("2150.00")))
	suite.saveBooking(testBooking)

	for _, docType := range services.DefaultRequiredTypes() {
		suite.saveDocument(suite.createApprovedDocument(testBooking.ID(), docType, now))
	}

	// A pending duplicate must not change the outcome.
	suite.saveDocument(suite.createDocument(testBooking.ID(), document.TypePassport))

	query, err := queries.NewGetBookingReadinessQuery(testBooking.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("paid", result.Coverage)
	suite.True(result.DocumentsComplete)
	suite.True(result.Ready)
	suite.Equal("2150.00 USD", result.PaidAmount.String())
}

func (suite *GetBookingReadinessQueryHandlerTestSuite) TestHandle_PendingDocsDoNotSatisfy() {
	testBooking := suite.createBooking("2150.00")
	suite.Require().NoError(testBooking.ApplyLedgerTotal(suite.usd("500.00")))
	suite.saveBooking(testBooking)

	suite.saveDocument(suite.createDocument(testBooking.ID(), document.TypePassport))

	query, err := queries.NewGetBookingReadinessQuery(testBooking.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("partial", result.Coverage)
	suite.False(result.DocumentsComplete)
	suite.False(result.Ready)

	for _, item := range result.Checklist {
		if item.DocType == "passport" {
			suite.False(item.Satisfied, "Pending document should not satisfy the checklist")
		}
	}
}

func (suite *GetBookingReadinessQueryHandlerTestSuite) TestHandle_UnknownBooking_ReturnsNotFound() {
	query, err := queries.NewGetBookingReadinessQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetBookingReadinessQueryHandlerTestSuite) usd(amount string) kernel.Money {
	money, err := kernel.NewMoneyFromString(amount, kernel.DefaultCurrency)
	suite.Require().NoError(err)
	return money
}

func (suite *GetBookingReadinessQueryHandlerTestSuite) createBooking(total string) *booking.Booking {
	now := time.Now().UTC()

	recipient, err := booking.NewRecipient(
		"Amina Diallo", "+221770000000", "amina@example.sn", "12 Rue Carnot", "Dakar", "SN")
	suite.Require().NoError(err)

	b, err := booking.NewBooking(
		kernel.NewUUID(),
		booking.NewReference(now, 1),
		kernel.NewUUID(),
		nil,
		kernel.NewUUID(),
		kernel.NewUUID(),
		suite.usd(total),
		recipient,
		nil,
		nil,
		kernel.NewOperatorActor(kernel.NewUUID()),
	)
	suite.Require().NoError(err)
	return b
}

func (suite *GetBookingReadinessQueryHandlerTestSuite) createDocument(
	bookingID kernel.UUID,
	docType document.Type,
) *document.Document {
	file, err := document.NewFileMeta("scan.pdf", "uploads/scan.pdf", 102400, "application/pdf")
	suite.Require().NoError(err)

	d, err := document.NewDocument(
		kernel.NewUUID(),
		bookingID,
		kernel.NewUUID(),
		docType,
		file,
		nil,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return d
}

func (suite *GetBookingReadinessQueryHandlerTestSuite) createApprovedDocument(
	bookingID kernel.UUID,
	docType document.Type,
	now time.Time,
) *document.Document {
	d := suite.createDocument(bookingID, docType)
	err := d.Approve(kernel.NewOperatorActor(kernel.NewUUID()), "", now)
	suite.Require().NoError(err)
	return d
}

func (suite *GetBookingReadinessQueryHandlerTestSuite) saveBooking(b *booking.Booking) {
	repo := bookingrepo.NewGormBookingRepository(suite.db, &mockAggregateTracker{})
	err := repo.Add(context.Background(), b)
	suite.Require().NoError(err)
}

func (suite *GetBookingReadinessQueryHandlerTestSuite) saveDocument(d *document.Document) {
	repo := documentrepo.NewGormDocumentRepository(suite.db, &mockAggregateTracker{})
	err := repo.Add(context.Background(), d)
	suite.Require().NoError(err)
}

func TestGetBookingReadinessQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetBookingReadinessQueryHandlerTestSuite))
}
