package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"shipping/cmd"
	httpadapter "shipping/internal/adapters/in/http"
	"shipping/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateExpireQuotesCommandHandler(),
		app.CreateGetExpiringDocumentsQueryHandler(),
		configs.DocumentExpiryHorizonDays,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                  goDotEnvVariable("HTTP_PORT"),
		DBHost:                    goDotEnvVariable("DB_HOST"),
		DBPort:                    goDotEnvVariable("DB_PORT"),
		DBUser:                    goDotEnvVariable("DB_USER"),
		DBPassword:                goDotEnvVariable("DB_PASSWORD"),
		DBName:                    goDotEnvVariable("DB_NAME"),
		DBSslMode:                 goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:                 goDotEnvVariable("KAFKA_HOST"),
		KafkaNotificationsTopic:   goDotEnvVariable("KAFKA_NOTIFICATIONS_TOPIC"),
		DocumentExpiryHorizonDays: intEnvVariable("DOCUMENT_EXPIRY_HORIZON_DAYS", jobs.DefaultExpiryHorizonDays),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func intEnvVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateQuote:         app.CreateCreateQuoteCommandHandler(),
		ApproveQuote:        app.CreateApproveQuoteCommandHandler(),
		RejectQuote:         app.CreateRejectQuoteCommandHandler(),
		ExtendQuoteValidity: app.CreateExtendQuoteValidityCommandHandler(),
		UpdateQuotePricing:  app.CreateUpdateQuotePricingCommandHandler(),
		ConvertQuote:        app.CreateConvertQuoteCommandHandler(),

		CreateBooking:       app.CreateCreateBookingCommandHandler(),
		CancelBooking:       app.CreateCancelBookingCommandHandler(),
		UpdateBookingStatus: app.CreateUpdateBookingStatusCommandHandler(),

		CreateShipment:         app.CreateCreateShipmentCommandHandler(),
		UpdateShipmentStatus:   app.CreateUpdateShipmentStatusCommandHandler(),
		UpdateShipmentLocation: app.CreateUpdateShipmentLocationCommandHandler(),
		UpdateShipmentArrival:  app.CreateUpdateShipmentArrivalCommandHandler(),

		UploadDocument:      app.CreateUploadDocumentCommandHandler(),
		ReviewDocument:      app.CreateReviewDocumentCommandHandler(),
		ResubmitDocument:    app.CreateResubmitDocumentCommandHandler(),
		BulkReviewDocuments: app.CreateBulkReviewDocumentsCommandHandler(),

		RecordPayment:   app.CreateRecordPaymentCommandHandler(),
		CompletePayment: app.CreateCompletePaymentCommandHandler(),
		FailPayment:     app.CreateFailPaymentCommandHandler(),
		CancelPayment:   app.CreateCancelPaymentCommandHandler(),
		RetryPayment:    app.CreateRetryPaymentCommandHandler(),
		RefundPayment:   app.CreateRefundPaymentCommandHandler(),

		GetPendingQuotes:     app.CreateGetPendingQuotesQueryHandler(),
		GetBookingReadiness:  app.CreateGetBookingReadinessQueryHandler(),
		GetShipmentTracking:  app.CreateGetShipmentTrackingQueryHandler(),
		GetExpiringDocuments: app.CreateGetExpiringDocumentsQueryHandler(),
	})

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
