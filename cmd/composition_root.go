package cmd

import (
	"shipping/internal/adapters/out/kafka"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	checklist  services.DocumentChecklist
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	// nil selects the default required document set, which always validates.
	checklist, _ := services.NewDocumentChecklist(nil)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   kafka.NewNotifier(configs.KafkaHost, configs.KafkaNotificationsTopic),
		checklist:  checklist,
	}
}

func (c *CompositionRoot) quoteUoWFactory() commands.QuoteUoWFactory {
	return FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) bookingUoWFactory() commands.BookingUoWFactory {
	return FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) conversionUoWFactory() commands.ConversionUoWFactory {
	return FuncConversionUoWFactory(func() commands.ConversionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) documentUoWFactory() commands.DocumentUoWFactory {
	return FuncDocumentUoWFactory(func() commands.DocumentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ledgerUoWFactory() commands.LedgerUoWFactory {
	return FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateQuoteCommandHandler() commands.CreateQuoteCommandHandler {
	return commands.NewCreateQuoteCommandHandler(c.quoteUoWFactory())
}

func (c *CompositionRoot) CreateApproveQuoteCommandHandler() commands.ApproveQuoteCommandHandler {
	return commands.NewApproveQuoteCommandHandler(c.quoteUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRejectQuoteCommandHandler() commands.RejectQuoteCommandHandler {
	return commands.NewRejectQuoteCommandHandler(c.quoteUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateExtendQuoteValidityCommandHandler() commands.ExtendQuoteValidityCommandHandler {
	return commands.NewExtendQuoteValidityCommandHandler(c.quoteUoWFactory())
}

func (c *CompositionRoot) CreateUpdateQuotePricingCommandHandler() commands.UpdateQuotePricingCommandHandler {
	return commands.NewUpdateQuotePricingCommandHandler(c.quoteUoWFactory())
}

func (c *CompositionRoot) CreateConvertQuoteCommandHandler() commands.ConvertQuoteCommandHandler {
	return commands.NewConvertQuoteCommandHandler(c.conversionUoWFactory())
}

func (c *CompositionRoot) CreateExpireQuotesCommandHandler() commands.ExpireQuotesCommandHandler {
	return commands.NewExpireQuotesCommandHandler(c.quoteUoWFactory())
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	return commands.NewCreateBookingCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateCancelBookingCommandHandler() commands.CancelBookingCommandHandler {
	return commands.NewCancelBookingCommandHandler(c.bookingUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateUpdateBookingStatusCommandHandler() commands.UpdateBookingStatusCommandHandler {
	return commands.NewUpdateBookingStatusCommandHandler(c.bookingUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateShipmentLocationCommandHandler() commands.UpdateShipmentLocationCommandHandler {
	return commands.NewUpdateShipmentLocationCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateShipmentArrivalCommandHandler() commands.UpdateShipmentArrivalCommandHandler {
	return commands.NewUpdateShipmentArrivalCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateUploadDocumentCommandHandler() commands.UploadDocumentCommandHandler {
	return commands.NewUploadDocumentCommandHandler(c.documentUoWFactory())
}

func (c *CompositionRoot) CreateReviewDocumentCommandHandler() commands.ReviewDocumentCommandHandler {
	return commands.NewReviewDocumentCommandHandler(c.documentUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateResubmitDocumentCommandHandler() commands.ResubmitDocumentCommandHandler {
	return commands.NewResubmitDocumentCommandHandler(c.documentUoWFactory())
}

func (c *CompositionRoot) CreateBulkReviewDocumentsCommandHandler() commands.BulkReviewDocumentsCommandHandler {
	return commands.NewBulkReviewDocumentsCommandHandler(c.documentUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateCompletePaymentCommandHandler() commands.CompletePaymentCommandHandler {
	return commands.NewCompletePaymentCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateFailPaymentCommandHandler() commands.FailPaymentCommandHandler {
	return commands.NewFailPaymentCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateCancelPaymentCommandHandler() commands.CancelPaymentCommandHandler {
	return commands.NewCancelPaymentCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateRetryPaymentCommandHandler() commands.RetryPaymentCommandHandler {
	return commands.NewRetryPaymentCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateRefundPaymentCommandHandler() commands.RefundPaymentCommandHandler {
	return commands.NewRefundPaymentCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateGetPendingQuotesQueryHandler() queries.GetPendingQuotesQueryHandler {
	return queries.NewGetPendingQuotesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBookingReadinessQueryHandler() queries.GetBookingReadinessQueryHandler {
	return queries.NewGetBookingReadinessQueryHandler(c.gormDB, c.checklist)
}

func (c *CompositionRoot) CreateGetShipmentTrackingQueryHandler() queries.GetShipmentTrackingQueryHandler {
	return queries.NewGetShipmentTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetExpiringDocumentsQueryHandler() queries.GetExpiringDocumentsQueryHandler {
	return queries.NewGetExpiringDocumentsQueryHandler(c.gormDB)
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncConversionUoWFactory func() commands.ConversionUoW

func (f FuncConversionUoWFactory) Create() commands.ConversionUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncDocumentUoWFactory func() commands.DocumentUoW

func (f FuncDocumentUoWFactory) Create() commands.DocumentUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}
