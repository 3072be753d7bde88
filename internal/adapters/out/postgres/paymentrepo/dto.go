// Package paymentrepo provides data transfer objects and mapping functions for payment persistence.
// This package implements the repository pattern for the payment domain aggregate, handling
// the conversion between domain entities and database representations.
package paymentrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payment aggregates.
type PaymentDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Reference      string          `gorm:"type:varchar(16);uniqueIndex;not null"`
	BookingID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null"`
	Amount         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	RefundedAmount decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Currency       string          `gorm:"type:varchar(3);not null"`
	Method         int             `gorm:"type:int;not null"`
	Status         int             `gorm:"type:int;not null;index"`
	FailureReason  string          `gorm:"type:text"`
	PaymentDate    *time.Time
	RefundedAt     *time.Time
	RecordedByKind int       `gorm:"type:smallint;not null"`
	RecordedByID   uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:             aggregate.ID().Bytes(),
		Reference:      aggregate.Reference(),
		BookingID:      aggregate.BookingID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		Amount:         aggregate.Amount().Amount(),
		RefundedAmount: aggregate.RefundedAmount().Amount(),
		Currency:       string(aggregate.Amount().Currency()),
		Method:         int(aggregate.Method()),
		Status:         int(aggregate.Status()),
		FailureReason:  aggregate.FailureReason(),
		PaymentDate:    aggregate.PaymentDate(),
		RefundedAt:     aggregate.RefundedAt(),
		RecordedByKind: int(aggregate.RecordedBy().Kind()),
		RecordedByID:   aggregate.RecordedBy().ID().Bytes(),
	}
}

// toDomain converts a database DTO to a payment domain aggregate using RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bookingID, err := kernel.UUIDFromBytes(dto.BookingID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	currency := kernel.Currency(dto.Currency)
	amount, err := kernel.NewMoney(dto.Amount, currency)
	if err != nil {
		return nil, err
	}
	refundedAmount, err := kernel.NewMoney(dto.RefundedAmount, currency)
	if err != nil {
		return nil, err
	}

	recordedByID, err := kernel.UUIDFromBytes(dto.RecordedByID[:])
	if err != nil {
		return nil, err
	}
	recordedBy, err := kernel.NewActor(kernel.ActorKind(dto.RecordedByKind), recordedByID)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		dto.Reference,
		bookingID,
		customerID,
		amount,
		refundedAmount,
		payment.Method(dto.Method),
		payment.Status(dto.Status),
		dto.FailureReason,
		dto.PaymentDate,
		dto.RefundedAt,
		recordedBy,
	)
}
