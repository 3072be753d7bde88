// Package bookingrepo provides data transfer objects and mapping functions for booking persistence.
// This package implements the repository pattern for the booking domain aggregate, handling
// the conversion between domain entities and database representations.
package bookingrepo

import (
	"time"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingDTO represents the database structure for persisting booking aggregates.
// paid_amount is owned by the payment ledger recomputation; no other write
// path touches it.
type BookingDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Reference          string          `gorm:"type:varchar(16);uniqueIndex;not null"`
	CustomerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	QuoteID            *uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	VehicleID          uuid.UUID       `gorm:"type:uuid;not null"`
	RouteID            uuid.UUID       `gorm:"type:uuid;not null"`
	Status             int             `gorm:"type:int;not null;index"`
	TotalAmount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PaidAmount         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Currency           string          `gorm:"type:varchar(3);not null"`
	Recipient          RecipientDTO    `gorm:"embedded;embeddedPrefix:recipient_"`
	PickupDate         *time.Time
	EstimatedDelivery  *time.Time
	ActualDelivery     *time.Time
	CancellationReason string    `gorm:"type:text"`
	CreatedByKind      int       `gorm:"type:smallint;not null"`
	CreatedByID        uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName specifies the database table name for booking entities.
func (BookingDTO) TableName() string {
	return "bookings"
}

// RecipientDTO represents the embedded destination contact block within the
// booking table.
type RecipientDTO struct {
	Name        string `gorm:"type:varchar(128);not null"`
	Phone       string `gorm:"type:varchar(32);not null"`
	Email       string `gorm:"type:varchar(128)"`
	AddressLine string `gorm:"type:varchar(256);not null"`
	City        string `gorm:"type:varchar(64)"`
	Country     string `gorm:"type:varchar(2);not null"`
}

// fromDomain converts a booking domain aggregate to its database representation.
func fromDomain(aggregate *booking.Booking) BookingDTO {
	var quoteID *uuid.UUID
	if id := aggregate.QuoteID(); id != nil {
		raw := id.Bytes()
		quoteID = &raw
	}

	recipient := aggregate.Recipient()
	return BookingDTO{
		ID:          aggregate.ID().Bytes(),
		Reference:   aggregate.Reference(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		QuoteID:     quoteID,
		VehicleID:   aggregate.VehicleID().Bytes(),
		RouteID:     aggregate.RouteID().Bytes(),
		Status:      int(aggregate.Status()),
		TotalAmount: aggregate.TotalAmount().Amount(),
		PaidAmount:  aggregate.PaidAmount().Amount(),
		Currency:    string(aggregate.Currency()),
		Recipient: RecipientDTO{
			Name:        recipient.Name(),
			Phone:       recipient.Phone(),
			Email:       recipient.Email(),
			AddressLine: recipient.AddressLine(),
			City:        recipient.City(),
			Country:     recipient.Country(),
		},
		PickupDate:         aggregate.PickupDate(),
		EstimatedDelivery:  aggregate.EstimatedDelivery(),
		ActualDelivery:     aggregate.ActualDelivery(),
		CancellationReason: aggregate.CancellationReason(),
		CreatedByKind:      int(aggregate.CreatedBy().Kind()),
		CreatedByID:        aggregate.CreatedBy().ID().Bytes(),
	}
}

// toDomain converts a database DTO to a booking domain aggregate using RestoreBooking.
func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var quoteID *kernel.UUID
	if dto.QuoteID != nil {
		qID, quoteErr := kernel.UUIDFromBytes((*dto.QuoteID)[:])
		if quoteErr != nil {
			return nil, quoteErr
		}
		quoteID = &qID
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}

	currency := kernel.Currency(dto.Currency)
	totalAmount, err := kernel.NewMoney(dto.TotalAmount, currency)
	if err != nil {
		return nil, err
	}
	paidAmount, err := kernel.NewMoney(dto.PaidAmount, currency)
	if err != nil {
		return nil, err
	}

	recipient, err := booking.NewRecipient(
		dto.Recipient.Name,
		dto.Recipient.Phone,
		dto.Recipient.Email,
		dto.Recipient.AddressLine,
		dto.Recipient.City,
		dto.Recipient.Country,
	)
	if err != nil {
		return nil, err
	}

	createdByID, err := kernel.UUIDFromBytes(dto.CreatedByID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.NewActor(kernel.ActorKind(dto.CreatedByKind), createdByID)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(
		id,
		dto.Reference,
		customerID,
		quoteID,
		vehicleID,
		routeID,
		booking.Status(dto.Status),
		totalAmount,
		paidAmount,
		recipient,
		dto.PickupDate,
		dto.EstimatedDelivery,
		dto.ActualDelivery,
		dto.CancellationReason,
		createdBy,
	)
}
