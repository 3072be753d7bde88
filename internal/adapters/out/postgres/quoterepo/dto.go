// Package quoterepo provides data transfer objects and mapping functions for quote persistence.
// This package implements the repository pattern for the quote domain aggregate, handling
// the conversion between domain entities and database representations.
package quoterepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteDTO represents the database structure for persisting quote aggregates.
// The vehicle snapshot is embedded; additional fees live in a child table
// keyed by position so the ordered fee list survives round trips.
type QuoteDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Reference       string          `gorm:"type:varchar(16);uniqueIndex;not null"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	RouteID         uuid.UUID       `gorm:"type:uuid;not null"`
	Vehicle         VehicleDTO      `gorm:"embedded;embeddedPrefix:vehicle_"`
	BasePrice       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Currency        string          `gorm:"type:varchar(3);not null"`
	Status          int             `gorm:"type:int;not null;index"`
	ValidUntil      time.Time       `gorm:"not null;index"`
	RejectionReason string          `gorm:"type:text"`
	Notes           string          `gorm:"type:text"`
	CreatedByKind   int             `gorm:"type:smallint;not null"`
	CreatedByID     uuid.UUID       `gorm:"type:uuid;not null"`
	ApprovedByKind  *int            `gorm:"type:smallint"`
	ApprovedByID    *uuid.UUID      `gorm:"type:uuid"`
	ApprovedAt      *time.Time
	Fees            []QuoteFeeDTO `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for quote entities.
func (QuoteDTO) TableName() string {
	return "quotes"
}

// VehicleDTO represents the embedded vehicle snapshot within the quote table.
type VehicleDTO struct {
	Make     string `gorm:"type:varchar(64);not null"`
	Model    string `gorm:"type:varchar(64);not null"`
	Year     int    `gorm:"type:int;not null"`
	LengthCm int    `gorm:"type:int"`
	WidthCm  int    `gorm:"type:int"`
	HeightCm int    `gorm:"type:int"`
}

// QuoteFeeDTO represents one additional fee line attached to a quote.
// Position preserves the order fees were entered in.
type QuoteFeeDTO struct {
	QuoteID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position int             `gorm:"type:int;primaryKey"`
	Name     string          `gorm:"type:varchar(128);not null"`
	Amount   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// TableName specifies the database table name for quote fee lines.
func (QuoteFeeDTO) TableName() string {
	return "quote_fees"
}

// fromDomain converts a quote domain aggregate to its database representation.
func fromDomain(aggregate *quote.Quote) QuoteDTO {
	quoteID := aggregate.ID().Bytes()

	fees := make([]QuoteFeeDTO, 0, len(aggregate.Fees()))
	for i, fee := range aggregate.Fees() {
		fees = append(fees, QuoteFeeDTO{
			QuoteID:  quoteID,
			Position: i,
			Name:     fee.Name(),
			Amount:   fee.Amount().Amount(),
		})
	}

	var approvedByKind *int
	var approvedByID *uuid.UUID
	if by := aggregate.ApprovedBy(); by != nil {
		kind := int(by.Kind())
		id := by.ID().Bytes()
		approvedByKind = &kind
		approvedByID = &id
	}

	vehicle := aggregate.Vehicle()
	return QuoteDTO{
		ID:         quoteID,
		Reference:  aggregate.Reference(),
		CustomerID: aggregate.CustomerID().Bytes(),
		RouteID:    aggregate.RouteID().Bytes(),
		Vehicle: VehicleDTO{
			Make:     vehicle.Make(),
			Model:    vehicle.Model(),
			Year:     vehicle.Year(),
			LengthCm: vehicle.LengthCm(),
			WidthCm:  vehicle.WidthCm(),
			HeightCm: vehicle.HeightCm(),
		},
		BasePrice:       aggregate.BasePrice().Amount(),
		TotalAmount:     aggregate.TotalAmount().Amount(),
		Currency:        string(aggregate.Currency()),
		Status:          int(aggregate.Status()),
		ValidUntil:      aggregate.ValidUntil(),
		RejectionReason: aggregate.RejectionReason(),
		Notes:           aggregate.Notes(),
		CreatedByKind:   int(aggregate.CreatedBy().Kind()),
		CreatedByID:     aggregate.CreatedBy().ID().Bytes(),
		ApprovedByKind:  approvedByKind,
		ApprovedByID:    approvedByID,
		ApprovedAt:      aggregate.ApprovedAt(),
		Fees:            fees,
	}
}

// toDomain converts a database DTO to a quote domain aggregate.
// Reconstructs the complete aggregate including the ordered fee list using RestoreQuote.
func toDomain(dto QuoteDTO) (*quote.Quote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}

	vehicle, err := quote.NewVehicleSnapshot(
		dto.Vehicle.Make, dto.Vehicle.Model, dto.Vehicle.Year,
		dto.Vehicle.LengthCm, dto.Vehicle.WidthCm, dto.Vehicle.HeightCm)
	if err != nil {
		return nil, err
	}

	currency := kernel.Currency(dto.Currency)
	basePrice, err := kernel.NewMoney(dto.BasePrice, currency)
	if err != nil {
		return nil, err
	}
	totalAmount, err := kernel.NewMoney(dto.TotalAmount, currency)
	if err != nil {
		return nil, err
	}

	fees := make([]quote.Fee, 0, len(dto.Fees))
	for _, feeDto := range dto.Fees {
		amount, feeErr := kernel.NewMoney(feeDto.Amount, currency)
		if feeErr != nil {
			return nil, feeErr
		}
		fee, feeErr := quote.NewFee(feeDto.Name, amount)
		if feeErr != nil {
			return nil, feeErr
		}
		fees = append(fees, fee)
	}

	createdByID, err := kernel.UUIDFromBytes(dto.CreatedByID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.NewActor(kernel.ActorKind(dto.CreatedByKind), createdByID)
	if err != nil {
		return nil, err
	}

	var approvedBy *kernel.Actor
	if dto.ApprovedByKind != nil && dto.ApprovedByID != nil {
		approvedByID, actorErr := kernel.UUIDFromBytes((*dto.ApprovedByID)[:])
		if actorErr != nil {
			return nil, actorErr
		}
		actor, actorErr := kernel.NewActor(kernel.ActorKind(*dto.ApprovedByKind), approvedByID)
		if actorErr != nil {
			return nil, actorErr
		}
		approvedBy = &actor
	}

	return quote.RestoreQuote(
		id,
		dto.Reference,
		customerID,
		routeID,
		vehicle,
		basePrice,
		fees,
		totalAmount,
		quote.Status(dto.Status),
		dto.ValidUntil,
		dto.RejectionReason,
		dto.Notes,
		createdBy,
		approvedBy,
		dto.ApprovedAt,
	)
}
