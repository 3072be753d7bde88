// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
type ShipmentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber   string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	BookingID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CarrierName      string    `gorm:"type:varchar(128);not null"`
	DeparturePort    string    `gorm:"type:varchar(64);not null"`
	ArrivalPort      string    `gorm:"type:varchar(64);not null"`
	DepartureDate    *time.Time
	EstimatedArrival *time.Time
	ActualArrival    *time.Time
	CurrentLocation  string `gorm:"type:varchar(128)"`
	Status           int    `gorm:"type:int;not null;index"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:               aggregate.ID().Bytes(),
		TrackingNumber:   aggregate.TrackingNumber(),
		BookingID:        aggregate.BookingID().Bytes(),
		CarrierName:      aggregate.CarrierName(),
		DeparturePort:    aggregate.DeparturePort(),
		ArrivalPort:      aggregate.ArrivalPort(),
		DepartureDate:    aggregate.DepartureDate(),
		EstimatedArrival: aggregate.EstimatedArrival(),
		ActualArrival:    aggregate.ActualArrival(),
		CurrentLocation:  aggregate.CurrentLocation(),
		Status:           int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bookingID, err := kernel.UUIDFromBytes(dto.BookingID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		dto.TrackingNumber,
		bookingID,
		dto.CarrierName,
		dto.DeparturePort,
		dto.ArrivalPort,
		dto.DepartureDate,
		dto.EstimatedArrival,
		dto.ActualArrival,
		dto.CurrentLocation,
		shipment.Status(dto.Status),
	)
}
