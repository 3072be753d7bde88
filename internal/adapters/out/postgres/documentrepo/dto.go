// Package documentrepo provides data transfer objects and mapping functions for document persistence.
// This package implements the repository pattern for the document domain aggregate, handling
// the conversion between domain entities and database representations.
package documentrepo

import (
	"time"

	"shipping/internal/core/domain/model/document"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DocumentDTO represents the database structure for persisting document aggregates.
type DocumentDTO struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey"`
	BookingID        uuid.UUID   `gorm:"type:uuid;not null;index"`
	CustomerID       uuid.UUID   `gorm:"type:uuid;not null;index"`
	DocType          int         `gorm:"type:int;not null"`
	File             FileMetaDTO `gorm:"embedded;embeddedPrefix:file_"`
	Status           int         `gorm:"type:int;not null;index"`
	RejectionReason  string      `gorm:"type:text"`
	VerificationNote string      `gorm:"type:text"`
	ExpiryDate       *time.Time  `gorm:"index"`
	UploadedAt       time.Time   `gorm:"not null"`
	VerifiedByKind   *int        `gorm:"type:smallint"`
	VerifiedByID     *uuid.UUID  `gorm:"type:uuid"`
	VerifiedAt       *time.Time
}

// TableName specifies the database table name for document entities.
func (DocumentDTO) TableName() string {
	return "documents"
}

// FileMetaDTO represents the embedded upload metadata within the document table.
type FileMetaDTO struct {
	Name        string `gorm:"type:varchar(256);not null"`
	StoragePath string `gorm:"type:varchar(512);not null"`
	SizeBytes   int64  `gorm:"type:bigint;not null"`
	MimeType    string `gorm:"type:varchar(128);not null"`
}

// fromDomain converts a document domain aggregate to its database representation.
func fromDomain(aggregate *document.Document) DocumentDTO {
	var verifiedByKind *int
	var verifiedByID *uuid.UUID
	if by := aggregate.VerifiedBy(); by != nil {
		kind := int(by.Kind())
		id := by.ID().Bytes()
		verifiedByKind = &kind
		verifiedByID = &id
	}

	file := aggregate.File()
	return DocumentDTO{
		ID:         aggregate.ID().Bytes(),
		BookingID:  aggregate.BookingID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		DocType:    int(aggregate.Type()),
		File: FileMetaDTO{
			Name:        file.FileName(),
			StoragePath: file.StoragePath(),
			SizeBytes:   file.SizeBytes(),
			MimeType:    file.MimeType(),
		},
		Status:           int(aggregate.Status()),
		RejectionReason:  aggregate.RejectionReason(),
		VerificationNote: aggregate.VerificationNote(),
		ExpiryDate:       aggregate.ExpiryDate(),
		UploadedAt:       aggregate.UploadedAt(),
		VerifiedByKind:   verifiedByKind,
		VerifiedByID:     verifiedByID,
		VerifiedAt:       aggregate.VerifiedAt(),
	}
}

// toDomain converts a database DTO to a document domain aggregate using RestoreDocument.
func toDomain(dto DocumentDTO) (*document.Document, error) {
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

	file, err := document.NewFileMeta(dto.File.Name, dto.File.StoragePath, dto.File.SizeBytes, dto.File.MimeType)
	if err != nil {
		return nil, err
	}

	var verifiedBy *kernel.Actor
	if dto.VerifiedByKind != nil && dto.VerifiedByID != nil {
		verifiedByID, actorErr := kernel.UUIDFromBytes((*dto.VerifiedByID)[:])
		if actorErr != nil {
			return nil, actorErr
		}
		actor, actorErr := kernel.NewActor(kernel.ActorKind(*dto.VerifiedByKind), verifiedByID)
		if actorErr != nil {
			return nil, actorErr
		}
		verifiedBy = &actor
	}

	return document.RestoreDocument(
		id,
		bookingID,
		customerID,
		document.Type(dto.DocType),
		file,
		document.Status(dto.Status),
		dto.RejectionReason,
		dto.VerificationNote,
		dto.ExpiryDate,
		dto.UploadedAt,
		verifiedBy,
		dto.VerifiedAt,
	)
}
