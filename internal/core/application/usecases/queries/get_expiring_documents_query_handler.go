package queries

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/document"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetExpiringDocumentsQueryHandler retrieves expiring approved documents
// from the database.
type GetExpiringDocumentsQueryHandler struct {
	db *gorm.DB
}

// NewGetExpiringDocumentsQueryHandler creates a handler for expiring
// document queries. Requires a GORM database connection for query execution.
func NewGetExpiringDocumentsQueryHandler(db *gorm.DB) GetExpiringDocumentsQueryHandler {
	return GetExpiringDocumentsQueryHandler{db: db}
}

// Handle executes the query to retrieve approved documents expiring within
// the query's horizon. Results are sorted by expiry date, most urgent first.
func (h GetExpiringDocumentsQueryHandler) Handle(
	ctx context.Context,
	query GetExpiringDocumentsQuery,
) ([]GetExpiringDocumentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	horizon := now.AddDate(0, 0, query.HorizonDays())

	documents := make([]GetExpiringDocumentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			booking_id,
			doc_type,
			file_name,
			expiry_date
		FROM documents
		WHERE status = ? AND expiry_date IS NOT NULL AND expiry_date <= ?
		ORDER BY expiry_date
	`, int(document.StatusApproved), horizon).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var docResp GetExpiringDocumentsQueryResponse
		var id, bookingID uuid.UUID
		var docType int

		err = rows.Scan(
			&id,
			&bookingID,
			&docType,
			&docResp.FileName,
			&docResp.ExpiryDate,
		)
		if err != nil {
			return nil, err
		}

		docID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		docResp.ID = docID

		docBookingID, idErr := kernel.UUIDFromBytes(bookingID[:])
		if idErr != nil {
			return nil, idErr
		}
		docResp.BookingID = docBookingID

		docResp.DocType = document.Type(docType).String()
		docResp.Expired = docResp.ExpiryDate.Before(now)

		documents = append(documents, docResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return documents, nil
}
