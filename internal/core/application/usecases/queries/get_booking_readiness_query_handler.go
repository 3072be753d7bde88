package queries

import (
	"context"
	"database/sql"
	"errors"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/document"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetBookingReadinessQueryHandler assembles the booking readiness view from
// the booking row and its documents. Coverage and checklist evaluation go
// through the domain so the read side shares one definition with the
// aggregates.
type GetBookingReadinessQueryHandler struct {
	db        *gorm.DB
	checklist services.DocumentChecklist
}

// NewGetBookingReadinessQueryHandler creates a handler for readiness queries
// evaluating against the given checklist service.
func NewGetBookingReadinessQueryHandler(
	db *gorm.DB,
	checklist services.DocumentChecklist,
) GetBookingReadinessQueryHandler {
	return GetBookingReadinessQueryHandler{db: db, checklist: checklist}
}

// Handle executes the query to assemble the readiness view for one booking.
// Returns an ObjectNotFoundError when the booking does not exist.
func (h GetBookingReadinessQueryHandler) Handle(
	ctx context.Context,
	query GetBookingReadinessQuery,
) (GetBookingReadinessQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBookingReadinessQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			status,
			total_amount,
			paid_amount,
			currency
		FROM bookings
		WHERE id = ?
	`, query.BookingID().Bytes()).Row()

	var id uuid.UUID
	var reference, currency string
	var status int
	var totalAmount, paidAmount decimal.Decimal

	err := row.Scan(&id, &reference, &status, &totalAmount, &paidAmount, &currency)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetBookingReadinessQueryResponse{},
				errs.NewObjectNotFoundError("booking", query.BookingID().String())
		}
		return GetBookingReadinessQueryResponse{}, err
	}

	bookingID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetBookingReadinessQueryResponse{}, err
	}

	total, err := kernel.NewMoney(totalAmount, kernel.Currency(currency))
	if err != nil {
		return GetBookingReadinessQueryResponse{}, err
	}
	paid, err := kernel.NewMoney(paidAmount, kernel.Currency(currency))
	if err != nil {
		return GetBookingReadinessQueryResponse{}, err
	}

	coverage, err := booking.DeriveCoverage(paid, total)
	if err != nil {
		return GetBookingReadinessQueryResponse{}, err
	}

	approved, err := h.approvedTypes(ctx, query.BookingID())
	if err != nil {
		return GetBookingReadinessQueryResponse{}, err
	}

	response := GetBookingReadinessQueryResponse{
		BookingID:         bookingID,
		Reference:         reference,
		Status:            booking.Status(status).String(),
		TotalAmount:       total,
		PaidAmount:        paid,
		Coverage:          coverage.String(),
		Checklist:         make([]ChecklistItemResponse, 0, len(h.checklist.RequiredTypes())),
		DocumentsComplete: true,
	}
	for _, docType := range h.checklist.RequiredTypes() {
		satisfied := approved[docType]
		response.Checklist = append(response.Checklist, ChecklistItemResponse{
			DocType:   docType.String(),
			Satisfied: satisfied,
		})
		if !satisfied {
			response.DocumentsComplete = false
		}
	}
	response.Ready = response.DocumentsComplete && coverage == booking.Paid

	return response, nil
}

// approvedTypes returns the set of document types with at least one approved
// document for the booking.
func (h GetBookingReadinessQueryHandler) approvedTypes(
	ctx context.Context,
	bookingID kernel.UUID,
) (map[document.Type]bool, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT doc_type
		FROM documents
		WHERE booking_id = ? AND status = ?
	`, bookingID.Bytes(), int(document.StatusApproved)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	approved := make(map[document.Type]bool)
	for rows.Next() {
		var docType int
		if err = rows.Scan(&docType); err != nil {
			return nil, err
		}
		approved[document.Type(docType)] = true
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return approved, nil
}
