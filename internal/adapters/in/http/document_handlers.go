package http

import (
	"net/http"
	"strconv"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/document"
	"shipping/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// defaultExpiryHorizonDays bounds the expiring-documents listing when the
// client does not pass a horizon.
const defaultExpiryHorizonDays = 30

// UploadDocumentRequest is the body for POST /api/v1/documents.
type UploadDocumentRequest struct {
	BookingID  string      `json:"booking_id"`
	CustomerID string      `json:"customer_id"`
	DocType    string      `json:"doc_type"`
	File       FileRequest `json:"file"`
	ExpiryDate *time.Time  `json:"expiry_date,omitempty"`
}

// ReviewDocumentRequest is the body for POST /api/v1/documents/:id/review.
// Decision is one of "approve", "reject", or "request_revision".
type ReviewDocumentRequest struct {
	Decision   string `json:"decision"`
	OperatorID string `json:"operator_id"`
	Note       string `json:"note,omitempty"`
}

// ResubmitDocumentRequest is the body for POST /api/v1/documents/:id/resubmit.
type ResubmitDocumentRequest struct {
	File FileRequest `json:"file"`
}

// BulkReviewDocumentsRequest is the body for POST /api/v1/documents/bulk-review.
// Decision is "approve" or "reject".
type BulkReviewDocumentsRequest struct {
	DocumentIDs []string `json:"document_ids"`
	Decision    string   `json:"decision"`
	OperatorID  string   `json:"operator_id"`
	Note        string   `json:"note,omitempty"`
}

// BulkReviewOutcomeResponse reports one document's result within a bulk review.
type BulkReviewOutcomeResponse struct {
	DocumentID string `json:"document_id"`
	Error      string `json:"error,omitempty"`
}

// ExpiringDocumentResponse is one entry of GET /api/v1/documents/expiring.
type ExpiringDocumentResponse struct {
	ID         string    `json:"id"`
	BookingID  string    `json:"booking_id"`
	DocType    string    `json:"doc_type"`
	FileName   string    `json:"file_name"`
	ExpiryDate time.Time `json:"expiry_date"`
	Expired    bool      `json:"expired"`
}

// UploadDocument handles POST /api/v1/documents.
func (s *Server) UploadDocument(ctx echo.Context) error {
	var request UploadDocumentRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	bookingID, err := parseUUID("booking id", request.BookingID)
	if err != nil {
		return respondError(ctx, err)
	}
	customerID, err := parseUUID("customer id", request.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}
	docType, err := document.TypeFromString(request.DocType)
	if err != nil {
		return respondError(ctx, err)
	}
	file, err := request.File.toFileMeta()
	if err != nil {
		return respondError(ctx, err)
	}

	documentID := kernel.NewUUID()
	cmd, err := commands.NewUploadDocumentCommand(
		documentID,
		bookingID,
		customerID,
		docType,
		file,
		request.ExpiryDate,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UploadDocument.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: documentID.String()})
}

// ReviewDocument handles POST /api/v1/documents/:id/review.
func (s *Server) ReviewDocument(ctx echo.Context) error {
	documentID, err := parseUUID("document id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request ReviewDocumentRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	operatorID, err := parseUUID("operator id", request.OperatorID)
	if err != nil {
		return respondError(ctx, err)
	}
	operator := kernel.NewOperatorActor(operatorID)

	var cmd commands.ReviewDocumentCommand
	switch request.Decision {
	case "approve":
		cmd, err = commands.NewApproveDocumentCommand(documentID, operator, request.Note)
	case "reject":
		cmd, err = commands.NewRejectDocumentCommand(documentID, operator, request.Note)
	case "request_revision":
		cmd, err = commands.NewRequestDocumentRevisionCommand(documentID, operator, request.Note)
	default:
		return respondBadRequest(ctx, "Decision must be approve, reject, or request_revision")
	}
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ReviewDocument.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResubmitDocument handles POST /api/v1/documents/:id/resubmit.
func (s *Server) ResubmitDocument(ctx echo.Context) error {
	documentID, err := parseUUID("document id", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request ResubmitDocumentRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	file, err := request.File.toFileMeta()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewResubmitDocumentCommand(documentID, file)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ResubmitDocument.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BulkReviewDocuments handles POST /api/v1/documents/bulk-review. Each
// document is reviewed independently; the response reports per-document
// outcomes with HTTP 207 when any of them failed.
func (s *Server) BulkReviewDocuments(ctx echo.Context) error {
	var request BulkReviewDocumentsRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	documentIDs := make([]kernel.UUID, 0, len(request.DocumentIDs))
	for _, raw := range request.DocumentIDs {
		id, err := parseUUID("document id", raw)
		if err != nil {
			return respondError(ctx, err)
		}
		documentIDs = append(documentIDs, id)
	}

	operatorID, err := parseUUID("operator id", request.OperatorID)
	if err != nil {
		return respondError(ctx, err)
	}
	operator := kernel.NewOperatorActor(operatorID)

	var cmd commands.BulkReviewDocumentsCommand
	switch request.Decision {
	case "approve":
		cmd, err = commands.NewBulkApproveDocumentsCommand(documentIDs, operator, request.Note)
	case "reject":
		cmd, err = commands.NewBulkRejectDocumentsCommand(documentIDs, operator, request.Note)
	default:
		return respondBadRequest(ctx, "Decision must be approve or reject")
	}
	if err != nil {
		return respondError(ctx, err)
	}

	outcomes, err := s.handlers.BulkReviewDocuments.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]BulkReviewOutcomeResponse, len(outcomes))
	anyFailed := false
	for i, outcome := range outcomes {
		response[i] = BulkReviewOutcomeResponse{DocumentID: outcome.DocumentID.String()}
		if outcome.Err != nil {
			response[i].Error = outcome.Err.Error()
			anyFailed = true
		}
	}

	code := http.StatusOK
	if anyFailed {
		code = http.StatusMultiStatus
	}
	return ctx.JSON(code, response)
}

// GetExpiringDocuments handles GET /api/v1/documents/expiring - lists
// approved documents expiring within the horizon_days query parameter.
func (s *Server) GetExpiringDocuments(ctx echo.Context) error {
	horizonDays := defaultExpiryHorizonDays
	if raw := ctx.QueryParam("horizon_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return respondBadRequest(ctx, "horizon_days must be an integer")
		}
		horizonDays = parsed
	}

	query, err := queries.NewGetExpiringDocumentsQuery(horizonDays)
	if err != nil {
		return respondError(ctx, err)
	}

	expiring, err := s.handlers.GetExpiringDocuments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ExpiringDocumentResponse, len(expiring))
	for i, item := range expiring {
		response[i] = ExpiringDocumentResponse{
			ID:         item.ID.String(),
			BookingID:  item.BookingID.String(),
			DocType:    item.DocType,
			FileName:   item.FileName,
			ExpiryDate: item.ExpiryDate,
			Expired:    item.Expired,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
