package queries

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPendingQuotesQueryHandler retrieves the pending quote work queue from
// the database. Uses direct SQL for optimal read performance in the CQRS
// pattern.
type GetPendingQuotesQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingQuotesQueryHandler creates a handler for pending quote queries.
// Requires a GORM database connection for query execution.
func NewGetPendingQuotesQueryHandler(db *gorm.DB) GetPendingQuotesQueryHandler {
	return GetPendingQuotesQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending quotes whose validity has
// not yet lapsed. Quotes past their validity window are excluded even when
// the expiry sweep has not flipped them yet, so the queue never shows work
// an operator can no longer act on. Results are sorted by validity deadline,
// most urgent first.
func (h GetPendingQuotesQueryHandler) Handle(
	ctx context.Context,
	query GetPendingQuotesQuery,
) ([]GetPendingQuotesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	quotes := make([]GetPendingQuotesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			customer_id,
			total_amount,
			currency,
			valid_until
		FROM quotes
		WHERE status = ? AND valid_until >= ?
		ORDER BY valid_until
	`, int(quote.Pending), time.Now().UTC()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var quoteResp GetPendingQuotesQueryResponse
		var id, customerID uuid.UUID
		var totalAmount decimal.Decimal
		var currency string

		err = rows.Scan(
			&id,
			&quoteResp.Reference,
			&customerID,
			&totalAmount,
			&currency,
			&quoteResp.ValidUntil,
		)
		if err != nil {
			return nil, err
		}

		quoteID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		quoteResp.ID = quoteID

		quoteCustomerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		quoteResp.CustomerID = quoteCustomerID

		money, moneyErr := kernel.NewMoney(totalAmount, kernel.Currency(currency))
		if moneyErr != nil {
			return nil, moneyErr
		}
		quoteResp.TotalAmount = money

		quotes = append(quotes, quoteResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return quotes, nil
}
