// Package queries contains read operations for the application layer.
// Implements the Query pattern for read operations in the CQRS architecture,
// bypassing the domain model and reading projection-friendly rows directly.
package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetPendingQuotesQueryIsNotConstructed = errors.New(
		"GetPendingQuotesQuery must be created via NewGetPendingQuotesQuery constructor",
	)
)

// GetPendingQuotesQuery retrieves all quotes awaiting an operator decision.
// The result is the operator work queue, ordered by how soon each quote
// lapses.
//
// Example:
//
//	query := NewGetPendingQuotesQuery()
//	handler := NewGetPendingQuotesQueryHandler(db)
//
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending quotes: %w", err)
//	}
//
//	fmt.Printf("%d quotes awaiting review\n", len(pending))
type GetPendingQuotesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingQuotesQuery creates a query to retrieve the pending work queue.
// This is a parameterless query; expiry filtering happens in the handler.
func NewGetPendingQuotesQuery() GetPendingQuotesQuery {
	return GetPendingQuotesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingQuotesQueryIsNotConstructed if validation fails.
func (q GetPendingQuotesQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingQuotesQueryIsNotConstructed)
}

// GetPendingQuotesQueryResponse represents one quote in the operator work
// queue. Amounts carry the quote's currency.
type GetPendingQuotesQueryResponse struct {
	ID          kernel.UUID
	Reference   string
	CustomerID  kernel.UUID
	TotalAmount kernel.Money
	ValidUntil  time.Time
}
