package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetExpiringDocumentsQueryIsNotConstructed = errors.New(
		"GetExpiringDocumentsQuery must be created via NewGetExpiringDocumentsQuery constructor",
	)
)

// GetExpiringDocumentsQuery retrieves approved documents whose expiry date
// has passed or falls within the given horizon. Expiry is advisory: the
// stored document status never changes, this view only surfaces the risk.
type GetExpiringDocumentsQuery struct {
	horizonDays int

	guard guard.ConstructorGuard
}

// NewGetExpiringDocumentsQuery creates a query over the given look-ahead
// window in days. The horizon must not be negative; zero means only already
// expired documents.
func NewGetExpiringDocumentsQuery(horizonDays int) (GetExpiringDocumentsQuery, error) {
	if horizonDays < 0 {
		return GetExpiringDocumentsQuery{}, errs.NewValueIsRequiredError("horizon days")
	}
	return GetExpiringDocumentsQuery{
		horizonDays: horizonDays,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// HorizonDays returns the look-ahead window in days.
func (q GetExpiringDocumentsQuery) HorizonDays() int {
	return q.horizonDays
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetExpiringDocumentsQueryIsNotConstructed if validation fails.
func (q GetExpiringDocumentsQuery) Validate() error {
	return q.guard.Validate(ErrGetExpiringDocumentsQueryIsNotConstructed)
}

// GetExpiringDocumentsQueryResponse represents one approved document at risk.
// Expired is true when the expiry date already passed at query time.
type GetExpiringDocumentsQueryResponse struct {
	ID         kernel.UUID
	BookingID  kernel.UUID
	DocType    string
	FileName   string
	ExpiryDate time.Time
	Expired    bool
}
