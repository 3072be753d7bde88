package booking

import (
	"shipping/internal/core/domain/model/kernel"
)

// Coverage is the derived payment-coverage status of a booking. It is never
// stored; it is recomputed from paid_amount and total_amount on read.
type Coverage int

const (
	// Unpaid means no completed payment value is applied to the booking.
	Unpaid Coverage = iota

	// Partial means some but not all of the total is covered.
	Partial

	// Paid means the completed payments cover the full total.
	Paid
)

// String returns the reporting name of the coverage value.
func (c Coverage) String() string {
	switch c {
	case Partial:
		return "partial"
	case Paid:
		return "paid"
	default:
		return "unpaid"
	}
}

// DeriveCoverage computes payment coverage from a paid amount and a total:
// paid when paid >= total and total > 0, partial when 0 < paid < total,
// unpaid otherwise.
func DeriveCoverage(paidAmount, totalAmount kernel.Money) (Coverage, error) {
	covered, err := paidAmount.GreaterThanOrEqual(totalAmount)
	if err != nil {
		return Unpaid, err
	}
	if covered && !totalAmount.IsZero() {
		return Paid, nil
	}
	if !paidAmount.IsZero() && !covered {
		return Partial, nil
	}
	return Unpaid, nil
}
