package quote

import (
	"errors"

	"shipping/internal/pkg/errs"
)

// ErrQuoteAlreadyConverted is returned when a conversion is attempted on a
// quote that has already produced a booking. Conversion is one-way and
// at-most-once.
var ErrQuoteAlreadyConverted = errors.New("quote is already converted")

// Status represents the lifecycle state of a quote.
// It implements a state machine with defined transitions:
//
//	Pending ──┬──> Approved ──> Converted
//	          ├──> Rejected
//	          └──> Expired
//
// Approved, Rejected, Expired, and Converted allow no further transitions
// except the single Approved -> Converted edge. Status is a value object that
// validates transitions centrally so no caller can scatter conditionals.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly priced quote awaiting review.
	Pending

	// Approved means an operator accepted the quote; it may now be converted.
	Approved

	// Rejected means an operator declined the quote. Terminal.
	Rejected

	// Converted means the quote produced a booking. Terminal.
	Converted

	// Expired means the validity window lapsed while the quote was pending. Terminal.
	Expired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Approved:  "approved",
		Rejected:  "rejected",
		Converted: "converted",
		Expired:   "expired",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Approved:  "approved",
		Rejected:  "rejected",
		Converted: "converted",
		Expired:   "expired",
	}
}

// Validate checks if the Status value is one of the defined quote statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New(s.String()+" is not a valid quote status"))
	}
	return nil
}

// String returns the persisted name of the status. It implements fmt.Stringer
// and is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
// Approved is not terminal because of the Approved -> Converted edge.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Converted || s == Expired
}

// Approve transitions the status to Approved.
// Only Pending quotes may be approved.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("quote", s.String(), Approved.String())
	}
	return Approved, nil
}

// Reject transitions the status to Rejected.
// Only Pending quotes may be rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("quote", s.String(), Rejected.String())
	}
	return Rejected, nil
}

// Expire transitions the status to Expired.
// Only Pending quotes expire; approved, rejected, and converted quotes are
// never touched by the expiration sweep.
func (s Status) Expire() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("quote", s.String(), Expired.String())
	}
	return Expired, nil
}

// Convert transitions the status to Converted.
// Only Approved quotes convert. A repeat attempt on an already converted
// quote fails with ErrQuoteAlreadyConverted so callers can distinguish the
// re-entry case from other illegal transitions.
func (s Status) Convert() (Status, error) {
	if s == Converted {
		return 0, ErrQuoteAlreadyConverted
	}
	if s != Approved {
		return 0, errs.NewInvalidTransitionError("quote", s.String(), Converted.String())
	}
	return Converted, nil
}
