package payment

import (
	"errors"

	"shipping/internal/pkg/errs"
)

// Status represents the settlement state of a payment:
//
//	Pending ──> Completed ──> Refunded
//	   │  └───> Cancelled
//	   └──────> Failed ──> Pending (retry)
//
// Refunded and Cancelled are terminal. A failed payment may be retried, which
// returns it to Pending. Only Completed and Refunded feed the owning
// booking's paid amount.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a recorded payment awaiting settlement.
	StatusPending

	// StatusCompleted means the payment settled and counts toward the booking.
	StatusCompleted

	// StatusFailed means settlement failed; the payment may be retried.
	StatusFailed

	// StatusRefunded means a completed payment was returned. Terminal.
	StatusRefunded

	// StatusCancelled means the payment was withdrawn before settlement. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusCompleted: "completed",
		StatusFailed:    "failed",
		StatusRefunded:  "refunded",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusCompleted: "completed",
		StatusFailed:    "failed",
		StatusRefunded:  "refunded",
		StatusCancelled: "cancelled",
	}
}

func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:   {StatusCompleted, StatusFailed, StatusCancelled},
		StatusCompleted: {StatusRefunded},
		StatusFailed:    {StatusPending},
		StatusRefunded:  {},
		StatusCancelled: {},
	}
}

// Validate checks if the Status value is one of the defined payment statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New(s.String()+" is not a valid payment status"))
	}
	return nil
}

// String returns the persisted name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a persisted status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		errors.New(s+" is not a valid payment status"))
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusRefunded || s == StatusCancelled
}

// CanTransitionTo reports whether the edge (s -> newStatus) is in the table.
func (s Status) CanTransitionTo(newStatus Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a status transition.
func (s Status) TransitionTo(newStatus Status) (Status, error) {
	if err := newStatus.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(newStatus) {
		return 0, errs.NewInvalidTransitionError("payment", s.String(), newStatus.String())
	}
	return newStatus, nil
}
