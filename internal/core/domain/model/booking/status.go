package booking

import (
	"errors"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a booking.
// The machine is a forward chain with cancellation reachable from every
// non-terminal state:
//
//	Pending ──> Confirmed ──> InTransit ──> Delivered
//	   │            │             │
//	   └────────────┴─────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. The transition table is enforced
// centrally here; no other code decides edge legality.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a new booking awaiting confirmation.
	Pending

	// Confirmed means the booking is accepted and a shipment may be prepared.
	Confirmed

	// InTransit means the vehicle is physically moving.
	InTransit

	// Delivered means the vehicle reached the recipient. Terminal.
	Delivered

	// Cancelled means the booking was abandoned before delivery. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// allowedTransitions is the single source of truth for legal status edges.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed, Cancelled},
		Confirmed: {InTransit, Cancelled},
		InTransit: {Delivered, Cancelled},
		Delivered: {},
		Cancelled: {},
	}
}

// Validate checks if the Status value is one of the defined booking statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New(s.String()+" is not a valid booking status"))
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

// StatusFromString parses a persisted status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		errors.New(s+" is not a valid booking status"))
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
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
// Returns an InvalidTransitionError for any edge not in the table, including
// every attempt to leave Delivered or Cancelled.
func (s Status) TransitionTo(newStatus Status) (Status, error) {
	if err := newStatus.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(newStatus) {
		return 0, errs.NewInvalidTransitionError("booking", s.String(), newStatus.String())
	}
	return newStatus, nil
}
