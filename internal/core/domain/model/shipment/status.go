package shipment

import (
	"errors"

	"shipping/internal/pkg/errs"
)

// Status represents the physical stage of a shipment:
//
//	Preparing ──> InTransit ──> Customs ──> Delivered
//
// Movement is forward-only and may skip stages (a shipment can go straight
// from InTransit to Delivered when there is no customs stop). Delivered is
// terminal. Delay is not a stage: it is derived from the estimated arrival,
// see Shipment.IsDelayed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Preparing is the initial status while the vehicle awaits loading.
	Preparing

	// InTransit means the vehicle is moving toward the arrival port.
	InTransit

	// Customs means the vehicle is held in customs clearance.
	Customs

	// Delivered means the vehicle reached its destination. Terminal.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Preparing: "preparing",
		InTransit: "in_transit",
		Customs:   "customs",
		Delivered: "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Preparing: "preparing",
		InTransit: "in_transit",
		Customs:   "customs",
		Delivered: "delivered",
	}
}

// Validate checks if the Status value is one of the defined shipment statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New(s.String()+" is not a valid shipment status"))
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
		errors.New(s+" is not a valid shipment status"))
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// CanTransitionTo reports whether the move is strictly forward. Stage order
// doubles as the transition rule, so skips are legal but backtracking is not.
func (s Status) CanTransitionTo(newStatus Status) bool {
	return newStatus > s && newStatus <= Delivered && s >= Preparing
}

// TransitionTo validates and performs a status transition.
// Returns an InvalidTransitionError for backward moves, repeats, and any
// attempt to leave Delivered.
func (s Status) TransitionTo(newStatus Status) (Status, error) {
	if err := newStatus.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(newStatus) {
		return 0, errs.NewInvalidTransitionError("shipment", s.String(), newStatus.String())
	}
	return newStatus, nil
}
