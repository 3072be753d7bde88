package document

import (
	"errors"

	"shipping/internal/pkg/errs"
)

// Status represents the verification state of a document:
//
//	Pending ──> Approved
//	   │  └───> Rejected
//	   └──────> RequiresRevision ──> Pending
//
// Approved and Rejected are terminal; RequiresRevision loops back to Pending
// when the customer resubmits the file. Expiry of an approved document is an
// advisory read, never a stored transition.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of an uploaded document awaiting review.
	StatusPending

	// StatusApproved means an operator verified the document. Terminal.
	StatusApproved

	// StatusRejected means an operator refused the document. Terminal.
	StatusRejected

	// StatusRequiresRevision means the document must be corrected and resubmitted.
	StatusRequiresRevision
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:          "unknown",
		StatusPending:          "pending",
		StatusApproved:         "approved",
		StatusRejected:         "rejected",
		StatusRequiresRevision: "requires_revision",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:          "pending",
		StatusApproved:         "approved",
		StatusRejected:         "rejected",
		StatusRequiresRevision: "requires_revision",
	}
}

func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:          {StatusApproved, StatusRejected, StatusRequiresRevision},
		StatusApproved:         {},
		StatusRejected:         {},
		StatusRequiresRevision: {StatusPending},
	}
}

// Validate checks if the Status value is one of the defined document statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New(s.String()+" is not a valid document status"))
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
		errors.New(s+" is not a valid document status"))
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
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
		return 0, errs.NewInvalidTransitionError("document", s.String(), newStatus.String())
	}
	return newStatus, nil
}
