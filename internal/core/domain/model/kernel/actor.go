package kernel

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// ActorKind discriminates who performed a mutating action: an internal staff
// account or a customer acting on their own records. The core records the
// identity but performs no permission checks.
type ActorKind int

const (
	// ActorKindUnknown represents an invalid or undefined actor kind.
	ActorKindUnknown ActorKind = iota

	// ActorKindOperator is an internal staff account.
	ActorKindOperator

	// ActorKindCustomer is a customer acting on their own records.
	ActorKindCustomer
)

func getActorKindStrings() map[ActorKind]string {
	return map[ActorKind]string{
		ActorKindUnknown:  "unknown",
		ActorKindOperator: "operator",
		ActorKindCustomer: "customer",
	}
}

// String returns the human-readable name of the actor kind.
func (k ActorKind) String() string {
	if s, ok := getActorKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Validate checks the kind is one of the defined discriminators.
func (k ActorKind) Validate() error {
	if k != ActorKindOperator && k != ActorKindCustomer {
		return errs.NewValueIsInvalidErrorWithCause("actor kind",
			fmt.Errorf("%d is not a valid actor kind", k))
	}
	return nil
}

// Actor is a discriminated reference {kind, id} to the identity behind a
// mutating call. Recorded on created_by/approved_by/verified_by fields so a
// raw foreign key never has an ambiguous target.
//
// Example usage:
//
//	operator := kernel.NewOperatorActor(kernel.NewUUID())
//	quote.Approve(operator, "priced against current route table", now)
type Actor struct {
	kind ActorKind
	id   UUID
}

// NewOperatorActor creates an Actor referencing an internal staff account.
func NewOperatorActor(id UUID) Actor {
	return Actor{kind: ActorKindOperator, id: id}
}

// NewCustomerActor creates an Actor referencing a customer account.
func NewCustomerActor(id UUID) Actor {
	return Actor{kind: ActorKindCustomer, id: id}
}

// NewActor creates an Actor with an explicit kind, validating both parts.
func NewActor(kind ActorKind, id UUID) (Actor, error) {
	if err := kind.Validate(); err != nil {
		return Actor{}, err
	}
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{kind: kind, id: id}, nil
}

// Kind returns the actor discriminator.
func (a Actor) Kind() ActorKind {
	return a.kind
}

// ID returns the referenced account identifier.
func (a Actor) ID() UUID {
	return a.id
}

// IsEqual compares two actors by kind and identifier.
func (a Actor) IsEqual(other Actor) bool {
	return a.kind == other.kind && a.id.IsEqual(other.id)
}

// Validate checks the actor carries a valid kind and identifier.
func (a Actor) Validate() error {
	if err := a.kind.Validate(); err != nil {
		return err
	}
	return a.id.Validate()
}

// String renders the actor as "kind:id" for logging.
func (a Actor) String() string {
	return fmt.Sprintf("%s:%s", a.kind, a.id)
}
