package quote

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrQuoteIsNotConstructed is returned when a Quote instance was not created
	// through the NewQuote or RestoreQuote factory methods.
	ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote or RestoreQuote")
)

// DefaultValidityDays is the validity window applied when a quote is created
// without an explicit valid-until date.
const DefaultValidityDays = 30

// ReferencePrefix starts every quote reference, e.g. "QT2026090001".
const ReferencePrefix = "QT"

// NewReference formats a human-facing quote reference from the creation month
// and a monthly sequence number.
func NewReference(now time.Time, sequence int) string {
	return fmt.Sprintf("%s%s%04d", ReferencePrefix, now.Format("200601"), sequence)
}

// Quote is the aggregate root for a priced shipping offer. It owns the quote
// status machine and the pricing invariant
//
//	total == basePrice + sum(fees)
//
// which is recomputed on every edit that touches price components. The vehicle
// details are a snapshot captured at creation, so a priced quote is stable
// even if the vehicle or route records change later.
//
// Quote follows these invariants:
//   - Must have a valid unique identifier, reference, customer, and route
//   - Base price, every fee, and the total share one currency
//   - Status transitions follow the Pending -> {Approved, Rejected, Expired},
//     Approved -> Converted machine
//   - Can only be created through NewQuote or RestoreQuote
type Quote struct {
	id              kernel.UUID
	reference       string
	customerID      kernel.UUID
	routeID         kernel.UUID
	vehicle         VehicleSnapshot
	basePrice       kernel.Money
	fees            []Fee
	totalAmount     kernel.Money
	status          Status
	validUntil      time.Time
	rejectionReason string
	notes           string
	createdBy       kernel.Actor
	approvedBy      *kernel.Actor
	approvedAt      *time.Time

	isConstructed bool
}

// NewQuote creates a pending quote and computes its total from the base price
// and the ordered fee list. The caller supplies the base price already
// resolved for the route and vehicle (see services.PricingCalculator).
//
// validUntil bounds the validity window; pass the zero time to apply the
// default 30-day window from now.
func NewQuote(
	id kernel.UUID,
	reference string,
	customerID kernel.UUID,
	routeID kernel.UUID,
	vehicle VehicleSnapshot,
	basePrice kernel.Money,
	fees []Fee,
	validUntil time.Time,
	createdBy kernel.Actor,
	now time.Time,
) (*Quote, error) {
	q := &Quote{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		q.setID(id),
		q.setReference(reference),
		q.setCustomerID(customerID),
		q.setRouteID(routeID),
		q.setVehicle(vehicle),
		q.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	if validUntil.IsZero() {
		validUntil = now.AddDate(0, 0, DefaultValidityDays)
	}
	if !validUntil.After(now) {
		return nil, errs.NewValueIsInvalidErrorWithCause("valid until",
			fmt.Errorf("%s is not in the future", validUntil.Format(time.DateOnly)))
	}
	q.validUntil = validUntil

	if err := q.reprice(basePrice, fees); err != nil {
		return nil, err
	}

	return q, nil
}

// RestoreQuote reconstructs a quote from persistence without re-running
// creation-time rules. The stored total is checked against the price
// components; a mismatch means the row was mutated outside this aggregate.
func RestoreQuote(
	id kernel.UUID,
	reference string,
	customerID kernel.UUID,
	routeID kernel.UUID,
	vehicle VehicleSnapshot,
	basePrice kernel.Money,
	fees []Fee,
	totalAmount kernel.Money,
	status Status,
	validUntil time.Time,
	rejectionReason string,
	notes string,
	createdBy kernel.Actor,
	approvedBy *kernel.Actor,
	approvedAt *time.Time,
) (*Quote, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	q := &Quote{
		status:          status,
		validUntil:      validUntil,
		rejectionReason: rejectionReason,
		notes:           notes,
		approvedBy:      approvedBy,
		approvedAt:      approvedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		q.setID(id),
		q.setReference(reference),
		q.setCustomerID(customerID),
		q.setRouteID(routeID),
		q.setVehicle(vehicle),
		q.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	if err := q.reprice(basePrice, fees); err != nil {
		return nil, err
	}
	if !q.totalAmount.IsEqual(totalAmount) {
		return nil, errs.NewAmountMismatchErrorWithCause("total amount",
			fmt.Errorf("stored %s, computed %s", totalAmount, q.totalAmount))
	}

	return q, nil
}

// Validate ensures the Quote instance was properly constructed.
func (q *Quote) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuoteIsNotConstructed
	}
	return nil
}

// IsEqual compares two quotes by their unique identifiers.
func (q *Quote) IsEqual(other *Quote) bool {
	return other != nil && q.id.IsEqual(other.id)
}

// ID returns the quote's unique identifier.
func (q *Quote) ID() kernel.UUID {
	return q.id
}

// Reference returns the human-facing quote reference.
func (q *Quote) Reference() string {
	return q.reference
}

// CustomerID returns the owning customer's identifier.
func (q *Quote) CustomerID() kernel.UUID {
	return q.customerID
}

// RouteID returns the priced route's identifier.
func (q *Quote) RouteID() kernel.UUID {
	return q.routeID
}

// Vehicle returns the vehicle snapshot captured at creation.
func (q *Quote) Vehicle() VehicleSnapshot {
	return q.vehicle
}

// BasePrice returns the route base price component.
func (q *Quote) BasePrice() kernel.Money {
	return q.basePrice
}

// Fees returns the ordered additional fee list.
func (q *Quote) Fees() []Fee {
	fees := make([]Fee, len(q.fees))
	copy(fees, q.fees)
	return fees
}

// TotalAmount returns the persisted total: base price plus all fees.
func (q *Quote) TotalAmount() kernel.Money {
	return q.totalAmount
}

// Currency returns the quote's currency.
func (q *Quote) Currency() kernel.Currency {
	return q.totalAmount.Currency()
}

// Status returns the current lifecycle status.
func (q *Quote) Status() Status {
	return q.status
}

// ValidUntil returns the end of the validity window.
func (q *Quote) ValidUntil() time.Time {
	return q.validUntil
}

// RejectionReason returns the operator-supplied reason, empty unless rejected.
func (q *Quote) RejectionReason() string {
	return q.rejectionReason
}

// Notes returns free-form operator notes.
func (q *Quote) Notes() string {
	return q.notes
}

// CreatedBy returns the actor who created the quote.
func (q *Quote) CreatedBy() kernel.Actor {
	return q.createdBy
}

// ApprovedBy returns the approving actor, nil while unapproved.
func (q *Quote) ApprovedBy() *kernel.Actor {
	return q.approvedBy
}

// ApprovedAt returns the approval time, nil while unapproved.
func (q *Quote) ApprovedAt() *time.Time {
	return q.approvedAt
}

// IsExpired reports whether the validity window has lapsed for a quote that
// never converted. This is the derived view; the stored status only becomes
// Expired once the expiration sweep runs.
func (q *Quote) IsExpired(now time.Time) bool {
	return now.After(q.validUntil) && q.status != Converted
}

// UpdatePricing replaces the price components and recomputes the total.
// Allowed only while the quote is pending; approved and terminal quotes keep
// the price they were approved with.
func (q *Quote) UpdatePricing(basePrice kernel.Money, fees []Fee) error {
	if q.status != Pending {
		return errs.NewInvalidTransitionError("quote", q.status.String(), "repriced")
	}
	return q.reprice(basePrice, fees)
}

// Approve marks a pending quote approved and records who approved it and when.
// Approval does not create a booking; see Convert.
func (q *Quote) Approve(by kernel.Actor, note string, now time.Time) error {
	if err := by.Validate(); err != nil {
		return err
	}

	newStatus, err := q.status.Approve()
	if err != nil {
		return err
	}

	q.status = newStatus
	q.approvedBy = &by
	q.approvedAt = &now
	if note != "" {
		q.notes = note
	}
	return nil
}

// Reject marks a pending quote rejected. The reason is mandatory and stored.
func (q *Quote) Reject(by kernel.Actor, reason string) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}

	newStatus, err := q.status.Reject()
	if err != nil {
		return err
	}

	q.status = newStatus
	q.rejectionReason = reason
	return nil
}

// ExtendValidity moves the validity window forward. Allowed only while
// pending, and the new date must be strictly later than the current one.
func (q *Quote) ExtendValidity(newDate time.Time) error {
	if q.status != Pending {
		return errs.NewInvalidTransitionError("quote", q.status.String(), "extended")
	}
	if !newDate.After(q.validUntil) {
		return errs.NewValueIsInvalidErrorWithCause("valid until",
			fmt.Errorf("%s is not later than %s",
				newDate.Format(time.DateOnly), q.validUntil.Format(time.DateOnly)))
	}
	q.validUntil = newDate
	return nil
}

// Expire transitions a pending quote whose window lapsed to Expired.
// The batch sweep uses a conditional update instead; this method serves
// single-quote flows and keeps the rule in one place.
func (q *Quote) Expire(now time.Time) error {
	if !now.After(q.validUntil) {
		return errs.NewValueIsInvalidErrorWithCause("valid until",
			fmt.Errorf("quote is valid until %s", q.validUntil.Format(time.DateOnly)))
	}

	newStatus, err := q.status.Expire()
	if err != nil {
		return err
	}

	q.status = newStatus
	return nil
}

// Convert marks an approved quote converted. The caller is responsible for
// creating the booking in the same transaction; at-most-one conversion is
// additionally guarded by a status-conditional write in the repository.
func (q *Quote) Convert() error {
	newStatus, err := q.status.Convert()
	if err != nil {
		return err
	}

	q.status = newStatus
	return nil
}

func (q *Quote) reprice(basePrice kernel.Money, fees []Fee) error {
	if err := basePrice.Validate(); err != nil {
		return err
	}
	for _, fee := range fees {
		if err := fee.Validate(); err != nil {
			return err
		}
	}

	feeTotal, err := sumFees(fees, basePrice.Currency())
	if err != nil {
		return err
	}
	total, err := basePrice.Add(feeTotal)
	if err != nil {
		return err
	}

	q.basePrice = basePrice
	q.fees = make([]Fee, len(fees))
	copy(q.fees, fees)
	q.totalAmount = total
	return nil
}

func (q *Quote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.id = id
	return nil
}

func (q *Quote) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("quote reference")
	}
	q.reference = reference
	return nil
}

func (q *Quote) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	q.customerID = customerID
	return nil
}

func (q *Quote) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	q.routeID = routeID
	return nil
}

func (q *Quote) setVehicle(vehicle VehicleSnapshot) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	q.vehicle = vehicle
	return nil
}

func (q *Quote) setCreatedBy(createdBy kernel.Actor) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	q.createdBy = createdBy
	return nil
}
