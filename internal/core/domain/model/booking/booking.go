package booking

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrBookingIsNotConstructed is returned when a Booking instance was not
	// created through the NewBooking or RestoreBooking factory methods.
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking or RestoreBooking")
)

// ReferencePrefix starts every booking reference, e.g. "BK2026090001".
const ReferencePrefix = "BK"

// NewReference formats a human-facing booking reference from the creation
// month and a monthly sequence number.
func NewReference(now time.Time, sequence int) string {
	return fmt.Sprintf("%s%s%04d", ReferencePrefix, now.Format("200601"), sequence)
}

// Booking is the aggregate root for a confirmed shipping order. It is the hub
// of the lifecycle: created directly or by converting an approved quote,
// carrying the priced total, and reconciled against payments and documents
// owned by their own aggregates.
//
// Booking follows these invariants:
//   - Status moves only along Pending -> Confirmed -> InTransit -> Delivered,
//     with Cancelled reachable from every non-terminal state
//   - paid_amount is a ledger-derived sum written only through
//     ApplyLedgerTotal by the payment handlers, never assigned elsewhere
//   - total and paid amounts share one currency
//   - Can only be created through NewBooking or RestoreBooking
type Booking struct {
	id                 kernel.UUID
	reference          string
	customerID         kernel.UUID
	quoteID            *kernel.UUID
	vehicleID          kernel.UUID
	routeID            kernel.UUID
	status             Status
	totalAmount        kernel.Money
	paidAmount         kernel.Money
	recipient          Recipient
	pickupDate         *time.Time
	estimatedDelivery  *time.Time
	actualDelivery     *time.Time
	cancellationReason string
	createdBy          kernel.Actor

	isConstructed bool
}

// NewBooking creates a pending booking. quoteID is nil for direct bookings
// and set when the booking was converted from an approved quote; in the
// conversion case the total and currency are copies of the quote's.
func NewBooking(
	id kernel.UUID,
	reference string,
	customerID kernel.UUID,
	quoteID *kernel.UUID,
	vehicleID kernel.UUID,
	routeID kernel.UUID,
	totalAmount kernel.Money,
	recipient Recipient,
	pickupDate *time.Time,
	estimatedDelivery *time.Time,
	createdBy kernel.Actor,
) (*Booking, error) {
	b := &Booking{
		status:            Pending,
		quoteID:           quoteID,
		pickupDate:        pickupDate,
		estimatedDelivery: estimatedDelivery,
		isConstructed:     true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setReference(reference),
		b.setCustomerID(customerID),
		b.setVehicleID(vehicleID),
		b.setRouteID(routeID),
		b.setTotalAmount(totalAmount),
		b.setRecipient(recipient),
		b.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}
	if quoteID != nil {
		if err := quoteID.Validate(); err != nil {
			return nil, err
		}
	}

	zero, err := kernel.ZeroMoney(totalAmount.Currency())
	if err != nil {
		return nil, err
	}
	b.paidAmount = zero

	return b, nil
}

// RestoreBooking reconstructs a booking from persistence.
func RestoreBooking(
	id kernel.UUID,
	reference string,
	customerID kernel.UUID,
	quoteID *kernel.UUID,
	vehicleID kernel.UUID,
	routeID kernel.UUID,
	status Status,
	totalAmount kernel.Money,
	paidAmount kernel.Money,
	recipient Recipient,
	pickupDate *time.Time,
	estimatedDelivery *time.Time,
	actualDelivery *time.Time,
	cancellationReason string,
	createdBy kernel.Actor,
) (*Booking, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	b := &Booking{
		status:             status,
		quoteID:            quoteID,
		pickupDate:         pickupDate,
		estimatedDelivery:  estimatedDelivery,
		actualDelivery:     actualDelivery,
		cancellationReason: cancellationReason,
		isConstructed:      true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setReference(reference),
		b.setCustomerID(customerID),
		b.setVehicleID(vehicleID),
		b.setRouteID(routeID),
		b.setTotalAmount(totalAmount),
		b.setRecipient(recipient),
		b.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	if err := paidAmount.Validate(); err != nil {
		return nil, err
	}
	if paidAmount.Currency() != totalAmount.Currency() {
		return nil, errs.NewAmountMismatchErrorWithCause("paid amount",
			fmt.Errorf("paid in %s, total in %s", paidAmount.Currency(), totalAmount.Currency()))
	}
	b.paidAmount = paidAmount

	return b, nil
}

// Validate ensures the Booking instance was properly constructed.
func (b *Booking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingIsNotConstructed
	}
	return nil
}

// IsEqual compares two bookings by their unique identifiers.
func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() kernel.UUID {
	return b.id
}

// Reference returns the human-facing booking reference.
func (b *Booking) Reference() string {
	return b.reference
}

// CustomerID returns the owning customer's identifier.
func (b *Booking) CustomerID() kernel.UUID {
	return b.customerID
}

// QuoteID returns the source quote's identifier, nil for direct bookings.
func (b *Booking) QuoteID() *kernel.UUID {
	return b.quoteID
}

// VehicleID returns the shipped vehicle's identifier.
func (b *Booking) VehicleID() kernel.UUID {
	return b.vehicleID
}

// RouteID returns the route's identifier.
func (b *Booking) RouteID() kernel.UUID {
	return b.routeID
}

// Status returns the current lifecycle status.
func (b *Booking) Status() Status {
	return b.status
}

// TotalAmount returns the booking's priced total.
func (b *Booking) TotalAmount() kernel.Money {
	return b.totalAmount
}

// PaidAmount returns the ledger-derived sum of completed payments minus
// refunds. Only ApplyLedgerTotal writes this value.
func (b *Booking) PaidAmount() kernel.Money {
	return b.paidAmount
}

// Currency returns the booking's currency.
func (b *Booking) Currency() kernel.Currency {
	return b.totalAmount.Currency()
}

// Recipient returns the destination contact block.
func (b *Booking) Recipient() Recipient {
	return b.recipient
}

// PickupDate returns the scheduled pickup date, nil when unscheduled.
func (b *Booking) PickupDate() *time.Time {
	return b.pickupDate
}

// EstimatedDelivery returns the estimated delivery date, nil when unknown.
func (b *Booking) EstimatedDelivery() *time.Time {
	return b.estimatedDelivery
}

// ActualDelivery returns the actual delivery date, set on the Delivered edge.
func (b *Booking) ActualDelivery() *time.Time {
	return b.actualDelivery
}

// CancellationReason returns the stored reason, empty unless cancelled.
func (b *Booking) CancellationReason() string {
	return b.cancellationReason
}

// CreatedBy returns the actor who created the booking.
func (b *Booking) CreatedBy() kernel.Actor {
	return b.createdBy
}

// Coverage derives the payment-coverage status from the current amounts.
func (b *Booking) Coverage() (Coverage, error) {
	return DeriveCoverage(b.paidAmount, b.totalAmount)
}

// UpdateStatus moves the booking along the forward chain. Entering Delivered
// stamps the actual delivery date. Cancellation goes through Cancel so the
// mandatory reason cannot be skipped.
func (b *Booking) UpdateStatus(newStatus Status, now time.Time) error {
	if newStatus == Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("cancellation requires a reason, use Cancel"))
	}

	next, err := b.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	b.status = next
	if next == Delivered {
		b.actualDelivery = &now
	}
	return nil
}

// Cancel abandons the booking from any non-terminal state. The reason is
// mandatory and stored. Associated shipments, documents, and payments are
// kept for audit; cancellation never cascades deletes.
func (b *Booking) Cancel(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellation reason")
	}

	next, err := b.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	b.status = next
	b.cancellationReason = reason
	return nil
}

// ApplyLedgerTotal is the single write path for paid_amount. The payment
// handlers call it with the recomputed ledger sum after a payment completes
// or is refunded; nothing else mutates the field.
func (b *Booking) ApplyLedgerTotal(paidAmount kernel.Money) error {
	if err := paidAmount.Validate(); err != nil {
		return err
	}
	if paidAmount.Currency() != b.totalAmount.Currency() {
		return errs.NewAmountMismatchErrorWithCause("paid amount",
			fmt.Errorf("paid in %s, total in %s", paidAmount.Currency(), b.totalAmount.Currency()))
	}

	b.paidAmount = paidAmount
	return nil
}

// SchedulePickup records or moves the pickup date.
func (b *Booking) SchedulePickup(pickupDate time.Time) error {
	if b.status.IsTerminal() {
		return errs.NewInvalidTransitionError("booking", b.status.String(), "rescheduled")
	}
	b.pickupDate = &pickupDate
	return nil
}

// UpdateEstimatedDelivery records or moves the estimated delivery date.
func (b *Booking) UpdateEstimatedDelivery(estimated time.Time) error {
	if b.status.IsTerminal() {
		return errs.NewInvalidTransitionError("booking", b.status.String(), "rescheduled")
	}
	b.estimatedDelivery = &estimated
	return nil
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("booking reference")
	}
	b.reference = reference
	return nil
}

func (b *Booking) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	b.customerID = customerID
	return nil
}

func (b *Booking) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	b.vehicleID = vehicleID
	return nil
}

func (b *Booking) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	b.routeID = routeID
	return nil
}

func (b *Booking) setTotalAmount(totalAmount kernel.Money) error {
	if err := totalAmount.Validate(); err != nil {
		return err
	}
	b.totalAmount = totalAmount
	return nil
}

func (b *Booking) setRecipient(recipient Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	b.recipient = recipient
	return nil
}

func (b *Booking) setCreatedBy(createdBy kernel.Actor) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	b.createdBy = createdBy
	return nil
}
