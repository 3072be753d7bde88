package payment

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was not
	// created through the NewPayment or RestorePayment factory methods.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")
)

// ReferencePrefix starts every payment reference, e.g. "PAY2026090001".
const ReferencePrefix = "PAY"

// NewReference formats a payment reference from the creation month and a
// monthly sequence number.
func NewReference(now time.Time, sequence int) string {
	return fmt.Sprintf("%s%s%04d", ReferencePrefix, now.Format("200601"), sequence)
}

// Payment is a monetary transaction applied against a booking's total. The
// ledger derives the booking's paid amount from AppliedAmount across all of
// the booking's payments; a payment never writes to the booking itself.
type Payment struct {
	id             kernel.UUID
	reference      string
	bookingID      kernel.UUID
	customerID     kernel.UUID
	amount         kernel.Money
	refundedAmount kernel.Money
	method         Method
	status         Status
	failureReason  string
	paymentDate    *time.Time
	refundedAt     *time.Time
	recordedBy     kernel.Actor

	isConstructed bool
}

// NewPayment records a pending payment against a booking. The amount must be
// strictly positive.
func NewPayment(
	id kernel.UUID,
	reference string,
	bookingID kernel.UUID,
	customerID kernel.UUID,
	amount kernel.Money,
	method Method,
	recordedBy kernel.Actor,
) (*Payment, error) {
	p := &Payment{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setReference(reference),
		p.setBookingID(bookingID),
		p.setCustomerID(customerID),
		p.setAmount(amount),
		p.setMethod(method),
		p.setRecordedBy(recordedBy),
	); err != nil {
		return nil, err
	}

	zero, err := kernel.ZeroMoney(amount.Currency())
	if err != nil {
		return nil, err
	}
	p.refundedAmount = zero

	return p, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id kernel.UUID,
	reference string,
	bookingID kernel.UUID,
	customerID kernel.UUID,
	amount kernel.Money,
	refundedAmount kernel.Money,
	method Method,
	status Status,
	failureReason string,
	paymentDate *time.Time,
	refundedAt *time.Time,
	recordedBy kernel.Actor,
) (*Payment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	p := &Payment{
		status:        status,
		failureReason: failureReason,
		paymentDate:   paymentDate,
		refundedAt:    refundedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setReference(reference),
		p.setBookingID(bookingID),
		p.setCustomerID(customerID),
		p.setAmount(amount),
		p.setMethod(method),
		p.setRecordedBy(recordedBy),
	); err != nil {
		return nil, err
	}

	if err := refundedAmount.Validate(); err != nil {
		return nil, err
	}
	exceeds, err := refundedAmount.GreaterThan(amount)
	if err != nil {
		return nil, err
	}
	if exceeds {
		return nil, errs.NewAmountMismatchErrorWithCause("refunded amount",
			fmt.Errorf("refunded %s exceeds payment %s", refundedAmount, amount))
	}
	p.refundedAmount = refundedAmount

	return p, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// IsEqual compares two payments by their unique identifiers.
func (p *Payment) IsEqual(other *Payment) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// Reference returns the unique payment reference.
func (p *Payment) Reference() string {
	return p.reference
}

// BookingID returns the owning booking's identifier.
func (p *Payment) BookingID() kernel.UUID {
	return p.bookingID
}

// CustomerID returns the paying customer's identifier.
func (p *Payment) CustomerID() kernel.UUID {
	return p.customerID
}

// Amount returns the original payment amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// RefundedAmount returns the returned portion, zero unless refunded.
func (p *Payment) RefundedAmount() kernel.Money {
	return p.refundedAmount
}

// Method returns how the payment was made.
func (p *Payment) Method() Method {
	return p.method
}

// Status returns the current settlement state.
func (p *Payment) Status() Status {
	return p.status
}

// FailureReason returns the recorded failure cause, empty otherwise.
func (p *Payment) FailureReason() string {
	return p.failureReason
}

// PaymentDate returns the settlement time, nil until completed.
func (p *Payment) PaymentDate() *time.Time {
	return p.paymentDate
}

// RefundedAt returns the refund time, nil unless refunded.
func (p *Payment) RefundedAt() *time.Time {
	return p.refundedAt
}

// RecordedBy returns the actor who recorded the payment.
func (p *Payment) RecordedBy() kernel.Actor {
	return p.recordedBy
}

// AppliedAmount returns this payment's contribution to the owning booking's
// paid amount: the full amount when completed, the unrefunded remainder when
// refunded, zero otherwise.
func (p *Payment) AppliedAmount() (kernel.Money, error) {
	switch p.status {
	case StatusCompleted:
		return p.amount, nil
	case StatusRefunded:
		return p.amount.Sub(p.refundedAmount)
	default:
		return kernel.ZeroMoney(p.amount.Currency())
	}
}

// Complete settles a pending payment and stamps the payment date.
func (p *Payment) Complete(now time.Time) error {
	next, err := p.status.TransitionTo(StatusCompleted)
	if err != nil {
		return err
	}

	p.status = next
	p.paymentDate = &now
	p.failureReason = ""
	return nil
}

// Fail marks a pending payment as failed. The reason is mandatory and kept
// for the retry decision.
func (p *Payment) Fail(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("failure reason")
	}

	next, err := p.status.TransitionTo(StatusFailed)
	if err != nil {
		return err
	}

	p.status = next
	p.failureReason = reason
	return nil
}

// Cancel withdraws a pending payment before settlement.
func (p *Payment) Cancel() error {
	next, err := p.status.TransitionTo(StatusCancelled)
	if err != nil {
		return err
	}

	p.status = next
	return nil
}

// Retry returns a failed payment to the settlement queue.
func (p *Payment) Retry() error {
	next, err := p.status.TransitionTo(StatusPending)
	if err != nil {
		return err
	}

	p.status = next
	p.failureReason = ""
	return nil
}

// Refund returns part or all of a completed payment. The refund must not
// exceed the original amount.
func (p *Payment) Refund(amount kernel.Money, now time.Time) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if amount.IsZero() {
		return errs.NewValueIsInvalidError("refund amount")
	}
	exceeds, err := amount.GreaterThan(p.amount)
	if err != nil {
		return err
	}
	if exceeds {
		return errs.NewAmountMismatchErrorWithCause("refund amount",
			fmt.Errorf("refund %s exceeds payment %s", amount, p.amount))
	}

	next, err := p.status.TransitionTo(StatusRefunded)
	if err != nil {
		return err
	}

	p.status = next
	p.refundedAmount = amount
	p.refundedAt = &now
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("payment reference")
	}
	p.reference = reference
	return nil
}

func (p *Payment) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	p.bookingID = bookingID
	return nil
}

func (p *Payment) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	p.customerID = customerID
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if amount.IsZero() {
		return errs.NewValueIsInvalidError("payment amount")
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *Payment) setRecordedBy(recordedBy kernel.Actor) error {
	if err := recordedBy.Validate(); err != nil {
		return err
	}
	p.recordedBy = recordedBy
	return nil
}
