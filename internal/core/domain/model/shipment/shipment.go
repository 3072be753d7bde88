package shipment

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")
)

// TrackingPrefix starts every tracking number, e.g. "TRK202609000042".
const TrackingPrefix = "TRK"

// NewTrackingNumber formats a customer-facing tracking number from the
// creation month and a monthly sequence number.
func NewTrackingNumber(now time.Time, sequence int) string {
	return fmt.Sprintf("%s%s%06d", TrackingPrefix, now.Format("200601"), sequence)
}

// Shipment is the physical-transit tracking record attached one-to-one to a
// confirmed booking. The stage moves forward only; progress and delay are
// never stored, they are derived from the stage and the arrival dates on
// every read.
type Shipment struct {
	id               kernel.UUID
	trackingNumber   string
	bookingID        kernel.UUID
	carrierName      string
	departurePort    string
	arrivalPort      string
	departureDate    *time.Time
	estimatedArrival *time.Time
	actualArrival    *time.Time
	currentLocation  string
	status           Status

	isConstructed bool
}

// NewShipment creates a shipment in the Preparing stage. Dates may be nil
// when the carrier has not committed to a schedule yet.
func NewShipment(
	id kernel.UUID,
	trackingNumber string,
	bookingID kernel.UUID,
	carrierName string,
	departurePort string,
	arrivalPort string,
	departureDate *time.Time,
	estimatedArrival *time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:           Preparing,
		departureDate:    departureDate,
		estimatedArrival: estimatedArrival,
		isConstructed:    true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setBookingID(bookingID),
		s.setCarrierName(carrierName),
		s.setPorts(departurePort, arrivalPort),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence.
func RestoreShipment(
	id kernel.UUID,
	trackingNumber string,
	bookingID kernel.UUID,
	carrierName string,
	departurePort string,
	arrivalPort string,
	departureDate *time.Time,
	estimatedArrival *time.Time,
	actualArrival *time.Time,
	currentLocation string,
	status Status,
) (*Shipment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	s := &Shipment{
		status:           status,
		departureDate:    departureDate,
		estimatedArrival: estimatedArrival,
		actualArrival:    actualArrival,
		currentLocation:  currentLocation,
		isConstructed:    true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setBookingID(bookingID),
		s.setCarrierName(carrierName),
		s.setPorts(departurePort, arrivalPort),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrackingNumber returns the customer-facing tracking number.
func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

// BookingID returns the owning booking's identifier.
func (s *Shipment) BookingID() kernel.UUID {
	return s.bookingID
}

// CarrierName returns the carrier operating the transit.
func (s *Shipment) CarrierName() string {
	return s.carrierName
}

// DeparturePort returns the origin port.
func (s *Shipment) DeparturePort() string {
	return s.departurePort
}

// ArrivalPort returns the destination port.
func (s *Shipment) ArrivalPort() string {
	return s.arrivalPort
}

// DepartureDate returns the scheduled departure, nil when uncommitted.
func (s *Shipment) DepartureDate() *time.Time {
	return s.departureDate
}

// EstimatedArrival returns the carrier's estimate, nil when uncommitted.
func (s *Shipment) EstimatedArrival() *time.Time {
	return s.estimatedArrival
}

// ActualArrival returns the arrival time, set on the Delivered edge.
func (s *Shipment) ActualArrival() *time.Time {
	return s.actualArrival
}

// CurrentLocation returns the last reported location, free text.
func (s *Shipment) CurrentLocation() string {
	return s.currentLocation
}

// Status returns the current physical stage.
func (s *Shipment) Status() Status {
	return s.status
}

// UpdateStatus advances the stage. Entering Delivered stamps the actual
// arrival time.
func (s *Shipment) UpdateStatus(newStatus Status, now time.Time) error {
	next, err := s.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	s.status = next
	if next == Delivered {
		s.actualArrival = &now
	}
	return nil
}

// UpdateLocation records the last reported position as free text.
func (s *Shipment) UpdateLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	if s.status.IsTerminal() {
		return errs.NewInvalidTransitionError("shipment", s.status.String(), "relocated")
	}
	s.currentLocation = location
	return nil
}

// UpdateEstimatedArrival records a revised carrier estimate.
func (s *Shipment) UpdateEstimatedArrival(estimated time.Time) error {
	if s.status.IsTerminal() {
		return errs.NewInvalidTransitionError("shipment", s.status.String(), "rescheduled")
	}
	s.estimatedArrival = &estimated
	return nil
}

// Progress derives the completion percentage at the given instant: 0 while
// preparing, 100 once delivered, and a linear interpolation between departure
// and estimated arrival in between, clamped to [0, 100]. Missing dates pin
// intermediate stages at 0.
func (s *Shipment) Progress(now time.Time) int {
	switch {
	case s.status == Delivered:
		return 100
	case s.status == Preparing:
		return 0
	}

	if s.departureDate == nil || s.estimatedArrival == nil {
		return 0
	}
	window := s.estimatedArrival.Sub(*s.departureDate)
	if window <= 0 {
		return 0
	}

	elapsed := now.Sub(*s.departureDate)
	percent := int(elapsed * 100 / window)
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// IsDelayed derives the delay overlay: true while the shipment is not yet
// delivered and the estimated arrival has passed. The underlying stage is
// untouched, so a shipment reads as in_transit and delayed at once.
func (s *Shipment) IsDelayed(now time.Time) bool {
	if s.status == Delivered || s.estimatedArrival == nil {
		return false
	}
	return now.After(*s.estimatedArrival)
}

// DaysDelayed returns the delay in whole days, floored at zero.
func (s *Shipment) DaysDelayed(now time.Time) int {
	if !s.IsDelayed(now) {
		return 0
	}
	return int(now.Sub(*s.estimatedArrival).Hours() / 24)
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	s.bookingID = bookingID
	return nil
}

func (s *Shipment) setCarrierName(carrierName string) error {
	if carrierName == "" {
		return errs.NewValueIsRequiredError("carrier name")
	}
	s.carrierName = carrierName
	return nil
}

func (s *Shipment) setPorts(departurePort, arrivalPort string) error {
	if departurePort == "" {
		return errs.NewValueIsRequiredError("departure port")
	}
	if arrivalPort == "" {
		return errs.NewValueIsRequiredError("arrival port")
	}
	s.departurePort = departurePort
	s.arrivalPort = arrivalPort
	return nil
}
