// Package kafka publishes lifecycle notifications to Kafka topics. It is the
// outbound notification adapter; handlers treat publish failures as
// non-fatal and never roll back a committed transaction over them.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/document"
	"shipping/internal/core/domain/model/quote"

	segmentio "github.com/segmentio/kafka-go"
)

// Writer is the subset of the segmentio kafka.Writer used by the notifier.
// Narrowing the dependency keeps the notifier testable without a broker.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...segmentio.Message) error
	Close() error
}

// Notifier implements ports.Notifier over a Kafka topic. Every event is one
// JSON message keyed by the aggregate ID so per-aggregate ordering holds
// within a partition.
type Notifier struct {
	writer Writer
}

// NewNotifier creates a notifier writing to the given broker and topic.
func NewNotifier(brokerURL, topic string) *Notifier {
	return &Notifier{
		writer: &segmentio.Writer{
			Addr:     segmentio.TCP(brokerURL),
			Topic:    topic,
			Balancer: &segmentio.LeastBytes{},
		},
	}
}

// NewNotifierWithWriter allows injecting a test writer.
func NewNotifierWithWriter(w Writer) *Notifier {
	return &Notifier{writer: w}
}

// quoteDecidedEvent is the payload published when a quote reaches a decision
// state: approved, rejected, expired, or converted.
type quoteDecidedEvent struct {
	EventType       string    `json:"event_type"`
	QuoteID         string    `json:"quote_id"`
	Reference       string    `json:"reference"`
	CustomerID      string    `json:"customer_id"`
	Status          string    `json:"status"`
	TotalAmount     string    `json:"total_amount"`
	ValidUntil      time.Time `json:"valid_until"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
}

// NotifyQuoteDecided publishes a quote decision event.
func (n *Notifier) NotifyQuoteDecided(ctx context.Context, aggregate *quote.Quote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return n.publish(ctx, aggregate.ID().String(), quoteDecidedEvent{
		EventType:       "quote.decided",
		QuoteID:         aggregate.ID().String(),
		Reference:       aggregate.Reference(),
		CustomerID:      aggregate.CustomerID().String(),
		Status:          aggregate.Status().String(),
		TotalAmount:     aggregate.TotalAmount().String(),
		ValidUntil:      aggregate.ValidUntil(),
		RejectionReason: aggregate.RejectionReason(),
	})
}

// bookingStatusChangedEvent is the payload published on every booking status
// transition, including cancellation.
type bookingStatusChangedEvent struct {
	EventType          string `json:"event_type"`
	BookingID          string `json:"booking_id"`
	Reference          string `json:"reference"`
	CustomerID         string `json:"customer_id"`
	Status             string `json:"status"`
	TotalAmount        string `json:"total_amount"`
	PaidAmount         string `json:"paid_amount"`
	Coverage           string `json:"coverage"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
}

// NotifyBookingStatusChanged publishes a booking status transition event.
func (n *Notifier) NotifyBookingStatusChanged(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	coverage, err := aggregate.Coverage()
	if err != nil {
		return err
	}

	return n.publish(ctx, aggregate.ID().String(), bookingStatusChangedEvent{
		EventType:          "booking.status_changed",
		BookingID:          aggregate.ID().String(),
		Reference:          aggregate.Reference(),
		CustomerID:         aggregate.CustomerID().String(),
		Status:             aggregate.Status().String(),
		TotalAmount:        aggregate.TotalAmount().String(),
		PaidAmount:         aggregate.PaidAmount().String(),
		Coverage:           coverage.String(),
		CancellationReason: aggregate.CancellationReason(),
	})
}

// documentReviewedEvent is the payload published when an operator decides on
// a document: approval, rejection, or revision request.
type documentReviewedEvent struct {
	EventType        string `json:"event_type"`
	DocumentID       string `json:"document_id"`
	BookingID        string `json:"booking_id"`
	CustomerID       string `json:"customer_id"`
	DocType          string `json:"doc_type"`
	Status           string `json:"status"`
	RejectionReason  string `json:"rejection_reason,omitempty"`
	VerificationNote string `json:"verification_note,omitempty"`
}

// NotifyDocumentReviewed publishes a document review event.
func (n *Notifier) NotifyDocumentReviewed(ctx context.Context, aggregate *document.Document) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return n.publish(ctx, aggregate.ID().String(), documentReviewedEvent{
		EventType:        "document.reviewed",
		DocumentID:       aggregate.ID().String(),
		BookingID:        aggregate.BookingID().String(),
		CustomerID:       aggregate.CustomerID().String(),
		DocType:          aggregate.Type().String(),
		Status:           aggregate.Status().String(),
		RejectionReason:  aggregate.RejectionReason(),
		VerificationNote: aggregate.VerificationNote(),
	})
}

// Close closes the underlying writer.
func (n *Notifier) Close() error {
	return n.writer.Close()
}

func (n *Notifier) publish(ctx context.Context, key string, event any) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, segmentio.Message{
		Key:   []byte(key),
		Value: value,
	})
}
