// Package shipment contains the Shipment aggregate, the physical-transit
// record attached one-to-one to a confirmed booking.
//
// The stage chain is preparing -> in_transit -> customs -> delivered, forward
// only with skips allowed. Progress percentage and the delayed overlay are
// derived on read from the stage and the arrival dates; neither is stored,
// and delay never replaces the underlying stage.
package shipment
