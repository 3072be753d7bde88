// Package booking contains the Booking aggregate, the hub of the shipping
// order lifecycle.
//
// A booking is created directly or by converting an approved quote. It moves
// along Pending -> Confirmed -> InTransit -> Delivered, with Cancelled
// reachable from every non-terminal state; the edge table lives in Status.
// Payment coverage (unpaid, partial, paid) is never stored: it is derived
// on read from the ledger-maintained paid amount and the booking total.
package booking
