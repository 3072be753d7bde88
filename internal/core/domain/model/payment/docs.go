// Package payment contains the Payment aggregate, a monetary transaction
// applied against a booking's total amount.
//
// A payment is recorded pending and settles through complete, fail, cancel,
// refund, and retry actions. Only completed and refunded payments contribute
// to the booking's paid amount; AppliedAmount exposes the contribution and
// the ledger handlers sum it across a booking's payments.
package payment
