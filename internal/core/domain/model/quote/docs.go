// Package quote provides the Quote aggregate for priced shipping offers.
//
// The package includes:
//   - Quote: The aggregate root owning pricing and the validity window
//   - Status: A state machine enforcing quote lifecycle transitions
//   - Fee: A named additional charge on top of the route base price
//   - VehicleSnapshot: Vehicle details frozen at quote creation
//
// Key business rules:
//   - total_amount always equals base_price plus the sum of all fees, and is
//     recomputed on every price-touching edit
//   - Status follows Pending -> {Approved, Rejected, Expired} and
//     Approved -> Converted; conversion is one-way and at-most-once
//   - Only pending quotes may be repriced or have their validity extended
//   - A quote expires only while pending; the expiration sweep never touches
//     approved, rejected, or converted quotes
package quote
