// Package services provides domain services that implement business logic
// spanning more than one aggregate in the shipping system.
//
// The package includes:
//   - PricingCalculator: pure price computation persisted onto quotes
//   - DocumentChecklist: booking-level documentation completeness over the
//     required document types
package services
