// Package kernel provides shared value objects used across all aggregates of
// the shipping domain.
//
// The package includes:
//   - UUID: An immutable identifier wrapping github.com/google/uuid
//   - Money: A currency-aware decimal amount with minor-unit rounding
//   - Currency: An ISO 4217 alphabetic currency code
//   - Actor: A discriminated {kind, id} reference to the identity behind a
//     mutating call (operator or customer)
//
// All value objects are immutable, validate themselves on construction, and
// reject zero values that bypassed their constructors.
package kernel
