package services

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
)

// Pricing is the result of a price computation: the route's base price and
// the total including all additional fees, both rounded to the currency's
// minor unit.
type Pricing struct {
	BasePrice   kernel.Money
	TotalAmount kernel.Money
}

// PricingCalculator is a domain service computing the price of shipping a
// vehicle over a route. It is pure: the result is persisted onto the quote
// at creation and on every pricing edit, never derived lazily, so an
// approved quote stays stable even if route rates later change.
//
// The total is the arithmetic sum of the base price and all fee amounts.
// Fees are non-negative by construction, so the total can never undercut
// the base price.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// Compute prices a shipment from the route's base rate, the vehicle being
// shipped, and an ordered list of named fees. The vehicle must be a resolved
// snapshot so dimensions and identity are fixed at pricing time.
func (PricingCalculator) Compute(
	baseRate kernel.Money,
	vehicle quote.VehicleSnapshot,
	additionalFees []quote.Fee,
) (Pricing, error) {
	if err := baseRate.Validate(); err != nil {
		return Pricing{}, err
	}
	if err := vehicle.Validate(); err != nil {
		return Pricing{}, err
	}

	total := baseRate
	for _, fee := range additionalFees {
		if err := fee.Validate(); err != nil {
			return Pricing{}, err
		}

		sum, err := total.Add(fee.Amount())
		if err != nil {
			return Pricing{}, err
		}
		total = sum
	}

	return Pricing{BasePrice: baseRate, TotalAmount: total}, nil
}
