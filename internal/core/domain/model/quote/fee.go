package quote

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// Fee is a named additional charge applied on top of a route's base price,
// e.g. {"processing", 150.00}. Fees are an ordered list on the quote; the
// order is preserved through persistence so an itemized breakdown renders the
// way the operator entered it.
type Fee struct {
	name   string
	amount kernel.Money
}

// NewFee creates a fee with a mandatory name and a non-negative amount.
func NewFee(name string, amount kernel.Money) (Fee, error) {
	if name == "" {
		return Fee{}, errs.NewValueIsRequiredError("fee name")
	}
	if err := amount.Validate(); err != nil {
		return Fee{}, err
	}
	return Fee{name: name, amount: amount}, nil
}

// Name returns the fee's display name.
func (f Fee) Name() string {
	return f.name
}

// Amount returns the fee's amount.
func (f Fee) Amount() kernel.Money {
	return f.amount
}

// Validate checks the fee was created through NewFee.
func (f Fee) Validate() error {
	if f.name == "" {
		return errs.NewValueIsRequiredError("fee name")
	}
	return f.amount.Validate()
}

// sumFees totals an ordered fee list in the given currency, starting from zero.
func sumFees(fees []Fee, currency kernel.Currency) (kernel.Money, error) {
	total, err := kernel.ZeroMoney(currency)
	if err != nil {
		return kernel.Money{}, err
	}
	for _, fee := range fees {
		total, err = total.Add(fee.Amount())
		if err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}
