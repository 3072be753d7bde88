package kernel

import (
	"fmt"

	"shipping/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is applied when a quote or booking is created without an
// explicit currency.
const DefaultCurrency Currency = "USD"

// Currency is an ISO 4217 alphabetic currency code.
type Currency string

// NewCurrency validates and normalizes a currency code.
// The code must be exactly three uppercase letters.
func NewCurrency(code string) (Currency, error) {
	if code == "" {
		return "", errs.NewValueIsRequiredError("currency")
	}
	if len(code) != 3 {
		return "", errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a 3-letter currency code", code))
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", errs.NewValueIsInvalidErrorWithCause("currency",
				fmt.Errorf("%q is not a 3-letter currency code", code))
		}
	}
	return Currency(code), nil
}

func (c Currency) String() string {
	return string(c)
}

// Validate checks the currency code is well formed.
func (c Currency) Validate() error {
	_, err := NewCurrency(string(c))
	return err
}

// Money is a value object pairing a decimal amount with a currency.
// Amounts are always rounded to the currency's minor-unit precision
// (two decimal places for the currencies in scope), so arithmetic on Money
// never accumulates sub-cent noise.
//
// Money is immutable; arithmetic methods return new values. Operations across
// different currencies fail with an AmountMismatchError rather than silently
// mixing units.
//
// Example usage:
//
//	base, _ := kernel.NewMoneyFromString("2000.00", kernel.DefaultCurrency)
//	fee, _ := kernel.NewMoneyFromString("150.00", kernel.DefaultCurrency)
//	total, _ := base.Add(fee) // 2150.00 USD
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates a Money value from a decimal amount.
// The amount must be non-negative and is rounded to two decimal places.
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if err := currency.Validate(); err != nil {
		return Money{}, err
	}
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount.Round(2), currency: currency}, nil
}

// NewMoneyFromString creates a Money value from a decimal string such as "2150.00".
func NewMoneyFromString(amount string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d, currency)
}

// ZeroMoney creates a zero amount in the given currency.
func ZeroMoney(currency Currency) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() Currency {
	return m.currency
}

// Add returns the sum of two Money values of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Sub returns the difference of two Money values of the same currency.
// The result may not be negative.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, errs.NewAmountMismatchErrorWithCause("amount",
			fmt.Errorf("%s - %s is negative", m.amount.String(), other.amount.String()))
	}
	return Money{amount: result, currency: m.currency}, nil
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual reports whether two Money values have the same amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// GreaterThan reports whether m exceeds other. Both must share a currency.
func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

// GreaterThanOrEqual reports whether m is at least other. Both must share a currency.
func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThanOrEqual(other.amount), nil
}

// String renders the amount with two decimal places and the currency code,
// e.g. "2150.00 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}

// Validate checks the Money value was created through a constructor.
func (m Money) Validate() error {
	if m.currency == "" {
		return errs.NewValueIsRequiredError("money must be created via NewMoney")
	}
	return m.currency.Validate()
}

func (m Money) sameCurrency(other Money) error {
	if m.currency != other.currency {
		return errs.NewAmountMismatchErrorWithCause("currency",
			fmt.Errorf("cannot combine %s with %s", m.currency, other.currency))
	}
	return nil
}
