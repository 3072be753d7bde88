package payment

import (
	"errors"

	"shipping/internal/pkg/errs"
)

// Method identifies how a payment was made.
type Method int

const (
	// MethodUnknown represents an invalid or undefined payment method.
	MethodUnknown Method = iota

	// MethodBankTransfer is a wire or SEPA transfer.
	MethodBankTransfer

	// MethodMobileMoney is a mobile wallet payment.
	MethodMobileMoney

	// MethodCreditCard is a card payment.
	MethodCreditCard

	// MethodCash is a cash payment recorded by an operator.
	MethodCash
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown:      "unknown",
		MethodBankTransfer: "bank_transfer",
		MethodMobileMoney:  "mobile_money",
		MethodCreditCard:   "credit_card",
		MethodCash:         "cash",
	}
}

func getValidMethodStrings() map[Method]string {
	//nolint:exhaustive // MethodUnknown is intentionally excluded as it's invalid
	return map[Method]string{
		MethodBankTransfer: "bank_transfer",
		MethodMobileMoney:  "mobile_money",
		MethodCreditCard:   "credit_card",
		MethodCash:         "cash",
	}
}

// Validate checks if the Method value is one of the defined payment methods.
func (m Method) Validate() error {
	if _, ok := getValidMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			errors.New(m.String()+" is not a valid payment method"))
	}
	return nil
}

// String returns the persisted name of the method.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// MethodFromString parses a persisted payment method name.
func MethodFromString(s string) (Method, error) {
	for method, name := range getValidMethodStrings() {
		if name == s {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause("payment method",
		errors.New(s+" is not a valid payment method"))
}
