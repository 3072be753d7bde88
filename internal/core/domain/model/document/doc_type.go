package document

import (
	"errors"

	"shipping/internal/pkg/errs"
)

// Type classifies an uploaded compliance or identity document.
type Type int

const (
	// TypeUnknown represents an invalid or undefined document type.
	TypeUnknown Type = iota

	// TypePassport is the customer's identity passport.
	TypePassport

	// TypeLicense is a driving or import license.
	TypeLicense

	// TypeInvoice is the purchase invoice for the vehicle.
	TypeInvoice

	// TypeInsurance is the transit insurance certificate.
	TypeInsurance

	// TypeCustoms is a customs declaration or clearance form.
	TypeCustoms

	// TypeOther is any supporting document outside the fixed set.
	TypeOther
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:   "unknown",
		TypePassport:  "passport",
		TypeLicense:   "license",
		TypeInvoice:   "invoice",
		TypeInsurance: "insurance",
		TypeCustoms:   "customs",
		TypeOther:     "other",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypePassport:  "passport",
		TypeLicense:   "license",
		TypeInvoice:   "invoice",
		TypeInsurance: "insurance",
		TypeCustoms:   "customs",
		TypeOther:     "other",
	}
}

// Validate checks if the Type value is one of the defined document types.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("document type",
			errors.New(t.String()+" is not a valid document type"))
	}
	return nil
}

// String returns the persisted name of the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// TypeFromString parses a persisted document type name.
func TypeFromString(s string) (Type, error) {
	for docType, name := range getValidTypeStrings() {
		if name == s {
			return docType, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("document type",
		errors.New(s+" is not a valid document type"))
}
