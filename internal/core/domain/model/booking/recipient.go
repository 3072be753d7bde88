package booking

import (
	"shipping/internal/pkg/errs"
)

// Recipient is the contact and address block for the person receiving the
// vehicle at the destination.
type Recipient struct {
	name        string
	phone       string
	email       string
	addressLine string
	city        string
	country     string
}

// NewRecipient creates a recipient block. Name, phone, address line, and
// country are mandatory; email and city may be empty.
func NewRecipient(name, phone, email, addressLine, city, country string) (Recipient, error) {
	if name == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient name")
	}
	if phone == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient phone")
	}
	if addressLine == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient address")
	}
	if country == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient country")
	}
	return Recipient{
		name:        name,
		phone:       phone,
		email:       email,
		addressLine: addressLine,
		city:        city,
		country:     country,
	}, nil
}

// Name returns the recipient's full name.
func (r Recipient) Name() string { return r.name }

// Phone returns the recipient's phone number.
func (r Recipient) Phone() string { return r.phone }

// Email returns the recipient's email address, possibly empty.
func (r Recipient) Email() string { return r.email }

// AddressLine returns the street address.
func (r Recipient) AddressLine() string { return r.addressLine }

// City returns the destination city, possibly empty.
func (r Recipient) City() string { return r.city }

// Country returns the destination country.
func (r Recipient) Country() string { return r.country }

// Validate checks the recipient was created through NewRecipient.
func (r Recipient) Validate() error {
	if r.name == "" || r.phone == "" || r.addressLine == "" || r.country == "" {
		return errs.NewValueIsRequiredError("recipient must be created via NewRecipient")
	}
	return nil
}
