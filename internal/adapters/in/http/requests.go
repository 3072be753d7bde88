package http

import (
	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/document"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
	"shipping/internal/pkg/errs"
)

// MoneyRequest carries a monetary amount as a decimal string. An empty
// currency falls back to the default currency.
type MoneyRequest struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

func (r MoneyRequest) toMoney() (kernel.Money, error) {
	currency := kernel.DefaultCurrency
	if r.Currency != "" {
		parsed, err := kernel.NewCurrency(r.Currency)
		if err != nil {
			return kernel.Money{}, err
		}
		currency = parsed
	}
	return kernel.NewMoneyFromString(r.Amount, currency)
}

// ActorRequest identifies who performs an operation.
type ActorRequest struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

func (r ActorRequest) toActor() (kernel.Actor, error) {
	id, err := parseUUID("actor id", r.ID)
	if err != nil {
		return kernel.Actor{}, err
	}

	switch r.Kind {
	case "operator":
		return kernel.NewOperatorActor(id), nil
	case "customer":
		return kernel.NewCustomerActor(id), nil
	default:
		return kernel.Actor{}, errs.NewValueIsInvalidError("actor kind")
	}
}

// VehicleRequest describes the vehicle a quote prices.
type VehicleRequest struct {
	Make     string `json:"make"`
	Model    string `json:"model"`
	Year     int    `json:"year"`
	LengthCm int    `json:"length_cm"`
	WidthCm  int    `json:"width_cm"`
	HeightCm int    `json:"height_cm"`
}

func (r VehicleRequest) toVehicle() (quote.VehicleSnapshot, error) {
	return quote.NewVehicleSnapshot(r.Make, r.Model, r.Year, r.LengthCm, r.WidthCm, r.HeightCm)
}

// FeeRequest is a named surcharge line on a quote.
type FeeRequest struct {
	Name   string       `json:"name"`
	Amount MoneyRequest `json:"amount"`
}

func toFees(requests []FeeRequest) ([]quote.Fee, error) {
	if len(requests) == 0 {
		return nil, nil
	}

	fees := make([]quote.Fee, 0, len(requests))
	for _, r := range requests {
		amount, err := r.Amount.toMoney()
		if err != nil {
			return nil, err
		}
		fee, err := quote.NewFee(r.Name, amount)
		if err != nil {
			return nil, err
		}
		fees = append(fees, fee)
	}
	return fees, nil
}

// RecipientRequest describes who receives the vehicle at destination.
type RecipientRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	AddressLine string `json:"address_line"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

func (r RecipientRequest) toRecipient() (booking.Recipient, error) {
	return booking.NewRecipient(r.Name, r.Phone, r.Email, r.AddressLine, r.City, r.Country)
}

// FileRequest describes an uploaded document file.
type FileRequest struct {
	Name        string `json:"name"`
	StoragePath string `json:"storage_path"`
	SizeBytes   int64  `json:"size_bytes"`
	MimeType    string `json:"mime_type"`
}

func (r FileRequest) toFileMeta() (document.FileMeta, error) {
	return document.NewFileMeta(r.Name, r.StoragePath, r.SizeBytes, r.MimeType)
}

func parseUUID(paramName, value string) (kernel.UUID, error) {
	if value == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(paramName)
	}
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}
