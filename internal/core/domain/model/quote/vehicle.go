package quote

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// VehicleSnapshot captures the shipped vehicle's details at quote creation
// time. It is a copy, not a live reference, so later edits to the vehicle
// record can never retroactively change a priced quote.
type VehicleSnapshot struct {
	make     string
	model    string
	year     int
	lengthCm int
	widthCm  int
	heightCm int
}

// NewVehicleSnapshot creates a snapshot of the vehicle being shipped.
// Make, model, and a plausible model year are mandatory; dimensions are in
// whole centimeters and may be zero when unmeasured.
func NewVehicleSnapshot(vehicleMake, model string, year, lengthCm, widthCm, heightCm int) (VehicleSnapshot, error) {
	if vehicleMake == "" {
		return VehicleSnapshot{}, errs.NewValueIsRequiredError("vehicle make")
	}
	if model == "" {
		return VehicleSnapshot{}, errs.NewValueIsRequiredError("vehicle model")
	}
	if year < 1900 || year > 2100 {
		return VehicleSnapshot{}, errs.NewValueIsInvalidErrorWithCause("vehicle year",
			fmt.Errorf("%d is not a plausible model year", year))
	}
	if lengthCm < 0 || widthCm < 0 || heightCm < 0 {
		return VehicleSnapshot{}, errs.NewValueIsInvalidError("vehicle dimensions")
	}
	return VehicleSnapshot{
		make:     vehicleMake,
		model:    model,
		year:     year,
		lengthCm: lengthCm,
		widthCm:  widthCm,
		heightCm: heightCm,
	}, nil
}

// Make returns the vehicle manufacturer.
func (v VehicleSnapshot) Make() string {
	return v.make
}

// Model returns the vehicle model.
func (v VehicleSnapshot) Model() string {
	return v.model
}

// Year returns the model year.
func (v VehicleSnapshot) Year() int {
	return v.year
}

// LengthCm returns the vehicle length in centimeters, zero when unmeasured.
func (v VehicleSnapshot) LengthCm() int {
	return v.lengthCm
}

// WidthCm returns the vehicle width in centimeters, zero when unmeasured.
func (v VehicleSnapshot) WidthCm() int {
	return v.widthCm
}

// HeightCm returns the vehicle height in centimeters, zero when unmeasured.
func (v VehicleSnapshot) HeightCm() int {
	return v.heightCm
}

// Description renders the snapshot as "2021 Toyota Land Cruiser".
func (v VehicleSnapshot) Description() string {
	return fmt.Sprintf("%d %s %s", v.year, v.make, v.model)
}

// Validate checks the snapshot was created through NewVehicleSnapshot.
func (v VehicleSnapshot) Validate() error {
	if v.make == "" || v.model == "" {
		return errs.NewValueIsRequiredError("vehicle snapshot must be created via NewVehicleSnapshot")
	}
	return nil
}
