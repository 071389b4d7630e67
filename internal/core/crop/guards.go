// Package crop contains the pure business logic for crop records.
// This is part of the Functional Core - no I/O, only pure functions.
package crop

import (
	"github.com/example/farmhand/internal/core/farmerr"
	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	Fields  []farmerr.FieldError
}

// Error returns the guard result as a validation error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return farmerr.Validation("", r.Reason, r.Fields...)
}

// CanSaveCrop evaluates a canonical crop record before it is written.
// Rules:
// - farm_id must parse to a positive id
// - crop_type and status come from their fixed vocabularies
// - expected_harvest_date must fall strictly after planting_date
// - area must be a positive number of acres
func CanSaveCrop(rec map[string]any) (models.Crop, GuardResult) {
	r := normalize.NewReader(rec)
	c := models.Crop{
		Name:                r.Text("Name"),
		FarmID:              r.FK("farm_id"),
		CropType:            r.OneOf("crop_type", models.CropTypes),
		PlantingDate:        r.Date("planting_date", true),
		ExpectedHarvestDate: r.Date("expected_harvest_date", true),
		Status:              r.OneOf("status", models.CropStatuses),
		Area:                r.PositiveDecimal("area"),
		Notes:               r.Text("notes"),
	}

	if !r.Failed("planting_date") && !r.Failed("expected_harvest_date") {
		planted, _ := normalize.ParseDate(c.PlantingDate)
		harvest, _ := normalize.ParseDate(c.ExpectedHarvestDate)
		if !harvest.After(planted) {
			r.Fail("expected_harvest_date", "must be after the planting date")
		}
	}

	if errs := r.Errors(); len(errs) > 0 {
		return c, GuardResult{Allowed: false, Reason: "invalid crop", Fields: errs}
	}
	return c, GuardResult{Allowed: true}
}
