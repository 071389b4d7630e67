// Package farm contains the pure business logic for farm records.
// This is part of the Functional Core - no I/O, only pure functions.
package farm

import (
	"github.com/example/farmhand/internal/core/farmerr"
	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
	Fields  []farmerr.FieldError
}

// Error returns the guard result as a validation error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return farmerr.Validation("", r.Reason, r.Fields...)
}

// CanSaveFarm evaluates a canonical farm record before it is written.
// Rules:
// - Name and location must be non-empty
// - Size must be a positive number
// - Size unit must be acres, hectares or square_feet
func CanSaveFarm(rec map[string]any) (models.Farm, GuardResult) {
	r := normalize.NewReader(rec)
	f := models.Farm{
		Name:      r.RequiredText("Name"),
		Location:  r.RequiredText("location"),
		Size:      r.PositiveDecimal("size"),
		SizeUnit:  r.OneOf("size_unit", models.SizeUnits),
		CreatedAt: r.Text("created_at"),
	}
	if errs := r.Errors(); len(errs) > 0 {
		return f, GuardResult{Allowed: false, Reason: "invalid farm", Fields: errs}
	}
	return f, GuardResult{Allowed: true}
}
