// Package inventory contains the pure business logic for inventory items.
// This is part of the Functional Core - no I/O, only pure functions.
package inventory

import (
	"fmt"

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

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return farmerr.Validation("", r.Reason, r.Fields...)
}

// StockUpdateContext provides context for stock update guards.
type StockUpdateContext struct {
	ItemID      int64
	NewStock    int
	MaxCapacity int
}

// CanSaveItem evaluates a canonical inventory record before it is written.
// Rules:
// - name and unit are required, category comes from InventoryCategories
// - max_capacity is positive
// - current_stock and minimum_threshold lie within [0, max_capacity]
func CanSaveItem(rec map[string]any) (models.InventoryItem, GuardResult) {
	r := normalize.NewReader(rec)
	item := models.InventoryItem{
		Name:          r.RequiredText("Name"),
		Category:      r.OneOf("category", models.InventoryCategories),
		Unit:          r.RequiredText("unit"),
		Supplier:      r.Text("supplier"),
		LastRestocked: r.Date("last_restocked", false),
	}

	maxCapacity, maxOK := r.Int("max_capacity")
	if maxOK && maxCapacity <= 0 {
		r.Fail("max_capacity", "must be greater than zero")
		maxOK = false
	}
	item.MaxCapacity = maxCapacity

	if n, ok := r.Int("current_stock"); ok {
		item.CurrentStock = n
		if n < 0 || (maxOK && n > maxCapacity) {
			r.Fail("current_stock", fmt.Sprintf("must be between 0 and maximum capacity %d", maxCapacity))
		}
	}
	if n, ok := r.Int("minimum_threshold"); ok {
		item.MinimumThreshold = n
		if n < 0 || (maxOK && n > maxCapacity) {
			r.Fail("minimum_threshold", fmt.Sprintf("must be between 0 and maximum capacity %d", maxCapacity))
		}
	}

	if errs := r.Errors(); len(errs) > 0 {
		return item, GuardResult{Allowed: false, Reason: "invalid inventory item", Fields: errs}
	}
	return item, GuardResult{Allowed: true}
}

// CanUpdateStock evaluates whether a stock level may be written.
// Rule: 0 <= new stock <= max capacity. Out-of-range values are rejected, never clamped.
func CanUpdateStock(ctx StockUpdateContext) GuardResult {
	if ctx.NewStock < 0 || ctx.NewStock > ctx.MaxCapacity {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("stock amount %d must be between 0 and maximum capacity %d", ctx.NewStock, ctx.MaxCapacity),
		}
	}
	return GuardResult{Allowed: true}
}

// IsLowStock reports whether an item is at or below its reorder threshold.
func IsLowStock(item models.InventoryItem) bool {
	return item.CurrentStock <= item.MinimumThreshold
}
