// Package transaction contains the pure business logic for financial
// transactions.
package transaction

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

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return farmerr.Validation("", r.Reason, r.Fields...)
}

// CategoriesFor returns the category vocabulary for a transaction type.
func CategoriesFor(txnType string) []string {
	if txnType == models.TransactionIncome {
		return models.IncomeCategories
	}
	return models.ExpenseCategories
}

// CanSaveTransaction evaluates a canonical transaction record before it is written.
// Rules:
// - farm_id must parse to a positive id
// - type is expense or income, and category belongs to that type's vocabulary
// - amount is a positive magnitude
// - date and description are required
func CanSaveTransaction(rec map[string]any) (models.Transaction, GuardResult) {
	r := normalize.NewReader(rec)
	t := models.Transaction{
		FarmID:      r.FK("farm_id"),
		Type:        r.OneOf("type", []string{models.TransactionExpense, models.TransactionIncome}),
		Amount:      r.PositiveDecimal("amount"),
		Date:        r.Date("date", true),
		Description: r.RequiredText("description"),
	}
	if r.Failed("type") {
		t.Category = r.RequiredText("category")
	} else {
		t.Category = r.OneOf("category", CategoriesFor(t.Type))
	}

	if errs := r.Errors(); len(errs) > 0 {
		return t, GuardResult{Allowed: false, Reason: "invalid transaction", Fields: errs}
	}
	return t, GuardResult{Allowed: true}
}
