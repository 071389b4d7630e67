package models

import "github.com/shopspring/decimal"

// Transaction is an income or expense booked against a farm.
// Amount is always a positive magnitude; the sign is implied by Type.
type Transaction struct {
	ID          int64
	FarmID      int64
	Type        string
	Category    string
	Amount      decimal.Decimal
	Date        string
	Description string
}

// Transaction types
const (
	TransactionExpense = "expense"
	TransactionIncome  = "income"
)

// ExpenseCategories lists categories valid for expenses.
var ExpenseCategories = []string{"Seeds", "Equipment", "Fertilizer", "Labor", "Fuel", "Maintenance", "Insurance", "Other"}

// IncomeCategories lists categories valid for income.
var IncomeCategories = []string{"Grain Sales", "Vegetable Sales", "Livestock Sales", "Government Subsidies", "Other"}

// Signed returns +Amount for income and -Amount for expenses.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// FarmRef returns the owning farm's id.
func (t Transaction) FarmRef() int64 { return t.FarmID }
