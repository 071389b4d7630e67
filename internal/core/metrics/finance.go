package metrics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/models"
)

// MonthBucket is one calendar month of a rollup.
type MonthBucket struct {
	Month   string // YYYY-MM
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// Rollup is a monthly income and expense series with overall totals.
// Transactions with unparseable dates are counted in Skipped and left out
// of both the buckets and the totals.
type Rollup struct {
	Buckets      []MonthBucket
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
	Skipped      int
}

// MonthlyRollup groups transactions by the calendar month of their date.
// Buckets are sorted chronologically ascending.
func MonthlyRollup(txns []models.Transaction) Rollup {
	byMonth := make(map[string]*MonthBucket)
	r := Rollup{TotalIncome: decimal.Zero, TotalExpense: decimal.Zero}

	for _, txn := range txns {
		d, ok := normalize.ParseDate(txn.Date)
		if !ok {
			r.Skipped++
			continue
		}
		key := d.Format("2006-01")
		b, exists := byMonth[key]
		if !exists {
			b = &MonthBucket{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			byMonth[key] = b
		}
		if txn.Type == models.TransactionIncome {
			b.Income = b.Income.Add(txn.Amount)
			r.TotalIncome = r.TotalIncome.Add(txn.Amount)
		} else {
			b.Expense = b.Expense.Add(txn.Amount)
			r.TotalExpense = r.TotalExpense.Add(txn.Amount)
		}
	}

	r.Buckets = make([]MonthBucket, 0, len(byMonth))
	for _, b := range byMonth {
		b.Net = b.Income.Sub(b.Expense)
		r.Buckets = append(r.Buckets, *b)
	}
	sort.Slice(r.Buckets, func(i, j int) bool { return r.Buckets[i].Month < r.Buckets[j].Month })
	r.Net = r.TotalIncome.Sub(r.TotalExpense)
	return r
}

// Summary is the headline of the finances view.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
	Count         int
}

// FinancialSummary totals every transaction regardless of date.
func FinancialSummary(txns []models.Transaction) Summary {
	s := Summary{TotalIncome: decimal.Zero, TotalExpenses: decimal.Zero, Count: len(txns)}
	for _, txn := range txns {
		if txn.Type == models.TransactionIncome {
			s.TotalIncome = s.TotalIncome.Add(txn.Amount)
		} else {
			s.TotalExpenses = s.TotalExpenses.Add(txn.Amount)
		}
	}
	s.NetProfit = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}
