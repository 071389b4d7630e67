// Package metrics derives aggregates from entity collections. Every
// function is pure; time-sensitive functions take the reference instant
// as a parameter.
package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/models"
)

// Stats are the headline dashboard figures.
type Stats struct {
	TotalFarms    int
	ActiveCrops   int
	PendingTasks  int
	MonthlyProfit decimal.Decimal
}

// Dashboard computes headline figures. MonthlyProfit covers transactions
// dated in the calendar month and year of now.
func Dashboard(farms []models.Farm, crops []models.Crop, tasks []models.Task, txns []models.Transaction, now time.Time) Stats {
	s := Stats{TotalFarms: len(farms), MonthlyProfit: decimal.Zero}
	for _, c := range crops {
		if c.Status != models.CropStatusHarvested {
			s.ActiveCrops++
		}
	}
	for _, t := range tasks {
		if !t.Completed {
			s.PendingTasks++
		}
	}
	for _, txn := range txns {
		if sameMonth(txn.Date, now) {
			s.MonthlyProfit = s.MonthlyProfit.Add(txn.Signed())
		}
	}
	return s
}

func sameMonth(raw string, now time.Time) bool {
	d, ok := normalize.ParseDate(raw)
	if !ok {
		return false
	}
	return d.Year() == now.Year() && d.Month() == now.Month()
}

// StatusCount pairs a crop status with the number of crops in it.
type StatusCount struct {
	Status string
	Count  int
}

// CropStatusCounts counts crops per status in lifecycle order. Statuses
// outside the known lifecycle are appended in order of first appearance.
func CropStatusCounts(crops []models.Crop) []StatusCount {
	counts := make(map[string]int, len(models.CropStatuses))
	var extra []string
	for _, c := range crops {
		if _, seen := counts[c.Status]; !seen && !isKnownStatus(c.Status) {
			extra = append(extra, c.Status)
		}
		counts[c.Status]++
	}

	out := make([]StatusCount, 0, len(models.CropStatuses)+len(extra))
	for _, status := range append(append([]string{}, models.CropStatuses...), extra...) {
		out = append(out, StatusCount{Status: status, Count: counts[status]})
	}
	return out
}

func isKnownStatus(status string) bool {
	for _, s := range models.CropStatuses {
		if s == status {
			return true
		}
	}
	return false
}
