package metrics

import (
	"sort"
	"strings"

	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/models"
)

func isAll(filter string) bool {
	filter = strings.TrimSpace(filter)
	return filter == "" || strings.EqualFold(filter, models.FilterAll)
}

// FilterByFarm returns the items owned by farm, where farm is a raw id or
// the "all" sentinel. An unparseable id matches nothing. The input slice
// is never modified.
func FilterByFarm[T models.FarmScoped](items []T, farm string) []T {
	if isAll(farm) {
		return append([]T{}, items...)
	}
	out := []T{}
	id, err := normalize.ParseID(farm)
	if err != nil {
		return out
	}
	for _, item := range items {
		if item.FarmRef() == id {
			out = append(out, item)
		}
	}
	return out
}

// FilterByCategory returns inventory items in category, or every item for
// the "all" sentinel.
func FilterByCategory(items []models.InventoryItem, category string) []models.InventoryItem {
	if isAll(category) {
		return append([]models.InventoryItem{}, items...)
	}
	out := []models.InventoryItem{}
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// FilterTransactions narrows by farm and type ("all" for either) and
// orders the result newest first. Unparseable dates sort last.
func FilterTransactions(txns []models.Transaction, farm, txnType string) []models.Transaction {
	scoped := FilterByFarm(txns, farm)
	out := scoped[:0]
	for _, txn := range scoped {
		if isAll(txnType) || txn.Type == txnType {
			out = append(out, txn)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, okI := normalize.ParseDate(out[i].Date)
		dj, okJ := normalize.ParseDate(out[j].Date)
		if okI && okJ {
			return di.After(dj)
		}
		return okI && !okJ
	})
	return out
}
