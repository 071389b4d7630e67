package inventory

import (
	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/models"
)

// FromRecord builds an InventoryItem from a canonical record.
func FromRecord(rec map[string]any) models.InventoryItem {
	id, _ := normalize.ParseID(rec[normalize.IDField])
	current, _ := normalize.Int(rec["current_stock"])
	maxCapacity, _ := normalize.Int(rec["max_capacity"])
	threshold, _ := normalize.Int(rec["minimum_threshold"])
	return models.InventoryItem{
		ID:               id,
		Name:             normalize.String(rec["Name"]),
		Category:         normalize.String(rec["category"]),
		CurrentStock:     current,
		MaxCapacity:      maxCapacity,
		Unit:             normalize.String(rec["unit"]),
		Supplier:         normalize.String(rec["supplier"]),
		MinimumThreshold: threshold,
		LastRestocked:    normalize.String(rec["last_restocked"]),
	}
}

// ToRecord renders an InventoryItem in the storage naming convention, without Id.
func ToRecord(item models.InventoryItem) map[string]any {
	return map[string]any{
		"Name":              item.Name,
		"category":          item.Category,
		"current_stock":     item.CurrentStock,
		"max_capacity":      item.MaxCapacity,
		"unit":              item.Unit,
		"supplier":          item.Supplier,
		"minimum_threshold": item.MinimumThreshold,
		"last_restocked":    item.LastRestocked,
	}
}
