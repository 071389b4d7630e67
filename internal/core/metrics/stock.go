package metrics

import "github.com/example/farmhand/internal/models"

// StockLevel is a capacity band.
type StockLevel string

// Capacity bands.
const (
	StockCritical StockLevel = "critical"
	StockLow      StockLevel = "low"
	StockMedium   StockLevel = "medium"
	StockGood     StockLevel = "good"
)

// StockStatus is the reorder state shown next to an item.
type StockStatus string

// Reorder states.
const (
	StatusOutOfStock    StockStatus = "out of stock"
	StatusReorderNeeded StockStatus = "reorder needed"
	StatusInStock       StockStatus = "in stock"
)

// StockPercentage returns current as a percentage of capacity, or 0 when
// capacity is not positive.
func StockPercentage(current, maxCapacity int) float64 {
	if maxCapacity <= 0 {
		return 0
	}
	return float64(current) / float64(maxCapacity) * 100
}

// ClassifyStock bands a stock level: 0% critical, up to 25% low, up to 60%
// medium, above that good. A capacity of zero or less is critical.
func ClassifyStock(current, maxCapacity int) StockLevel {
	if maxCapacity <= 0 || current <= 0 {
		return StockCritical
	}
	// compare current/max against band edges without float rounding
	scaled := int64(current) * 100
	limit := int64(maxCapacity)
	switch {
	case scaled <= 25*limit:
		return StockLow
	case scaled <= 60*limit:
		return StockMedium
	default:
		return StockGood
	}
}

// StockStatusOf returns the reorder state. Out of stock takes precedence
// over reorder needed.
func StockStatusOf(item models.InventoryItem) StockStatus {
	switch {
	case item.CurrentStock == 0:
		return StatusOutOfStock
	case item.CurrentStock <= item.MinimumThreshold:
		return StatusReorderNeeded
	default:
		return StatusInStock
	}
}
