package models

// InventoryItem is a stocked supply.
type InventoryItem struct {
	ID               int64
	Name             string
	Category         string
	CurrentStock     int
	MaxCapacity      int
	Unit             string
	Supplier         string
	MinimumThreshold int
	LastRestocked    string
}

// InventoryCategories lists accepted inventory categories.
var InventoryCategories = []string{"Seeds", "Fertilizers", "Equipment", "Pesticides", "Feed", "Fuel", "Tools", "Other"}
