package primary

import (
	"context"

	"github.com/example/farmhand/internal/models"
)

// InventoryService defines the primary port for inventory operations.
type InventoryService interface {
	// List returns items matching filters.
	List(ctx context.Context, filters InventoryFilters) ([]models.InventoryItem, error)

	// ListLowStock returns items at or below their minimum threshold.
	ListLowStock(ctx context.Context, filters InventoryFilters) ([]models.InventoryItem, error)

	// Get retrieves an item by its raw id.
	Get(ctx context.Context, id string) (*models.InventoryItem, error)

	// Create validates and persists a new item.
	Create(ctx context.Context, payload Payload) (*models.InventoryItem, error)

	// Update merges payload over the stored item and revalidates it.
	Update(ctx context.Context, id string, payload Payload) (*models.InventoryItem, error)

	// Delete removes an item.
	Delete(ctx context.Context, id string) error

	// UpdateStock sets the stock level and stamps the restock time in one
	// write. Levels outside [0, max capacity] are rejected.
	UpdateStock(ctx context.Context, id string, newStock int) (*models.InventoryItem, error)
}

// InventoryFilters narrows an inventory listing. Empty or "all" means no filter.
type InventoryFilters struct {
	Category string
}
