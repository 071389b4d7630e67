package primary

import (
	"context"

	"github.com/example/farmhand/internal/models"
)

// CropService defines the primary port for crop operations.
type CropService interface {
	// List returns crops matching filters.
	List(ctx context.Context, filters CropFilters) ([]models.Crop, error)

	// Get retrieves a crop by its raw id.
	Get(ctx context.Context, id string) (*models.Crop, error)

	// Create validates and persists a new crop.
	Create(ctx context.Context, payload Payload) (*models.Crop, error)

	// Update merges payload over the stored crop and revalidates it.
	Update(ctx context.Context, id string, payload Payload) (*models.Crop, error)

	// Delete removes a crop.
	Delete(ctx context.Context, id string) error
}

// CropFilters narrows a crop listing. Empty or "all" means no filter.
type CropFilters struct {
	FarmID string
	Status string
}
