package primary

import (
	"context"

	"github.com/example/farmhand/internal/models"
)

// FarmService defines the primary port for farm operations.
type FarmService interface {
	// List returns every farm. A store outage yields an empty list.
	List(ctx context.Context) ([]models.Farm, error)

	// Get retrieves a farm by its raw id.
	Get(ctx context.Context, id string) (*models.Farm, error)

	// Create validates and persists a new farm, stamping its creation time.
	Create(ctx context.Context, payload Payload) (*models.Farm, error)

	// Update merges payload over the stored farm and revalidates it.
	Update(ctx context.Context, id string, payload Payload) (*models.Farm, error)

	// Delete removes a farm. Dependents are left orphaned.
	Delete(ctx context.Context, id string) error
}
