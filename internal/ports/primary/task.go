package primary

import (
	"context"

	"github.com/example/farmhand/internal/models"
)

// TaskService defines the primary port for task operations.
type TaskService interface {
	// List returns tasks matching filters.
	List(ctx context.Context, filters TaskFilters) ([]models.Task, error)

	// Get retrieves a task by its raw id.
	Get(ctx context.Context, id string) (*models.Task, error)

	// Create validates and persists a new task.
	Create(ctx context.Context, payload Payload) (*models.Task, error)

	// Update merges payload over the stored task and revalidates it,
	// keeping completed_date in step with completed.
	Update(ctx context.Context, id string, payload Payload) (*models.Task, error)

	// Delete removes a task.
	Delete(ctx context.Context, id string) error

	// ToggleComplete flips a task between open and completed in one write.
	ToggleComplete(ctx context.Context, id string) (*models.Task, error)
}

// TaskFilters narrows a task listing. Empty or "all" means no filter.
type TaskFilters struct {
	FarmID string
	CropID string
	Status string // pending or completed
}
