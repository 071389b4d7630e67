package primary

import (
	"context"

	"github.com/example/farmhand/internal/models"
)

// TransactionService defines the primary port for financial transactions.
type TransactionService interface {
	// List returns transactions matching filters.
	List(ctx context.Context, filters TransactionFilters) ([]models.Transaction, error)

	// Get retrieves a transaction by its raw id.
	Get(ctx context.Context, id string) (*models.Transaction, error)

	// Create validates and persists a new transaction.
	Create(ctx context.Context, payload Payload) (*models.Transaction, error)

	// Update merges payload over the stored transaction and revalidates it.
	Update(ctx context.Context, id string, payload Payload) (*models.Transaction, error)

	// Delete removes a transaction.
	Delete(ctx context.Context, id string) error
}

// TransactionFilters narrows a transaction listing. Empty or "all" means
// no filter. From and To bound the date inclusively (YYYY-MM-DD).
type TransactionFilters struct {
	FarmID string
	Type   string
	From   string
	To     string
}
