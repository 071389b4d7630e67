package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/farmhand/internal/core/farmerr"
	"github.com/example/farmhand/internal/core/inventory"
	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/models"
	"github.com/example/farmhand/internal/ports/primary"
	"github.com/example/farmhand/internal/ports/secondary"
)

// InventoryServiceImpl implements the InventoryService interface.
type InventoryServiceImpl struct {
	repo repository
}

// NewInventoryService creates a new InventoryService with injected dependencies.
func NewInventoryService(store secondary.RecordStore, logger *zap.Logger, opts ...Option) *InventoryServiceImpl {
	return &InventoryServiceImpl{repo: newRepository(store, models.KindInventoryItem, logger, opts)}
}

// List returns inventory items, optionally scoped to a category.
func (s *InventoryServiceImpl) List(ctx context.Context, filters primary.InventoryFilters) ([]models.InventoryItem, error) {
	recs := s.repo.list(ctx, equalTo("category", filters.Category))
	items := make([]models.InventoryItem, 0, len(recs))
	for _, rec := range recs {
		items = append(items, inventory.FromRecord(rec))
	}
	return items, nil
}

// ListLowStock returns items at or below their minimum threshold. The
// comparison is between two fields of the same record, so it always runs
// here rather than in the store query.
func (s *InventoryServiceImpl) ListLowStock(ctx context.Context, filters primary.InventoryFilters) ([]models.InventoryItem, error) {
	items, err := s.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	low := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if inventory.IsLowStock(item) {
			low = append(low, item)
		}
	}
	return low, nil
}

// Get retrieves an inventory item by ID.
func (s *InventoryServiceImpl) Get(ctx context.Context, id string) (*models.InventoryItem, error) {
	_, rec, err := s.repo.get(ctx, "get", id)
	if err != nil {
		return nil, err
	}
	item := inventory.FromRecord(rec)
	return &item, nil
}

// Create creates a new inventory item.
func (s *InventoryServiceImpl) Create(ctx context.Context, payload primary.Payload) (*models.InventoryItem, error) {
	item, result := inventory.CanSaveItem(normalize.Canonicalize(models.KindInventoryItem, payload))
	if !result.Allowed {
		return nil, s.repo.invalid("create", result.Reason, result.Fields)
	}

	created, err := s.repo.create(ctx, inventory.ToRecord(item))
	if err != nil {
		return nil, err
	}
	out := inventory.FromRecord(created)
	return &out, nil
}

// Update merges payload over the stored item.
func (s *InventoryServiceImpl) Update(ctx context.Context, id string, payload primary.Payload) (*models.InventoryItem, error) {
	itemID, stored, err := s.repo.get(ctx, "update", id)
	if err != nil {
		return nil, err
	}

	item, result := inventory.CanSaveItem(s.repo.merge(stored, payload))
	if !result.Allowed {
		return nil, s.repo.invalid("update", result.Reason, result.Fields)
	}

	updated, err := s.repo.update(ctx, "update", itemID, inventory.ToRecord(item))
	if err != nil {
		return nil, err
	}
	out := inventory.FromRecord(updated)
	return &out, nil
}

// Delete deletes an inventory item.
func (s *InventoryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.remove(ctx, id)
}

// UpdateStock sets current_stock and stamps last_restocked together.
// Values outside [0, max_capacity] fail with OutOfRangeError and leave the
// item untouched.
func (s *InventoryServiceImpl) UpdateStock(ctx context.Context, id string, newStock int) (*models.InventoryItem, error) {
	itemID, stored, err := s.repo.get(ctx, "update_stock", id)
	if err != nil {
		return nil, err
	}
	current := inventory.FromRecord(stored)

	result := inventory.CanUpdateStock(inventory.StockUpdateContext{
		ItemID:      itemID,
		NewStock:    newStock,
		MaxCapacity: current.MaxCapacity,
	})
	if !result.Allowed {
		return nil, farmerr.OutOfRange(s.repo.op("update_stock"), newStock, current.MaxCapacity)
	}

	updated, err := s.repo.update(ctx, "update_stock", itemID, secondary.Record{
		"current_stock":  newStock,
		"last_restocked": s.repo.stamp(),
	})
	if err != nil {
		return nil, err
	}
	out := inventory.FromRecord(updated)
	return &out, nil
}

// Ensure InventoryServiceImpl implements the interface
var _ primary.InventoryService = (*InventoryServiceImpl)(nil)
