package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/farmhand/internal/core/metrics"
	"github.com/example/farmhand/internal/models"
	"github.com/example/farmhand/internal/ports/primary"
)

// InventoryAdapter is a thin adapter that translates CLI operations to
// InventoryService calls.
type InventoryAdapter struct {
	service primary.InventoryService
	out     io.Writer
}

// NewInventoryAdapter creates a new InventoryAdapter with the given service.
func NewInventoryAdapter(service primary.InventoryService, out io.Writer) *InventoryAdapter {
	return &InventoryAdapter{
		service: service,
		out:     out,
	}
}

// List lists items with an optional category filter.
func (a *InventoryAdapter) List(ctx context.Context, category string) error {
	items, err := a.service.List(ctx, primary.InventoryFilters{Category: category})
	if err != nil {
		return fmt.Errorf("failed to list inventory: %w", err)
	}
	a.printItems(items, "No inventory items found")
	return nil
}

// Low lists items at or below their minimum threshold.
func (a *InventoryAdapter) Low(ctx context.Context, category string) error {
	items, err := a.service.ListLowStock(ctx, primary.InventoryFilters{Category: category})
	if err != nil {
		return fmt.Errorf("failed to list low stock: %w", err)
	}
	a.printItems(items, "All items are above their minimum threshold")
	return nil
}

func (a *InventoryAdapter) printItems(items []models.InventoryItem, empty string) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, empty)
		return
	}

	fmt.Fprintf(a.out, "\n%-6s %-22s %-12s %-16s %-10s %s\n", "ID", "NAME", "CATEGORY", "STOCK", "LEVEL", "STATUS")
	fmt.Fprintln(a.out, rule)
	for _, it := range items {
		stock := fmt.Sprintf("%d/%d %s", it.CurrentStock, it.MaxCapacity, it.Unit)
		fmt.Fprintf(a.out, "%-6d %-22s %-12s %-16s %s %s\n",
			it.ID, it.Name, it.Category, stock,
			levelText(metrics.ClassifyStock(it.CurrentStock, it.MaxCapacity), levelWidth),
			statusText(metrics.StockStatusOf(it)))
	}
	fmt.Fprintln(a.out)
}

// Create adds a new item.
func (a *InventoryAdapter) Create(ctx context.Context, payload primary.Payload) error {
	item, err := a.service.Create(ctx, payload)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created item %d: %s\n", item.ID, item.Name)
	return nil
}

// Update edits an item's details.
func (a *InventoryAdapter) Update(ctx context.Context, id string, payload primary.Payload) error {
	if len(payload) == 0 {
		return fmt.Errorf("must specify at least one field to update")
	}

	item, err := a.service.Update(ctx, id, payload)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Item %d updated: %s\n", item.ID, item.Name)
	return nil
}

// SetStock sets an item's stock level.
func (a *InventoryAdapter) SetStock(ctx context.Context, id string, newStock int) error {
	item, err := a.service.UpdateStock(ctx, id, newStock)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ %s stock set to %d/%d %s (%s)\n",
		item.Name, item.CurrentStock, item.MaxCapacity, item.Unit,
		levelText(metrics.ClassifyStock(item.CurrentStock, item.MaxCapacity), 0))
	return nil
}

// Delete deletes an item.
func (a *InventoryAdapter) Delete(ctx context.Context, id string) error {
	if err := a.service.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Item %s deleted\n", id)
	return nil
}
