package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/farmhand/internal/ports/primary"
)

// CropAdapter is a thin adapter that translates CLI operations to CropService calls.
type CropAdapter struct {
	service primary.CropService
	out     io.Writer
}

// NewCropAdapter creates a new CropAdapter with the given service.
func NewCropAdapter(service primary.CropService, out io.Writer) *CropAdapter {
	return &CropAdapter{
		service: service,
		out:     out,
	}
}

// List lists crops with optional farm and status filters.
func (a *CropAdapter) List(ctx context.Context, filters primary.CropFilters) error {
	crops, err := a.service.List(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to list crops: %w", err)
	}

	if len(crops) == 0 {
		fmt.Fprintln(a.out, "No crops found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-6s %-6s %-12s %-18s %-12s %-12s %s\n", "ID", "FARM", "TYPE", "STATUS", "PLANTED", "HARVEST", "AREA")
	fmt.Fprintln(a.out, rule)
	for _, c := range crops {
		fmt.Fprintf(a.out, "%-6d %-6d %-12s %-18s %-12s %-12s %s ac\n",
			c.ID, c.FarmID, c.CropType, c.Status, c.PlantingDate, c.ExpectedHarvestDate, c.Area.String())
	}
	fmt.Fprintln(a.out)

	return nil
}

// Create plants a new crop.
func (a *CropAdapter) Create(ctx context.Context, payload primary.Payload) error {
	crop, err := a.service.Create(ctx, payload)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created crop %d: %s on farm %d\n", crop.ID, crop.CropType, crop.FarmID)
	return nil
}

// Update applies payload to a crop, e.g. a status change.
func (a *CropAdapter) Update(ctx context.Context, id string, payload primary.Payload) error {
	if len(payload) == 0 {
		return fmt.Errorf("must specify at least one field to update")
	}

	crop, err := a.service.Update(ctx, id, payload)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Crop %d updated (%s)\n", crop.ID, crop.Status)
	return nil
}

// Delete deletes a crop.
func (a *CropAdapter) Delete(ctx context.Context, id string) error {
	if err := a.service.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Crop %s deleted\n", id)
	return nil
}
