package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/farmhand/internal/ports/primary"
)

// FarmAdapter is a thin adapter that translates CLI operations to FarmService calls.
type FarmAdapter struct {
	service primary.FarmService
	out     io.Writer
}

// NewFarmAdapter creates a new FarmAdapter with the given service.
func NewFarmAdapter(service primary.FarmService, out io.Writer) *FarmAdapter {
	return &FarmAdapter{
		service: service,
		out:     out,
	}
}

// List lists every farm.
func (a *FarmAdapter) List(ctx context.Context) error {
	farms, err := a.service.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list farms: %w", err)
	}

	if len(farms) == 0 {
		fmt.Fprintln(a.out, "No farms found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-6s %-24s %-24s %s\n", "ID", "NAME", "LOCATION", "SIZE")
	fmt.Fprintln(a.out, rule)
	for _, f := range farms {
		fmt.Fprintf(a.out, "%-6d %-24s %-24s %s %s\n", f.ID, f.Name, f.Location, f.Size.String(), f.SizeUnit)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays details for a single farm.
func (a *FarmAdapter) Show(ctx context.Context, id string) error {
	farm, err := a.service.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nFarm:     %d\n", farm.ID)
	fmt.Fprintf(a.out, "Name:     %s\n", farm.Name)
	fmt.Fprintf(a.out, "Location: %s\n", farm.Location)
	fmt.Fprintf(a.out, "Size:     %s %s\n", farm.Size.String(), farm.SizeUnit)
	fmt.Fprintf(a.out, "Created:  %s\n", orDash(farm.CreatedAt))
	fmt.Fprintln(a.out)

	return nil
}

// Create creates a new farm.
func (a *FarmAdapter) Create(ctx context.Context, payload primary.Payload) error {
	farm, err := a.service.Create(ctx, payload)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created farm %d: %s\n", farm.ID, farm.Name)
	return nil
}

// Update applies payload to a farm.
func (a *FarmAdapter) Update(ctx context.Context, id string, payload primary.Payload) error {
	if len(payload) == 0 {
		return fmt.Errorf("must specify at least one field to update")
	}

	farm, err := a.service.Update(ctx, id, payload)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Farm %d updated\n", farm.ID)
	return nil
}

// Delete deletes a farm. Its crops, tasks and transactions stay behind.
func (a *FarmAdapter) Delete(ctx context.Context, id string) error {
	if err := a.service.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Farm %s deleted\n", id)
	return nil
}
