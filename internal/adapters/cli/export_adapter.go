package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/example/farmhand/internal/adapters/excel"
	"github.com/example/farmhand/internal/ports/primary"
)

// ExportAdapter writes the finance and stock reports to a workbook.
type ExportAdapter struct {
	service  primary.SummaryService
	exporter *excel.Exporter
	out      io.Writer
}

// NewExportAdapter creates a new ExportAdapter.
func NewExportAdapter(service primary.SummaryService, exporter *excel.Exporter, out io.Writer) *ExportAdapter {
	return &ExportAdapter{
		service:  service,
		exporter: exporter,
		out:      out,
	}
}

// Export writes every transaction and inventory item to path.
func (a *ExportAdapter) Export(ctx context.Context, path string) error {
	finances, err := a.service.GetFinances(ctx, primary.FinanceRequest{})
	if err != nil {
		return fmt.Errorf("failed to load finances: %w", err)
	}
	stock, err := a.service.GetStockReport(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to load stock report: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := a.exporter.Write(f, excel.Workbook{Finances: finances, Stock: stock}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	fmt.Fprintf(a.out, "✓ Exported %d transactions and %d items to %s\n", len(finances.Lines), len(stock.Lines), path)
	return nil
}
