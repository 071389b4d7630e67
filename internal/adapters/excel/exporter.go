// Package excel writes farmhand reports to .xlsx workbooks.
package excel

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/example/farmhand/internal/ports/primary"
)

// Sheet names
const (
	SheetMonthly      = "Monthly"
	SheetTransactions = "Transactions"
	SheetInventory    = "Inventory"
)

var (
	monthlyHeader     = []any{"Month", "Income", "Expense", "Net"}
	transactionHeader = []any{"Date", "Farm", "Type", "Category", "Amount", "Description"}
	inventoryHeader   = []any{"Item", "Category", "Current", "Capacity", "Unit", "Percent", "Level", "Status"}
)

// Workbook is everything one export contains.
type Workbook struct {
	Finances *primary.FinanceReport
	Stock    *primary.StockReport
}

// Exporter renders reports into a workbook.
type Exporter struct{}

// NewExporter creates an Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Write renders wb as xlsx to w. Missing reports leave their sheets with
// a header row only.
func (e *Exporter) Write(w io.Writer, wb Workbook) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetMonthly); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	for _, name := range []string{SheetTransactions, SheetInventory} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	sheets := []struct {
		name   string
		header []any
		rows   [][]any
	}{
		{SheetMonthly, monthlyHeader, monthlyRows(wb.Finances)},
		{SheetTransactions, transactionHeader, transactionRows(wb.Finances)},
		{SheetInventory, inventoryHeader, inventoryRows(wb.Stock)},
	}
	for _, s := range sheets {
		if err := writeSheet(f, s.name, s.header, s.rows); err != nil {
			return err
		}
		if err := f.SetRowStyle(s.name, 1, 1, bold); err != nil {
			return fmt.Errorf("failed to style %s header: %w", s.name, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

// monthlyRows is one row per month followed by a totals row.
func monthlyRows(report *primary.FinanceReport) [][]any {
	if report == nil {
		return nil
	}
	r := report.Rollup
	rows := make([][]any, 0, len(r.Buckets)+1)
	for _, b := range r.Buckets {
		rows = append(rows, []any{b.Month, money(b.Income), money(b.Expense), money(b.Net)})
	}
	return append(rows, []any{"Total", money(r.TotalIncome), money(r.TotalExpense), money(r.Net)})
}

func transactionRows(report *primary.FinanceReport) [][]any {
	if report == nil {
		return nil
	}
	rows := make([][]any, 0, len(report.Lines))
	for _, l := range report.Lines {
		t := l.Transaction
		rows = append(rows, []any{t.Date, l.FarmName, t.Type, t.Category, money(t.Signed()), t.Description})
	}
	return rows
}

func inventoryRows(report *primary.StockReport) [][]any {
	if report == nil {
		return nil
	}
	rows := make([][]any, 0, len(report.Lines))
	for _, l := range report.Lines {
		it := l.Item
		rows = append(rows, []any{
			it.Name, it.Category, it.CurrentStock, it.MaxCapacity, it.Unit,
			l.Percentage, string(l.Level), string(l.Status),
		})
	}
	return rows
}

// money converts to a float cell rounded to cents.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
