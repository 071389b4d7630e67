package cli

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/example/farmhand/internal/adapters/excel"
	"github.com/example/farmhand/internal/core/farmerr"
	"github.com/example/farmhand/internal/ports/primary"
)

func TestFarmAdapter_CreateListDelete(t *testing.T) {
	f := newFixture(t)
	adapter := NewFarmAdapter(f.farms, f.out)
	ctx := context.Background()

	if err := adapter.List(ctx); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !strings.Contains(f.out.String(), "No farms found") {
		t.Errorf("expected empty message, got %q", f.out.String())
	}
	f.out.Reset()

	err := adapter.Create(ctx, primary.Payload{"name": "Willow Creek", "location": "Ames", "size": "40", "sizeUnit": "hectares"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !strings.Contains(f.out.String(), "✓ Created farm 1: Willow Creek") {
		t.Errorf("unexpected create output: %q", f.out.String())
	}
	f.out.Reset()

	if err := adapter.List(ctx); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !strings.Contains(f.out.String(), "Willow Creek") || !strings.Contains(f.out.String(), "40 hectares") {
		t.Errorf("farm missing from list: %q", f.out.String())
	}

	if err := adapter.Delete(ctx, "1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := adapter.Show(ctx, "1"); !errors.Is(err, farmerr.ErrNotFound) {
		t.Errorf("expected NotFound after delete, got %v", err)
	}
}

func TestFarmAdapter_UpdateRequiresFields(t *testing.T) {
	f := newFixture(t)
	adapter := NewFarmAdapter(f.farms, f.out)

	if err := adapter.Update(context.Background(), "1", primary.Payload{}); err == nil {
		t.Error("expected error for empty update")
	}
}

func TestFarmAdapter_CreateValidationError(t *testing.T) {
	f := newFixture(t)
	adapter := NewFarmAdapter(f.farms, f.out)

	err := adapter.Create(context.Background(), primary.Payload{"name": "No Size"})
	if !errors.Is(err, farmerr.ErrValidation) {
		t.Errorf("expected ValidationError, got %v", err)
	}
	if f.out.Len() != 0 {
		t.Errorf("nothing should be printed on failure, got %q", f.out.String())
	}
}

func TestTaskAdapter_ListMarksOverdue(t *testing.T) {
	f := newFixture(t)
	f.mustCreateFarm(t, "North")
	f.mustCreateTask(t, 1, "Water beans", "2024-06-10")
	f.mustCreateTask(t, 1, "Scout corn", "2024-06-20")
	adapter := NewTaskAdapter(f.tasks, f.out, fixedClock)

	if err := adapter.List(context.Background(), primary.TaskFilters{Status: "all"}); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	var beans, corn string
	for _, line := range strings.Split(f.out.String(), "\n") {
		switch {
		case strings.Contains(line, "Water beans"):
			beans = line
		case strings.Contains(line, "Scout corn"):
			corn = line
		}
	}
	if !strings.Contains(beans, "overdue") {
		t.Errorf("expected overdue marker on %q", beans)
	}
	if strings.Contains(corn, "overdue") {
		t.Errorf("unexpected overdue marker on %q", corn)
	}
	if strings.Index(f.out.String(), "Water beans") > strings.Index(f.out.String(), "Scout corn") {
		t.Error("tasks should be sorted by due date")
	}
}

func TestTaskAdapter_Toggle(t *testing.T) {
	f := newFixture(t)
	f.mustCreateFarm(t, "North")
	f.mustCreateTask(t, 1, "Spray", "2024-06-20")
	adapter := NewTaskAdapter(f.tasks, f.out, fixedClock)
	ctx := context.Background()

	if err := adapter.Toggle(ctx, "1"); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if err := adapter.Toggle(ctx, "1"); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	out := f.out.String()
	if !strings.Contains(out, "Task 1 completed") || !strings.Contains(out, "Task 1 reopened") {
		t.Errorf("unexpected toggle output: %q", out)
	}
}

func TestAdapters_UpdateRequiresFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		update func() error
	}{
		{"task", func() error { return NewTaskAdapter(f.tasks, f.out, fixedClock).Update(ctx, "1", primary.Payload{}) }},
		{"transaction", func() error { return NewTransactionAdapter(f.transactions, f.out).Update(ctx, "1", primary.Payload{}) }},
		{"inventory", func() error { return NewInventoryAdapter(f.inventory, f.out).Update(ctx, "1", primary.Payload{}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update()
			if err == nil || !strings.Contains(err.Error(), "at least one field") {
				t.Errorf("expected missing-fields error, got %v", err)
			}
		})
	}
}

func TestTaskAdapter_UpdateDueDate(t *testing.T) {
	f := newFixture(t)
	f.mustCreateFarm(t, "North")
	f.mustCreateTask(t, 1, "Spray", "2024-06-20")
	adapter := NewTaskAdapter(f.tasks, f.out, fixedClock)

	if err := adapter.Update(context.Background(), "1", primary.Payload{"dueDate": "2024-06-25"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !strings.Contains(f.out.String(), "Task 1 updated") {
		t.Errorf("unexpected output: %q", f.out.String())
	}
}

func TestTransactionAdapter_Update(t *testing.T) {
	f := newFixture(t)
	f.mustCreateFarm(t, "North")
	f.mustCreateTransaction(t, 1, "expense", "Fuel", "80", "2024-06-02")
	adapter := NewTransactionAdapter(f.transactions, f.out)

	if err := adapter.Update(context.Background(), "1", primary.Payload{"amount": "95.25"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !strings.Contains(f.out.String(), "Transaction 1 updated: Fuel -$95.25") {
		t.Errorf("unexpected output: %q", f.out.String())
	}
}

func TestTransactionAdapter_List(t *testing.T) {
	f := newFixture(t)
	f.mustCreateFarm(t, "North")
	f.mustCreateTransaction(t, 1, "income", "Grain Sales", "1000", "2024-06-02")
	f.mustCreateTransaction(t, 1, "expense", "Fuel", "150.5", "2024-06-03")
	adapter := NewTransactionAdapter(f.transactions, f.out)

	if err := adapter.List(context.Background(), primary.TransactionFilters{}); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	out := f.out.String()
	if !strings.Contains(out, "+$1000.00") {
		t.Errorf("expected signed income, got %q", out)
	}
	if !strings.Contains(out, "-$150.50") {
		t.Errorf("expected signed expense, got %q", out)
	}
}

func TestInventoryAdapter_SetStock(t *testing.T) {
	f := newFixture(t)
	f.mustCreateItem(t, "Seed Corn", 50, 100, 20)
	adapter := NewInventoryAdapter(f.inventory, f.out)
	ctx := context.Background()

	if err := adapter.SetStock(ctx, "1", 101); !errors.Is(err, farmerr.ErrOutOfRange) {
		t.Fatalf("expected OutOfRange, got %v", err)
	}

	if err := adapter.SetStock(ctx, "1", 10); err != nil {
		t.Fatalf("SetStock failed: %v", err)
	}
	if !strings.Contains(f.out.String(), "Seed Corn stock set to 10/100 bags (low)") {
		t.Errorf("unexpected output: %q", f.out.String())
	}
}

func TestInventoryAdapter_Low(t *testing.T) {
	f := newFixture(t)
	f.mustCreateItem(t, "Seed Corn", 10, 100, 20)
	f.mustCreateItem(t, "Diesel", 80, 100, 20)
	adapter := NewInventoryAdapter(f.inventory, f.out)

	if err := adapter.Low(context.Background(), ""); err != nil {
		t.Fatalf("Low failed: %v", err)
	}
	out := f.out.String()
	if !strings.Contains(out, "Seed Corn") || strings.Contains(out, "Diesel") {
		t.Errorf("expected only the low item, got %q", out)
	}
	if !strings.Contains(out, "reorder needed") {
		t.Errorf("expected reorder status, got %q", out)
	}
}

func TestSummaryAdapter_Dashboard(t *testing.T) {
	f := newFixture(t)
	f.mustCreateFarm(t, "North")
	f.mustCreateTask(t, 1, "Water beans", "2024-06-10")
	f.mustCreateTask(t, 1, "Scout corn", "2024-06-20")
	f.mustCreateTransaction(t, 1, "income", "Grain Sales", "500", "2024-06-02")
	f.mustCreateItem(t, "Seed Corn", 5, 100, 20)
	adapter := NewSummaryAdapter(f.summary, f.out, fixedClock)

	if err := adapter.Dashboard(context.Background(), 5); err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}

	out := f.out.String()
	for _, want := range []string{
		"Farms: 1",
		"Pending tasks: 2",
		"This month: +$500.00",
		"Overdue",
		"Water beans (North)",
		"Low stock",
		"Seed Corn",
		"0 crops, 2 pending tasks",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryAdapter_DashboardPassesClock(t *testing.T) {
	mock := &mockSummaryService{}
	adapter := NewSummaryAdapter(mock, &strings.Builder{}, fixedClock)

	if err := adapter.Dashboard(context.Background(), 3); err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}
	if !mock.lastDashboardReq.Now.Equal(fixedNow) || mock.lastDashboardReq.UpcomingLimit != 3 {
		t.Errorf("unexpected request: %+v", mock.lastDashboardReq)
	}
}

func TestSummaryAdapter_Errors(t *testing.T) {
	boom := farmerr.Store("transaction.list", "store unavailable", nil)
	mock := &mockSummaryService{
		getDashboardFn: func(context.Context, primary.DashboardRequest) (*primary.Dashboard, error) { return nil, boom },
		getFinancesFn:  func(context.Context, primary.FinanceRequest) (*primary.FinanceReport, error) { return nil, boom },
		getStockReportFn: func(context.Context, string) (*primary.StockReport, error) {
			return nil, boom
		},
		getWeekFn: func(context.Context, primary.WeekRequest) (*primary.WeekView, error) { return nil, boom },
	}
	adapter := NewSummaryAdapter(mock, &strings.Builder{}, fixedClock)
	ctx := context.Background()

	calls := map[string]func() error{
		"dashboard": func() error { return adapter.Dashboard(ctx, 5) },
		"finances":  func() error { return adapter.Finances(ctx, primary.FinanceRequest{}) },
		"rollup":    func() error { return adapter.Rollup(ctx) },
		"stock":     func() error { return adapter.Stock(ctx, "") },
		"week":      func() error { return adapter.Week(ctx, "") },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			if err := call(); !errors.Is(err, farmerr.ErrStore) {
				t.Errorf("expected wrapped StoreError, got %v", err)
			}
		})
	}
}

func TestSummaryAdapter_Rollup(t *testing.T) {
	f := newFixture(t)
	f.mustCreateFarm(t, "North")
	f.mustCreateTransaction(t, 1, "income", "Grain Sales", "1000", "2024-05-10")
	f.mustCreateTransaction(t, 1, "expense", "Fuel", "250", "2024-06-01")
	adapter := NewSummaryAdapter(f.summary, f.out, fixedClock)

	if err := adapter.Rollup(context.Background()); err != nil {
		t.Fatalf("Rollup failed: %v", err)
	}
	out := f.out.String()
	if !strings.Contains(out, "2024-05") || !strings.Contains(out, "2024-06") {
		t.Errorf("missing months: %q", out)
	}
	if !strings.Contains(out, "$750.00") {
		t.Errorf("missing net total: %q", out)
	}
	if strings.Index(out, "2024-05") > strings.Index(out, "2024-06") {
		t.Error("months should be ascending")
	}
}

func TestSummaryAdapter_WeekMarksToday(t *testing.T) {
	f := newFixture(t)
	f.mustCreateFarm(t, "North")
	f.mustCreateTask(t, 1, "Mow", "2024-06-15")
	adapter := NewSummaryAdapter(f.summary, f.out, fixedClock)

	if err := adapter.Week(context.Background(), ""); err != nil {
		t.Fatalf("Week failed: %v", err)
	}
	out := f.out.String()
	if !strings.Contains(out, "Sun Jun 9") {
		t.Errorf("week should start on Sunday: %q", out)
	}
	if !strings.Contains(out, "Sat Jun 15 (today)") {
		t.Errorf("today not marked: %q", out)
	}
	if !strings.Contains(out, "Mow (North)") {
		t.Errorf("task missing: %q", out)
	}
}

func TestExportAdapter_WritesWorkbook(t *testing.T) {
	f := newFixture(t)
	f.mustCreateFarm(t, "North")
	f.mustCreateTransaction(t, 1, "income", "Grain Sales", "1000", "2024-05-10")
	f.mustCreateItem(t, "Seed Corn", 5, 100, 20)
	adapter := NewExportAdapter(f.summary, excel.NewExporter(), f.out)

	path := filepath.Join(t.TempDir(), "farm.xlsx")
	if err := adapter.Export(context.Background(), path); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.Contains(f.out.String(), "Exported 1 transactions and 1 items") {
		t.Errorf("unexpected output: %q", f.out.String())
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open export: %v", err)
	}
	defer wb.Close()
	rows, err := wb.GetRows(excel.SheetInventory)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 2 || rows[1][0] != "Seed Corn" {
		t.Errorf("unexpected inventory sheet: %v", rows)
	}
}
