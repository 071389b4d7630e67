package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap/zaptest"

	"github.com/example/farmhand/internal/adapters/memory"
	"github.com/example/farmhand/internal/app"
	"github.com/example/farmhand/internal/ports/primary"
)

func init() {
	color.NoColor = true
}

var fixedNow = time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// fixture wires real services over an in-memory store.
type fixture struct {
	out          *bytes.Buffer
	store        *memory.Store
	farms        primary.FarmService
	crops        primary.CropService
	tasks        primary.TaskService
	transactions primary.TransactionService
	inventory    primary.InventoryService
	summary      primary.SummaryService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	logger := zaptest.NewLogger(t)
	clock := app.WithClock(fixedClock)

	f := &fixture{
		out:          &bytes.Buffer{},
		store:        store,
		farms:        app.NewFarmService(store, logger, clock),
		crops:        app.NewCropService(store, logger, clock),
		tasks:        app.NewTaskService(store, logger, clock),
		transactions: app.NewTransactionService(store, logger, clock),
		inventory:    app.NewInventoryService(store, logger, clock),
	}
	f.summary = app.NewSummaryService(f.farms, f.crops, f.tasks, f.transactions, f.inventory)
	return f
}

func (f *fixture) mustCreateFarm(t *testing.T, name string) {
	t.Helper()
	_, err := f.farms.Create(context.Background(), primary.Payload{
		"name": name, "location": "Story County, IA", "size": "120", "sizeUnit": "acres",
	})
	if err != nil {
		t.Fatalf("create farm: %v", err)
	}
}

func (f *fixture) mustCreateTask(t *testing.T, farmID int64, title, due string) {
	t.Helper()
	_, err := f.tasks.Create(context.Background(), primary.Payload{
		"farmId": farmID, "title": title, "type": "Watering", "dueDate": due,
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
}

func (f *fixture) mustCreateTransaction(t *testing.T, farmID int64, txnType, category, amount, date string) {
	t.Helper()
	_, err := f.transactions.Create(context.Background(), primary.Payload{
		"farmId": farmID, "type": txnType, "category": category, "amount": amount, "date": date,
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}
}

func (f *fixture) mustCreateItem(t *testing.T, name string, current, maxCapacity, threshold int) {
	t.Helper()
	_, err := f.inventory.Create(context.Background(), primary.Payload{
		"name": name, "category": "Seeds", "unit": "bags",
		"currentStock": current, "maxCapacity": maxCapacity, "minimumThreshold": threshold,
	})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
}

// mockSummaryService implements primary.SummaryService for error paths.
type mockSummaryService struct {
	getDashboardFn   func(ctx context.Context, req primary.DashboardRequest) (*primary.Dashboard, error)
	getFinancesFn    func(ctx context.Context, req primary.FinanceRequest) (*primary.FinanceReport, error)
	getStockReportFn func(ctx context.Context, category string) (*primary.StockReport, error)
	getWeekFn        func(ctx context.Context, req primary.WeekRequest) (*primary.WeekView, error)

	lastDashboardReq primary.DashboardRequest
}

func (m *mockSummaryService) GetDashboard(ctx context.Context, req primary.DashboardRequest) (*primary.Dashboard, error) {
	m.lastDashboardReq = req
	if m.getDashboardFn != nil {
		return m.getDashboardFn(ctx, req)
	}
	return &primary.Dashboard{}, nil
}

func (m *mockSummaryService) GetFinances(ctx context.Context, req primary.FinanceRequest) (*primary.FinanceReport, error) {
	if m.getFinancesFn != nil {
		return m.getFinancesFn(ctx, req)
	}
	return &primary.FinanceReport{}, nil
}

func (m *mockSummaryService) GetStockReport(ctx context.Context, category string) (*primary.StockReport, error) {
	if m.getStockReportFn != nil {
		return m.getStockReportFn(ctx, category)
	}
	return &primary.StockReport{}, nil
}

func (m *mockSummaryService) GetWeek(ctx context.Context, req primary.WeekRequest) (*primary.WeekView, error) {
	if m.getWeekFn != nil {
		return m.getWeekFn(ctx, req)
	}
	return &primary.WeekView{}, nil
}
