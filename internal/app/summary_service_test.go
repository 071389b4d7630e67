package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/farmhand/internal/adapters/memory"
	"github.com/example/farmhand/internal/core/metrics"
	"github.com/example/farmhand/internal/models"
	"github.com/example/farmhand/internal/ports/primary"
)

func seedSummaryData(s *testServices) {
	seedFarm(s, "North")
	seedFarm(s, "South")
	seedCrop(s, 1, "Corn", "Growing")
	seedCrop(s, 2, "Wheat", "Harvested")

	seedTask(s, 1, "Overdue spray", "2024-06-10")
	seedTask(s, 2, "Soon", "2024-06-16")
	seedTask(s, 9, "Orphaned", "2024-06-17")
	seedTask(s, 1, "Bad date", "later")
	seedTask(s, 1, "Crop check", "2024-06-18")

	seedTransaction(s, 1, "income", "Grain Sales", "1000", "2024-06-02")
	seedTransaction(s, 2, "expense", "Fuel", "200", "2024-06-05")
	seedTransaction(s, 1, "expense", "Seeds", "300", "2024-05-20")

	seedItem(s, "Seed Corn", "Seeds", 5, 100, 10)
	seedItem(s, "Diesel", "Fuel", 400, 500, 50)
}

func TestSummaryService_GetDashboard(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	seedSummaryData(s)
	if _, err := s.tasks.Update(ctx, "5", primary.Payload{"cropId": "1"}); err != nil {
		t.Fatalf("linking crop failed: %v", err)
	}

	dash, err := s.summary.GetDashboard(ctx, primary.DashboardRequest{Now: fixedNow, UpcomingLimit: 3})
	if err != nil {
		t.Fatalf("GetDashboard failed: %v", err)
	}

	if dash.Stats.TotalFarms != 2 || dash.Stats.ActiveCrops != 1 || dash.Stats.PendingTasks != 5 {
		t.Errorf("unexpected stats: %+v", dash.Stats)
	}
	if dash.Stats.MonthlyProfit.String() != "800" {
		t.Errorf("MonthlyProfit = %s, want 800", dash.Stats.MonthlyProfit)
	}

	if len(dash.Upcoming) != 3 {
		t.Fatalf("expected 3 upcoming tasks, got %d", len(dash.Upcoming))
	}
	if dash.Upcoming[0].Task.Title != "Overdue spray" || !dash.Upcoming[0].Overdue {
		t.Errorf("unexpected first upcoming line: %+v", dash.Upcoming[0])
	}
	if dash.Upcoming[2].FarmName != "Unknown Farm" {
		t.Errorf("orphaned task farm = %q", dash.Upcoming[2].FarmName)
	}

	if len(dash.Overdue) != 1 {
		t.Errorf("expected 1 overdue task, got %d", len(dash.Overdue))
	}
	if len(dash.LowStock) != 1 || dash.LowStock[0].Level != metrics.StockLow {
		t.Errorf("unexpected low stock: %+v", dash.LowStock)
	}
	if len(dash.Farms) != 2 || dash.Farms[0].CropCount != 1 || dash.Farms[0].PendingTasks != 3 {
		t.Errorf("unexpected farm summaries: %+v", dash.Farms)
	}
}

func TestSummaryService_GetDashboard_CropLabel(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	seedSummaryData(s)
	if _, err := s.tasks.Update(ctx, "5", primary.Payload{"cropId": "1"}); err != nil {
		t.Fatal(err)
	}

	dash, err := s.summary.GetDashboard(ctx, primary.DashboardRequest{Now: fixedNow, UpcomingLimit: 10})
	if err != nil {
		t.Fatal(err)
	}
	var found bool
	for _, line := range dash.Upcoming {
		if line.Task.Title == "Crop check" {
			found = true
			if line.CropLabel != "Corn (Growing)" {
				t.Errorf("CropLabel = %q", line.CropLabel)
			}
		}
		if line.Task.Title == "Bad date" {
			t.Error("task with invalid due date must not appear in upcoming")
		}
	}
	if !found {
		t.Error("expected crop check in upcoming tasks")
	}
}

func TestSummaryService_GetFinances(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	seedSummaryData(s)

	report, err := s.summary.GetFinances(ctx, primary.FinanceRequest{FarmID: "1", Type: "all"})
	if err != nil {
		t.Fatalf("GetFinances failed: %v", err)
	}
	if len(report.Lines) != 2 {
		t.Fatalf("expected 2 ledger lines for farm 1, got %d", len(report.Lines))
	}
	if report.Lines[0].Transaction.Date != "2024-06-02" || report.Lines[0].FarmName != "North" {
		t.Errorf("unexpected first line: %+v", report.Lines[0])
	}
	if report.Summary.Count != 3 || report.Summary.NetProfit.String() != "500" {
		t.Errorf("summary must cover every transaction: %+v", report.Summary)
	}
	if len(report.Rollup.Buckets) != 2 || report.Rollup.Buckets[0].Month != "2024-05" {
		t.Errorf("unexpected rollup: %+v", report.Rollup.Buckets)
	}
}

func TestSummaryService_GetStockReportAndWeek(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	seedSummaryData(s)

	report, err := s.summary.GetStockReport(ctx, "Fuel")
	if err != nil {
		t.Fatalf("GetStockReport failed: %v", err)
	}
	if len(report.Lines) != 1 || report.Lines[0].Level != metrics.StockGood || report.Lines[0].Percentage < 79.9 {
		t.Errorf("unexpected stock report: %+v", report.Lines)
	}

	week, err := s.summary.GetWeek(ctx, primary.WeekRequest{Now: fixedNow, FarmID: "all"})
	if err != nil {
		t.Fatalf("GetWeek failed: %v", err)
	}
	if len(week.Days) != 7 || week.Days[0].Date.Weekday() != time.Sunday {
		t.Fatalf("unexpected week: %+v", week.Days)
	}
	// fixedNow is Saturday June 15; the week runs June 9 to 15
	if len(week.Days[1].Tasks) != 1 || week.Days[1].Tasks[0].Task.Title != "Overdue spray" {
		t.Errorf("expected Monday June 10 to hold the overdue spray, got %+v", week.Days[1].Tasks)
	}
}

// mockFarmService implements primary.FarmService for testing.
type mockFarmService struct {
	primary.FarmService
	listErr error
}

func (m *mockFarmService) List(ctx context.Context) ([]models.Farm, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return []models.Farm{}, nil
}

func TestSummaryService_LoadFailurePropagates(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	boom := errors.New("boom")
	summary := NewSummaryService(&mockFarmService{listErr: boom}, s.crops, s.tasks, s.transactions, s.inventory)

	if _, err := summary.GetDashboard(ctx, primary.DashboardRequest{Now: fixedNow}); !errors.Is(err, boom) {
		t.Errorf("expected load error to propagate, got %v", err)
	}
}

func TestSummaryService_DegradedStoreStillRenders(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	seedSummaryData(s)
	s.store.FailCall(memory.OpFetch, errors.New("offline"))

	dash, err := s.summary.GetDashboard(ctx, primary.DashboardRequest{Now: fixedNow})
	if err != nil {
		t.Fatalf("expected degraded dashboard, got %v", err)
	}
	if dash.Stats.TotalFarms != 0 || len(dash.Upcoming) != 0 {
		t.Errorf("expected empty dashboard, got %+v", dash.Stats)
	}
}
