package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/example/farmhand/internal/core/inventory"
	"github.com/example/farmhand/internal/core/metrics"
	"github.com/example/farmhand/internal/core/relations"
	"github.com/example/farmhand/internal/models"
	"github.com/example/farmhand/internal/ports/primary"
)

// DefaultUpcomingLimit caps the upcoming-task list when the request does not.
const DefaultUpcomingLimit = 5

// SummaryServiceImpl implements the SummaryService interface.
type SummaryServiceImpl struct {
	farmService        primary.FarmService
	cropService        primary.CropService
	taskService        primary.TaskService
	transactionService primary.TransactionService
	inventoryService   primary.InventoryService
}

// NewSummaryService creates a new SummaryService with injected dependencies.
func NewSummaryService(
	farmService primary.FarmService,
	cropService primary.CropService,
	taskService primary.TaskService,
	transactionService primary.TransactionService,
	inventoryService primary.InventoryService,
) *SummaryServiceImpl {
	return &SummaryServiceImpl{
		farmService:        farmService,
		cropService:        cropService,
		taskService:        taskService,
		transactionService: transactionService,
		inventoryService:   inventoryService,
	}
}

// snapshot is one read of every collection.
type snapshot struct {
	farms []models.Farm
	crops []models.Crop
	tasks []models.Task
	txns  []models.Transaction
	items []models.InventoryItem
}

// load fetches the collections concurrently. The reads are independent and
// may complete in any order.
func (s *SummaryServiceImpl) load(ctx context.Context) (*snapshot, error) {
	var snap snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		farms, err := s.farmService.List(ctx)
		snap.farms = farms
		return wrapLoad("farms", err)
	})
	g.Go(func() error {
		crops, err := s.cropService.List(ctx, primary.CropFilters{})
		snap.crops = crops
		return wrapLoad("crops", err)
	})
	g.Go(func() error {
		tasks, err := s.taskService.List(ctx, primary.TaskFilters{})
		snap.tasks = tasks
		return wrapLoad("tasks", err)
	})
	g.Go(func() error {
		txns, err := s.transactionService.List(ctx, primary.TransactionFilters{})
		snap.txns = txns
		return wrapLoad("transactions", err)
	})
	g.Go(func() error {
		items, err := s.inventoryService.List(ctx, primary.InventoryFilters{})
		snap.items = items
		return wrapLoad("inventory", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func wrapLoad(what string, err error) error {
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", what, err)
	}
	return nil
}

// GetDashboard builds the landing view.
func (s *SummaryServiceImpl) GetDashboard(ctx context.Context, req primary.DashboardRequest) (*primary.Dashboard, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}
	limit := req.UpcomingLimit
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	dash := &primary.Dashboard{
		Stats:    metrics.Dashboard(snap.farms, snap.crops, snap.tasks, snap.txns, now),
		Upcoming: taskLines(metrics.UpcomingTasks(snap.tasks, limit), snap, now),
		Overdue:  taskLines(metrics.SortByDueDate(metrics.OverdueTasks(snap.tasks, now)), snap, now),
		Crops:    metrics.CropStatusCounts(snap.crops),
	}

	for _, item := range snap.items {
		if inventory.IsLowStock(item) {
			dash.LowStock = append(dash.LowStock, stockLine(item))
		}
	}

	for _, f := range snap.farms {
		pending := 0
		for _, t := range relations.TasksForFarm(f.ID, snap.tasks) {
			if !t.Completed {
				pending++
			}
		}
		dash.Farms = append(dash.Farms, primary.FarmSummary{
			Farm:         f,
			CropCount:    len(relations.CropsForFarm(f.ID, snap.crops)),
			PendingTasks: pending,
		})
	}

	return dash, nil
}

// GetFinances builds the finances view. The ledger honours the filters;
// the summary and monthly rollup always cover every transaction.
func (s *SummaryServiceImpl) GetFinances(ctx context.Context, req primary.FinanceRequest) (*primary.FinanceReport, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	report := &primary.FinanceReport{
		Summary: metrics.FinancialSummary(snap.txns),
		Rollup:  metrics.MonthlyRollup(snap.txns),
	}
	for _, txn := range metrics.FilterTransactions(snap.txns, req.FarmID, req.Type) {
		report.Lines = append(report.Lines, primary.TransactionLine{
			Transaction: txn,
			FarmName:    relations.FarmName(txn.FarmID, snap.farms),
		})
	}
	return report, nil
}

// GetStockReport builds the inventory view for a category or "all".
func (s *SummaryServiceImpl) GetStockReport(ctx context.Context, category string) (*primary.StockReport, error) {
	items, err := s.inventoryService.List(ctx, primary.InventoryFilters{})
	if err != nil {
		return nil, err
	}

	report := &primary.StockReport{}
	for _, item := range metrics.FilterByCategory(items, category) {
		report.Lines = append(report.Lines, stockLine(item))
	}
	return report, nil
}

// GetWeek builds the week calendar.
func (s *SummaryServiceImpl) GetWeek(ctx context.Context, req primary.WeekRequest) (*primary.WeekView, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	tasks := metrics.FilterByFarm(snap.tasks, req.FarmID)
	view := &primary.WeekView{}
	for _, day := range metrics.WeekDays(now) {
		view.Days = append(view.Days, primary.WeekDay{
			Date:  day,
			Tasks: taskLines(metrics.TasksDueOn(tasks, day), snap, now),
		})
	}
	return view, nil
}

func taskLines(tasks []models.Task, snap *snapshot, now time.Time) []primary.TaskLine {
	lines := make([]primary.TaskLine, 0, len(tasks))
	for _, t := range tasks {
		label, _ := relations.CropDisplayLabel(t.CropID, snap.crops)
		lines = append(lines, primary.TaskLine{
			Task:      t,
			FarmName:  relations.FarmName(t.FarmID, snap.farms),
			CropLabel: label,
			DueLabel:  metrics.DueDateLabel(t),
			Overdue:   metrics.IsOverdue(t, now),
		})
	}
	return lines
}

func stockLine(item models.InventoryItem) primary.StockLine {
	return primary.StockLine{
		Item:       item,
		Percentage: metrics.StockPercentage(item.CurrentStock, item.MaxCapacity),
		Level:      metrics.ClassifyStock(item.CurrentStock, item.MaxCapacity),
		Status:     metrics.StockStatusOf(item),
	}
}

// Ensure SummaryServiceImpl implements the interface
var _ primary.SummaryService = (*SummaryServiceImpl)(nil)
