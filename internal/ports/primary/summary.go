package primary

import (
	"context"
	"time"

	"github.com/example/farmhand/internal/core/metrics"
	"github.com/example/farmhand/internal/models"
)

// SummaryService defines the primary port for cross-entity views. Each
// call loads fresh data and feeds it through the metrics engine.
type SummaryService interface {
	// GetDashboard returns headline stats, upcoming and overdue work, and
	// items needing reorder.
	GetDashboard(ctx context.Context, req DashboardRequest) (*Dashboard, error)

	// GetFinances returns a filtered transaction ledger with its summary
	// and monthly rollup.
	GetFinances(ctx context.Context, req FinanceRequest) (*FinanceReport, error)

	// GetStockReport returns every inventory item with its stock band.
	GetStockReport(ctx context.Context, category string) (*StockReport, error)

	// GetWeek returns the Sunday-started week around Now with tasks due each day.
	GetWeek(ctx context.Context, req WeekRequest) (*WeekView, error)
}

// DashboardRequest contains parameters for the dashboard view.
type DashboardRequest struct {
	Now           time.Time
	UpcomingLimit int
}

// Dashboard is the landing view.
type Dashboard struct {
	Stats    metrics.Stats
	Upcoming []TaskLine
	Overdue  []TaskLine
	LowStock []StockLine
	Farms    []FarmSummary
	Crops    []metrics.StatusCount
}

// TaskLine is a task with its references resolved for display.
type TaskLine struct {
	Task      models.Task
	FarmName  string
	CropLabel string // empty when the task has no crop
	DueLabel  string
	Overdue   bool
}

// FarmSummary is a farm with its dependent counts.
type FarmSummary struct {
	Farm         models.Farm
	CropCount    int
	PendingTasks int
}

// FinanceRequest contains parameters for the finances view.
type FinanceRequest struct {
	FarmID string // raw id or "all"
	Type   string // expense, income or "all"
}

// FinanceReport is the finances view.
type FinanceReport struct {
	Lines   []TransactionLine
	Summary metrics.Summary
	Rollup  metrics.Rollup
}

// TransactionLine is a transaction with its farm resolved for display.
type TransactionLine struct {
	Transaction models.Transaction
	FarmName    string
}

// StockReport is the inventory view.
type StockReport struct {
	Lines []StockLine
}

// StockLine is an inventory item with its derived stock state.
type StockLine struct {
	Item       models.InventoryItem
	Percentage float64
	Level      metrics.StockLevel
	Status     metrics.StockStatus
}

// WeekRequest contains parameters for the week calendar.
type WeekRequest struct {
	Now    time.Time
	FarmID string
}

// WeekView is seven days of scheduled tasks.
type WeekView struct {
	Days []WeekDay
}

// WeekDay is one calendar day and the tasks due on it.
type WeekDay struct {
	Date  time.Time
	Tasks []TaskLine
}
