package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/example/farmhand/internal/ports/primary"
)

// SummaryAdapter renders the cross-entity views.
type SummaryAdapter struct {
	service primary.SummaryService
	out     io.Writer
	now     func() time.Time
}

// NewSummaryAdapter creates a new SummaryAdapter with the given service.
func NewSummaryAdapter(service primary.SummaryService, out io.Writer, now func() time.Time) *SummaryAdapter {
	return &SummaryAdapter{
		service: service,
		out:     out,
		now:     now,
	}
}

// Dashboard prints the landing view.
func (a *SummaryAdapter) Dashboard(ctx context.Context, upcomingLimit int) error {
	d, err := a.service.GetDashboard(ctx, primary.DashboardRequest{Now: a.now(), UpcomingLimit: upcomingLimit})
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}

	s := d.Stats
	fmt.Fprintf(a.out, "\nFarms: %d   Active crops: %d   Pending tasks: %d   This month: %s\n",
		s.TotalFarms, s.ActiveCrops, s.PendingTasks, signedMoney(s.MonthlyProfit))
	fmt.Fprintln(a.out, rule)

	a.taskSection("Upcoming tasks", d.Upcoming, "Nothing scheduled")
	if len(d.Overdue) > 0 {
		a.taskSection(red.Sprint("Overdue"), d.Overdue, "")
	}

	if len(d.LowStock) > 0 {
		fmt.Fprintln(a.out, "\nLow stock")
		for _, l := range d.LowStock {
			fmt.Fprintf(a.out, "  %-22s %d/%d %-8s %s\n",
				l.Item.Name, l.Item.CurrentStock, l.Item.MaxCapacity, l.Item.Unit, statusText(l.Status))
		}
	}

	if len(d.Farms) > 0 {
		fmt.Fprintln(a.out, "\nFarms")
		for _, f := range d.Farms {
			fmt.Fprintf(a.out, "  %-24s %d crops, %d pending tasks\n", f.Farm.Name, f.CropCount, f.PendingTasks)
		}
	}

	fmt.Fprintln(a.out, "\nCrops by status")
	for _, c := range d.Crops {
		if c.Count == 0 {
			continue
		}
		fmt.Fprintf(a.out, "  %-18s %d\n", c.Status, c.Count)
	}
	fmt.Fprintln(a.out)

	return nil
}

func (a *SummaryAdapter) taskSection(title string, lines []primary.TaskLine, empty string) {
	fmt.Fprintf(a.out, "\n%s\n", title)
	if len(lines) == 0 {
		fmt.Fprintf(a.out, "  %s\n", empty)
		return
	}
	for _, l := range lines {
		fmt.Fprintf(a.out, "  %-14s %s%s\n", l.DueLabel, l.Task.Title, taskContext(l))
	}
}

func taskContext(l primary.TaskLine) string {
	if l.CropLabel != "" {
		return fmt.Sprintf(" (%s / %s)", l.FarmName, l.CropLabel)
	}
	return fmt.Sprintf(" (%s)", l.FarmName)
}

// Finances prints the ledger and its summary.
func (a *SummaryAdapter) Finances(ctx context.Context, req primary.FinanceRequest) error {
	report, err := a.service.GetFinances(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to load finances: %w", err)
	}

	s := report.Summary
	fmt.Fprintf(a.out, "\nIncome: %s   Expenses: %s   Net: %s   (%d transactions)\n",
		money(s.TotalIncome), money(s.TotalExpenses), signedMoney(s.NetProfit), s.Count)
	fmt.Fprintln(a.out, rule)

	if len(report.Lines) == 0 {
		fmt.Fprintln(a.out, "No transactions found")
		return nil
	}
	for _, l := range report.Lines {
		t := l.Transaction
		fmt.Fprintf(a.out, "%-12s %-20s %-22s %s\n", t.Date, l.FarmName, t.Category, signedMoney(t.Signed()))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Rollup prints income and expense per calendar month.
func (a *SummaryAdapter) Rollup(ctx context.Context) error {
	report, err := a.service.GetFinances(ctx, primary.FinanceRequest{})
	if err != nil {
		return fmt.Errorf("failed to load finances: %w", err)
	}

	r := report.Rollup
	if len(r.Buckets) == 0 {
		fmt.Fprintln(a.out, "No dated transactions")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %14s %14s %14s\n", "MONTH", "INCOME", "EXPENSE", "NET")
	fmt.Fprintln(a.out, rule)
	for _, b := range r.Buckets {
		fmt.Fprintf(a.out, "%-10s %14s %14s %14s\n", b.Month, money(b.Income), money(b.Expense), money(b.Net))
	}
	fmt.Fprintln(a.out, rule)
	fmt.Fprintf(a.out, "%-10s %14s %14s %14s\n", "TOTAL", money(r.TotalIncome), money(r.TotalExpense), money(r.Net))
	if r.Skipped > 0 {
		fmt.Fprintln(a.out, yellow.Sprintf("%d transaction(s) with unreadable dates left out", r.Skipped))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Stock prints every item with its stock band.
func (a *SummaryAdapter) Stock(ctx context.Context, category string) error {
	report, err := a.service.GetStockReport(ctx, category)
	if err != nil {
		return fmt.Errorf("failed to load stock report: %w", err)
	}

	if len(report.Lines) == 0 {
		fmt.Fprintln(a.out, "No inventory items found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-22s %-16s %6s %-10s %s\n", "ITEM", "STOCK", "FULL", "LEVEL", "STATUS")
	fmt.Fprintln(a.out, rule)
	for _, l := range report.Lines {
		stock := fmt.Sprintf("%d/%d %s", l.Item.CurrentStock, l.Item.MaxCapacity, l.Item.Unit)
		fmt.Fprintf(a.out, "%-22s %-16s %5.0f%% %s %s\n",
			l.Item.Name, stock, l.Percentage, levelText(l.Level, levelWidth), statusText(l.Status))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Week prints the current Sunday-started week of tasks.
func (a *SummaryAdapter) Week(ctx context.Context, farmID string) error {
	now := a.now()
	view, err := a.service.GetWeek(ctx, primary.WeekRequest{Now: now, FarmID: farmID})
	if err != nil {
		return fmt.Errorf("failed to load week: %w", err)
	}

	fmt.Fprintln(a.out)
	for _, day := range view.Days {
		label := day.Date.Format("Mon Jan 2")
		if sameDay(day.Date, now) {
			label = magenta.Sprint(label + " (today)")
		}
		fmt.Fprintln(a.out, label)
		for _, l := range day.Tasks {
			fmt.Fprintf(a.out, "  [%s] %s%s\n", check(l.Task.Completed), l.Task.Title, taskContext(l))
		}
	}
	fmt.Fprintln(a.out)

	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
