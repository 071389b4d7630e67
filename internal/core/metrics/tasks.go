package metrics

import (
	"sort"
	"time"

	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/models"
)

// Task views.
const (
	ViewAll       = models.FilterAll
	ViewPending   = "pending"
	ViewCompleted = "completed"
	ViewOverdue   = "overdue"
)

// NoDueDate is rendered for tasks whose due date cannot be parsed.
const NoDueDate = "No due date"

// IsOverdue reports whether t is open with a valid due date before now.
// Unparseable due dates are never overdue.
func IsOverdue(t models.Task, now time.Time) bool {
	if t.Completed {
		return false
	}
	due, ok := normalize.ParseDate(t.DueDate)
	return ok && due.Before(now)
}

// OverdueTasks returns the overdue tasks in input order.
func OverdueTasks(tasks []models.Task, now time.Time) []models.Task {
	out := []models.Task{}
	for _, t := range tasks {
		if IsOverdue(t, now) {
			out = append(out, t)
		}
	}
	return out
}

// DueDateLabel renders a due date for display.
func DueDateLabel(t models.Task) string {
	due, ok := normalize.ParseDate(t.DueDate)
	if !ok {
		return NoDueDate
	}
	return due.Format("Jan 2, 2006")
}

// SortByDueDate returns a copy of tasks ordered by due date ascending.
// Tasks with unparseable due dates sort last, keeping their input order.
func SortByDueDate(tasks []models.Task) []models.Task {
	out := append([]models.Task{}, tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		di, okI := normalize.ParseDate(out[i].DueDate)
		dj, okJ := normalize.ParseDate(out[j].DueDate)
		switch {
		case okI && okJ:
			return di.Before(dj)
		default:
			return okI && !okJ
		}
	})
	return out
}

// UpcomingTasks returns open tasks with valid due dates, soonest first,
// capped to limit. A limit of zero or less means no cap.
func UpcomingTasks(tasks []models.Task, limit int) []models.Task {
	out := []models.Task{}
	for _, t := range SortByDueDate(tasks) {
		if t.Completed || !normalize.ValidDate(t.DueDate) {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, t)
	}
	return out
}

// FilterTasks applies a task view: all, pending, completed or overdue.
// Unknown views behave like all.
func FilterTasks(tasks []models.Task, view string, now time.Time) []models.Task {
	out := []models.Task{}
	for _, t := range tasks {
		keep := true
		switch view {
		case ViewPending:
			keep = !t.Completed
		case ViewCompleted:
			keep = t.Completed
		case ViewOverdue:
			keep = IsOverdue(t, now)
		}
		if keep {
			out = append(out, t)
		}
	}
	return out
}

// WeekDays returns the seven days of the Sunday-started week containing
// now, each at midnight in now's location.
func WeekDays(now time.Time) []time.Time {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start = start.AddDate(0, 0, -int(start.Weekday()))
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// TasksDueOn returns tasks whose due date falls on day's calendar date.
func TasksDueOn(tasks []models.Task, day time.Time) []models.Task {
	out := []models.Task{}
	for _, t := range tasks {
		due, ok := normalize.ParseDate(t.DueDate)
		if ok && due.Year() == day.Year() && due.Month() == day.Month() && due.Day() == day.Day() {
			out = append(out, t)
		}
	}
	return out
}
