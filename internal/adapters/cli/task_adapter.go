package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/example/farmhand/internal/core/metrics"
	"github.com/example/farmhand/internal/ports/primary"
)

// TaskAdapter is a thin adapter that translates CLI operations to TaskService calls.
type TaskAdapter struct {
	service primary.TaskService
	out     io.Writer
	now     func() time.Time
}

// NewTaskAdapter creates a new TaskAdapter with the given service.
// now supplies the instant overdue markers are computed against.
func NewTaskAdapter(service primary.TaskService, out io.Writer, now func() time.Time) *TaskAdapter {
	return &TaskAdapter{
		service: service,
		out:     out,
		now:     now,
	}
}

// List lists tasks. filters.Status accepts any task view: all, pending,
// completed or overdue.
func (a *TaskAdapter) List(ctx context.Context, filters primary.TaskFilters) error {
	tasks, err := a.service.List(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks found")
		return nil
	}

	now := a.now()
	fmt.Fprintf(a.out, "\n%-6s %-3s %-14s %-14s %s\n", "ID", "", "DUE", "TYPE", "TITLE")
	fmt.Fprintln(a.out, rule)
	for _, t := range metrics.SortByDueDate(tasks) {
		marker := ""
		if metrics.IsOverdue(t, now) {
			marker = red.Sprint(" overdue")
		}
		fmt.Fprintf(a.out, "%-6d [%s] %-14s %-14s %s%s\n", t.ID, check(t.Completed), metrics.DueDateLabel(t), t.Type, t.Title, marker)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Create schedules a new task.
func (a *TaskAdapter) Create(ctx context.Context, payload primary.Payload) error {
	task, err := a.service.Create(ctx, payload)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created task %d: %s (due %s)\n", task.ID, task.Title, metrics.DueDateLabel(*task))
	return nil
}

// Update applies payload to a task. Setting completed stamps or clears
// the completion date.
func (a *TaskAdapter) Update(ctx context.Context, id string, payload primary.Payload) error {
	if len(payload) == 0 {
		return fmt.Errorf("must specify at least one field to update")
	}

	task, err := a.service.Update(ctx, id, payload)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Task %d updated (due %s)\n", task.ID, metrics.DueDateLabel(*task))
	return nil
}

// Toggle flips a task between open and completed.
func (a *TaskAdapter) Toggle(ctx context.Context, id string) error {
	task, err := a.service.ToggleComplete(ctx, id)
	if err != nil {
		return err
	}

	if task.Completed {
		fmt.Fprintf(a.out, "✓ Task %d completed\n", task.ID)
	} else {
		fmt.Fprintf(a.out, "✓ Task %d reopened\n", task.ID)
	}
	return nil
}

// Delete deletes a task.
func (a *TaskAdapter) Delete(ctx context.Context, id string) error {
	if err := a.service.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Task %s deleted\n", id)
	return nil
}
