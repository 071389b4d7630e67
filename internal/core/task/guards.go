// Package task contains the pure business logic for task records.
// Guards are pure functions that evaluate preconditions without side effects.
package task

import (
	"strings"
	"time"

	"github.com/example/farmhand/internal/core/farmerr"
	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	Fields  []farmerr.FieldError
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return farmerr.Validation("", r.Reason, r.Fields...)
}

// CanSaveTask evaluates a canonical task record before it is written.
// Rules:
// - farm_id must parse to a positive id, crop_id may be empty
// - title must be non-empty and type one of TaskTypes
// - due_date is required
// - completed_date is set if and only if completed is true
func CanSaveTask(rec map[string]any) (models.Task, GuardResult) {
	r := normalize.NewReader(rec)
	t := models.Task{
		FarmID:        r.FK("farm_id"),
		CropID:        r.OptionalFK("crop_id"),
		Title:         r.RequiredText("title"),
		Type:          r.OneOf("type", models.TaskTypes),
		DueDate:       r.Date("due_date", true),
		Completed:     r.Bool("completed"),
		CompletedDate: r.Date("completed_date", false),
		Notes:         r.Text("notes"),
	}

	switch {
	case t.Completed && t.CompletedDate == "" && !r.Failed("completed_date"):
		r.Fail("completed_date", "is required when the task is completed")
	case !t.Completed && t.CompletedDate != "":
		r.Fail("completed_date", "must be empty while the task is open")
	}

	if errs := r.Errors(); len(errs) > 0 {
		return t, GuardResult{Allowed: false, Reason: "invalid task", Fields: errs}
	}
	return t, GuardResult{Allowed: true}
}

// ApplyCompletion brings completed_date in line with completed on a
// canonical record: a completed task without a date is stamped with now,
// an open task has its date cleared.
func ApplyCompletion(rec map[string]any, now time.Time) {
	if normalize.Bool(rec["completed"]) {
		if strings.TrimSpace(normalize.String(rec["completed_date"])) == "" {
			rec["completed_date"] = normalize.Timestamp(now)
		}
		return
	}
	rec["completed_date"] = nil
}

// ToggleFields computes the single update payload that flips a task
// between open and completed. Both fields always travel together.
func ToggleFields(current models.Task, now time.Time) map[string]any {
	if current.Completed {
		return map[string]any{"completed": false, "completed_date": nil}
	}
	return map[string]any{"completed": true, "completed_date": normalize.Timestamp(now)}
}
