package task

import (
	"errors"
	"testing"
	"time"

	"github.com/example/farmhand/internal/core/farmerr"
	"github.com/example/farmhand/internal/models"
)

func validTask() map[string]any {
	return map[string]any{
		"farm_id":  1,
		"title":    "Water the tomatoes",
		"type":     "Watering",
		"due_date": "2024-06-10",
	}
}

func TestCanSaveTask(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(map[string]any)
		wantField string
	}{
		{name: "open task without crop", mutate: func(map[string]any) {}},
		{name: "open task with crop", mutate: func(r map[string]any) { r["crop_id"] = "4" }},
		{name: "empty crop id means none", mutate: func(r map[string]any) { r["crop_id"] = "" }},
		{
			name: "completed task with date",
			mutate: func(r map[string]any) {
				r["completed"] = true
				r["completed_date"] = "2024-06-09T08:00:00Z"
			},
		},
		{name: "completed without date", mutate: func(r map[string]any) { r["completed"] = true }, wantField: "completed_date"},
		{name: "open with date", mutate: func(r map[string]any) { r["completed_date"] = "2024-06-09" }, wantField: "completed_date"},
		{name: "missing title", mutate: func(r map[string]any) { r["title"] = "" }, wantField: "title"},
		{name: "unknown type", mutate: func(r map[string]any) { r["type"] = "Dancing" }, wantField: "type"},
		{name: "missing due date", mutate: func(r map[string]any) { delete(r, "due_date") }, wantField: "due_date"},
		{name: "invalid due date", mutate: func(r map[string]any) { r["due_date"] = "someday" }, wantField: "due_date"},
		{name: "bad crop id", mutate: func(r map[string]any) { r["crop_id"] = "corn" }, wantField: "crop_id"},
		{name: "missing farm", mutate: func(r map[string]any) { delete(r, "farm_id") }, wantField: "farm_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validTask()
			tt.mutate(rec)
			_, result := CanSaveTask(rec)
			if tt.wantField == "" {
				if !result.Allowed {
					t.Fatalf("expected allowed, got %v", result.Error())
				}
				return
			}
			if result.Allowed {
				t.Fatal("expected task to be rejected")
			}
			var fe *farmerr.Error
			if !errors.As(result.Error(), &fe) || !fe.HasField(tt.wantField) {
				t.Errorf("expected error on %q, got %v", tt.wantField, result.Error())
			}
		})
	}
}

func TestApplyCompletion(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("stamps completed task without date", func(t *testing.T) {
		rec := map[string]any{"completed": true}
		ApplyCompletion(rec, now)
		if rec["completed_date"] != "2024-06-10T12:00:00Z" {
			t.Errorf("completed_date = %v", rec["completed_date"])
		}
	})

	t.Run("keeps explicit completion date", func(t *testing.T) {
		rec := map[string]any{"completed": true, "completed_date": "2024-06-01"}
		ApplyCompletion(rec, now)
		if rec["completed_date"] != "2024-06-01" {
			t.Errorf("completed_date = %v", rec["completed_date"])
		}
	})

	t.Run("clears date on open task", func(t *testing.T) {
		rec := map[string]any{"completed": false, "completed_date": "2024-06-01"}
		ApplyCompletion(rec, now)
		if rec["completed_date"] != nil {
			t.Errorf("completed_date = %v, want nil", rec["completed_date"])
		}
	})
}

func TestToggleFields(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	fields := ToggleFields(models.Task{Completed: false}, now)
	if fields["completed"] != true || fields["completed_date"] != "2024-06-10T12:00:00Z" {
		t.Errorf("unexpected completion payload: %v", fields)
	}

	fields = ToggleFields(models.Task{Completed: true, CompletedDate: "2024-06-09"}, now)
	if fields["completed"] != false || fields["completed_date"] != nil {
		t.Errorf("unexpected reopen payload: %v", fields)
	}
}

func TestToRecord_NullsOptionalFields(t *testing.T) {
	rec := ToRecord(models.Task{FarmID: 1, Title: "Scout", Type: "Inspection", DueDate: "2024-06-10"})
	if rec["crop_id"] != nil || rec["completed_date"] != nil {
		t.Errorf("expected nil crop and completion date, got %v / %v", rec["crop_id"], rec["completed_date"])
	}
	back := FromRecord(rec)
	if back.HasCrop() || back.Completed {
		t.Errorf("unexpected round trip: %+v", back)
	}
}
