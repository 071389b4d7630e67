package task

import (
	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/models"
)

// FromRecord builds a Task from a canonical record.
func FromRecord(rec map[string]any) models.Task {
	id, _ := normalize.ParseID(rec[normalize.IDField])
	farmID, _ := normalize.OptionalFK(rec["farm_id"])
	cropID, _ := normalize.OptionalFK(rec["crop_id"])
	return models.Task{
		ID:            id,
		FarmID:        farmID,
		CropID:        cropID,
		Title:         normalize.String(rec["title"]),
		Type:          normalize.String(rec["type"]),
		DueDate:       normalize.String(rec["due_date"]),
		Completed:     normalize.Bool(rec["completed"]),
		CompletedDate: normalize.String(rec["completed_date"]),
		Notes:         normalize.String(rec["notes"]),
	}
}

// ToRecord renders a Task in the storage naming convention, without Id.
// A missing crop or completion date is written as null.
func ToRecord(t models.Task) map[string]any {
	rec := map[string]any{
		"farm_id":        t.FarmID,
		"crop_id":        nil,
		"title":          t.Title,
		"type":           t.Type,
		"due_date":       t.DueDate,
		"completed":      t.Completed,
		"completed_date": nil,
		"notes":          t.Notes,
	}
	if t.HasCrop() {
		rec["crop_id"] = t.CropID
	}
	if t.CompletedDate != "" {
		rec["completed_date"] = t.CompletedDate
	}
	return rec
}
