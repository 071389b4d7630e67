// Package relations answers read-side join questions over already-fetched
// entity collections. Nothing here touches the store.
package relations

import (
	"fmt"

	"github.com/example/farmhand/internal/models"
)

// Sentinels rendered for references that no longer resolve.
const (
	UnknownFarm = "Unknown Farm"
	UnknownCrop = "Unknown Crop"
)

func forFarm[T models.FarmScoped](farmID int64, items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.FarmRef() == farmID {
			out = append(out, item)
		}
	}
	return out
}

// CropsForFarm returns the crops planted on farmID.
func CropsForFarm(farmID int64, crops []models.Crop) []models.Crop {
	return forFarm(farmID, crops)
}

// TasksForFarm returns the tasks scheduled on farmID.
func TasksForFarm(farmID int64, tasks []models.Task) []models.Task {
	return forFarm(farmID, tasks)
}

// TransactionsForFarm returns the transactions booked against farmID.
func TransactionsForFarm(farmID int64, txns []models.Transaction) []models.Transaction {
	return forFarm(farmID, txns)
}

// FarmName returns the name of farmID, or UnknownFarm when the reference
// is orphaned.
func FarmName(farmID int64, farms []models.Farm) string {
	for _, f := range farms {
		if f.ID == farmID {
			return f.Name
		}
	}
	return UnknownFarm
}

// IsOrphaned reports whether farmID does not resolve to any farm.
func IsOrphaned(farmID int64, farms []models.Farm) bool {
	for _, f := range farms {
		if f.ID == farmID {
			return false
		}
	}
	return true
}

// WithoutOrphans drops items whose farm no longer exists.
func WithoutOrphans[T models.FarmScoped](items []T, farms []models.Farm) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !IsOrphaned(item.FarmRef(), farms) {
			out = append(out, item)
		}
	}
	return out
}

func findCrop(cropID int64, crops []models.Crop) (models.Crop, bool) {
	for _, c := range crops {
		if c.ID == cropID {
			return c, true
		}
	}
	return models.Crop{}, false
}

// CropForTask returns the crop a task references, if it still exists.
func CropForTask(task models.Task, crops []models.Crop) (models.Crop, bool) {
	if !task.HasCrop() {
		return models.Crop{}, false
	}
	return findCrop(task.CropID, crops)
}

// CropDisplayLabel renders "{cropType} ({status})". ok is false when no
// crop is selected; an orphaned reference renders as UnknownCrop.
func CropDisplayLabel(cropID int64, crops []models.Crop) (label string, ok bool) {
	if cropID <= 0 {
		return "", false
	}
	c, found := findCrop(cropID, crops)
	if !found {
		return UnknownCrop, true
	}
	return fmt.Sprintf("%s (%s)", c.CropType, c.Status), true
}

// CropName returns the crop's name, falling back to its type, or
// UnknownCrop when the reference does not resolve.
func CropName(cropID int64, crops []models.Crop) string {
	c, found := findCrop(cropID, crops)
	switch {
	case !found:
		return UnknownCrop
	case c.Name != "":
		return c.Name
	default:
		return c.CropType
	}
}
