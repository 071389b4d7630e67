package crop

import (
	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/models"
)

// FromRecord builds a Crop from a canonical record.
func FromRecord(rec map[string]any) models.Crop {
	id, _ := normalize.ParseID(rec[normalize.IDField])
	farmID, _ := normalize.OptionalFK(rec["farm_id"])
	area, _ := normalize.Decimal(rec["area"])
	return models.Crop{
		ID:                  id,
		FarmID:              farmID,
		Name:                normalize.String(rec["Name"]),
		CropType:            normalize.String(rec["crop_type"]),
		PlantingDate:        normalize.String(rec["planting_date"]),
		ExpectedHarvestDate: normalize.String(rec["expected_harvest_date"]),
		Status:              normalize.String(rec["status"]),
		Area:                area,
		Notes:               normalize.String(rec["notes"]),
	}
}

// ToRecord renders a Crop in the storage naming convention, without Id.
func ToRecord(c models.Crop) map[string]any {
	return map[string]any{
		"Name":                  c.Name,
		"farm_id":               c.FarmID,
		"crop_type":             c.CropType,
		"planting_date":         c.PlantingDate,
		"expected_harvest_date": c.ExpectedHarvestDate,
		"status":                c.Status,
		"area":                  c.Area.String(),
		"notes":                 c.Notes,
	}
}
