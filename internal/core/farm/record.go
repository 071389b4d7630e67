package farm

import (
	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/models"
)

// FromRecord builds a Farm from a canonical record. Malformed values are
// read as their zero value; reads never fail on stored data.
func FromRecord(rec map[string]any) models.Farm {
	id, _ := normalize.ParseID(rec[normalize.IDField])
	size, _ := normalize.Decimal(rec["size"])
	return models.Farm{
		ID:        id,
		Name:      normalize.String(rec["Name"]),
		Location:  normalize.String(rec["location"]),
		Size:      size,
		SizeUnit:  normalize.String(rec["size_unit"]),
		CreatedAt: normalize.String(rec["created_at"]),
	}
}

// ToRecord renders a Farm in the storage naming convention, without Id.
func ToRecord(f models.Farm) map[string]any {
	return map[string]any{
		"Name":       f.Name,
		"location":   f.Location,
		"size":       f.Size.String(),
		"size_unit":  f.SizeUnit,
		"created_at": f.CreatedAt,
	}
}
