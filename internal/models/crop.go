package models

import "github.com/shopspring/decimal"

// Crop is a planting on a farm.
type Crop struct {
	ID                  int64
	FarmID              int64
	Name                string
	CropType            string
	PlantingDate        string
	ExpectedHarvestDate string
	Status              string
	Area                decimal.Decimal // acres
	Notes               string
}

// Crop status constants, in lifecycle order. No transition graph is enforced.
const (
	CropStatusSeeding        = "Seeding"
	CropStatusGrowing        = "Growing"
	CropStatusFlowering      = "Flowering"
	CropStatusTuberFormation = "Tuber Formation"
	CropStatusReadyToHarvest = "Ready to Harvest"
	CropStatusHarvested      = "Harvested"
)

// CropStatuses lists the six statuses in lifecycle order.
var CropStatuses = []string{
	CropStatusSeeding,
	CropStatusGrowing,
	CropStatusFlowering,
	CropStatusTuberFormation,
	CropStatusReadyToHarvest,
	CropStatusHarvested,
}

// CropTypes lists the crop types offered when planting.
var CropTypes = []string{"Corn", "Soybeans", "Wheat", "Tomatoes", "Potatoes", "Carrots", "Lettuce", "Other"}

// FarmRef returns the owning farm's id.
func (c Crop) FarmRef() int64 { return c.FarmID }
