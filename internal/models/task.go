package models

// Task is scheduled work on a farm, optionally tied to a crop.
type Task struct {
	ID            int64
	FarmID        int64
	CropID        int64 // 0 means no crop
	Title         string
	Type          string
	DueDate       string // raw; may be unparseable for records written elsewhere
	Completed     bool
	CompletedDate string // empty iff !Completed
	Notes         string
}

// HasCrop reports whether the task references a crop.
func (t Task) HasCrop() bool { return t.CropID > 0 }

// TaskTypes lists accepted task types.
var TaskTypes = []string{
	"Watering",
	"Fertilizing",
	"Harvesting",
	"Inspection",
	"Cultivation",
	"Planting",
	"Pest Control",
	"Other",
}

// FarmRef returns the owning farm's id.
func (t Task) FarmRef() int64 { return t.FarmID }
