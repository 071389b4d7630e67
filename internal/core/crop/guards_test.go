package crop

import (
	"errors"
	"testing"

	"github.com/example/farmhand/internal/core/farmerr"
)

func validCrop() map[string]any {
	return map[string]any{
		"farm_id":               "2",
		"crop_type":             "Corn",
		"planting_date":         "2024-04-15",
		"expected_harvest_date": "2024-09-30",
		"status":                "Growing",
		"area":                  "35.5",
	}
}

func TestCanSaveCrop(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(map[string]any)
		wantField string // empty means allowed
	}{
		{name: "valid crop", mutate: func(map[string]any) {}},
		{name: "lookup object farm id accepted", mutate: func(r map[string]any) { r["farm_id"] = map[string]any{"Id": 2, "Name": "North"} }},
		{name: "missing farm id", mutate: func(r map[string]any) { delete(r, "farm_id") }, wantField: "farm_id"},
		{name: "non-numeric farm id", mutate: func(r map[string]any) { r["farm_id"] = "north" }, wantField: "farm_id"},
		{name: "zero farm id", mutate: func(r map[string]any) { r["farm_id"] = 0 }, wantField: "farm_id"},
		{name: "harvest equal to planting", mutate: func(r map[string]any) { r["expected_harvest_date"] = "2024-04-15" }, wantField: "expected_harvest_date"},
		{name: "harvest before planting", mutate: func(r map[string]any) { r["expected_harvest_date"] = "2024-01-01" }, wantField: "expected_harvest_date"},
		{name: "unparseable planting date", mutate: func(r map[string]any) { r["planting_date"] = "spring" }, wantField: "planting_date"},
		{name: "unknown status", mutate: func(r map[string]any) { r["status"] = "Dormant" }, wantField: "status"},
		{name: "zero area", mutate: func(r map[string]any) { r["area"] = 0 }, wantField: "area"},
		{name: "unknown crop type", mutate: func(r map[string]any) { r["crop_type"] = "Kudzu" }, wantField: "crop_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validCrop()
			tt.mutate(rec)
			c, result := CanSaveCrop(rec)
			if tt.wantField == "" {
				if !result.Allowed {
					t.Fatalf("expected allowed, got %v", result.Error())
				}
				if c.FarmID != 2 {
					t.Errorf("FarmID = %d, want 2", c.FarmID)
				}
				return
			}
			if result.Allowed {
				t.Fatal("expected crop to be rejected")
			}
			var fe *farmerr.Error
			if !errors.As(result.Error(), &fe) || !fe.HasField(tt.wantField) {
				t.Errorf("expected error on %q, got %v", tt.wantField, result.Error())
			}
		})
	}
}

func TestToRecord_CarriesNumericFarmID(t *testing.T) {
	c, result := CanSaveCrop(validCrop())
	if !result.Allowed {
		t.Fatalf("unexpected rejection: %v", result.Error())
	}
	rec := ToRecord(c)
	if rec["farm_id"] != int64(2) {
		t.Errorf("farm_id = %#v, want int64(2)", rec["farm_id"])
	}
	if back := FromRecord(rec); back.FarmID != 2 || back.Area.String() != "35.5" {
		t.Errorf("unexpected round trip: %+v", back)
	}
}
