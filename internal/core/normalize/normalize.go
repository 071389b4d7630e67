// Package normalize is the single point where raw identifiers and the two
// field-naming conventions (form state vs. stored records) are resolved.
// Everything downstream assumes canonical storage-convention records.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/example/farmhand/internal/core/farmerr"
	"github.com/example/farmhand/internal/models"
)

// IDField is the canonical identifier key.
const IDField = "Id"

// Field pairs a storage key with the alternate key used by form state.
type Field struct {
	Storage string
	Alias   string
}

// tables holds one mapping table per entity kind.
var tables = map[models.Kind][]Field{
	models.KindFarm: {
		{"Name", "name"},
		{"location", "location"},
		{"size", "size"},
		{"size_unit", "sizeUnit"},
		{"created_at", "createdAt"},
	},
	models.KindCrop: {
		{"Name", "name"},
		{"farm_id", "farmId"},
		{"crop_type", "cropType"},
		{"planting_date", "plantingDate"},
		{"expected_harvest_date", "expectedHarvestDate"},
		{"status", "status"},
		{"area", "area"},
		{"notes", "notes"},
	},
	models.KindTask: {
		{"farm_id", "farmId"},
		{"crop_id", "cropId"},
		{"title", "title"},
		{"type", "type"},
		{"due_date", "dueDate"},
		{"completed", "completed"},
		{"completed_date", "completedDate"},
		{"notes", "notes"},
	},
	models.KindTransaction: {
		{"farm_id", "farmId"},
		{"type", "type"},
		{"category", "category"},
		{"amount", "amount"},
		{"date", "date"},
		{"description", "description"},
	},
	models.KindInventoryItem: {
		{"Name", "name"},
		{"category", "category"},
		{"current_stock", "currentStock"},
		{"max_capacity", "maxCapacity"},
		{"unit", "unit"},
		{"supplier", "supplier"},
		{"minimum_threshold", "minimumThreshold"},
		{"last_restocked", "lastRestocked"},
	},
}

// Fields returns the storage-convention field names for kind, excluding Id.
func Fields(kind models.Kind) []string {
	table := tables[kind]
	names := make([]string, len(table))
	for i, f := range table {
		names[i] = f.Storage
	}
	return names
}

// Canonicalize maps a raw payload in either naming convention onto the
// storage convention. Only keys present in raw (under either name) appear
// in the result. The storage value wins when present and non-empty.
func Canonicalize(kind models.Kind, raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	if raw == nil {
		return out
	}

	if v, ok := lookupFold(raw, IDField); ok {
		out[IDField] = v
	}

	for _, f := range tables[kind] {
		sv, sok := raw[f.Storage]
		av, aok := raw[f.Alias]
		switch {
		case sok && !isEmpty(sv):
			out[f.Storage] = sv
		case aok && !isEmpty(av):
			out[f.Storage] = av
		case sok:
			out[f.Storage] = sv
		case aok:
			out[f.Storage] = av
		}
	}
	return out
}

// lookupFold finds key case-insensitively, preferring an exact match.
func lookupFold(m map[string]any, key string) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case []byte:
		return len(strings.TrimSpace(string(x))) == 0
	}
	return false
}

// ParseID coerces a raw identifier into a non-negative integer. Reference
// fields returned by the store as lookup objects ({"Id": 3, "Name": ...})
// are unwrapped.
func ParseID(raw any) (int64, error) {
	switch v := raw.(type) {
	case int:
		return nonNegative(int64(v), raw)
	case int32:
		return nonNegative(int64(v), raw)
	case int64:
		return nonNegative(v, raw)
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, farmerr.InvalidIdentifier(raw)
		}
		return int64(v), nil
	case float64:
		// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold
		if v != math.Trunc(v) || v < 0 || v >= math.MaxInt64 {
			return 0, farmerr.InvalidIdentifier(raw)
		}
		return int64(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, farmerr.InvalidIdentifier(raw)
		}
		return nonNegative(n, raw)
	case string:
		return parseIDString(v, raw)
	case []byte:
		return parseIDString(string(v), raw)
	case map[string]any:
		if inner, ok := lookupFold(v, IDField); ok {
			return ParseID(inner)
		}
	}
	return 0, farmerr.InvalidIdentifier(raw)
}

func parseIDString(s string, raw any) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, farmerr.InvalidIdentifier(raw)
	}
	return nonNegative(n, raw)
}

func nonNegative(n int64, raw any) (int64, error) {
	if n < 0 {
		return 0, farmerr.InvalidIdentifier(raw)
	}
	return n, nil
}

// ParseFK parses a required foreign key, which must be positive.
func ParseFK(raw any) (int64, error) {
	id, err := ParseID(raw)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, farmerr.InvalidIdentifier(raw)
	}
	return id, nil
}

// OptionalFK parses a nullable foreign key. Missing, empty and zero values
// yield 0 with no error.
func OptionalFK(raw any) (int64, error) {
	if isEmpty(raw) {
		return 0, nil
	}
	id, err := ParseID(raw)
	if err != nil {
		return 0, err
	}
	return id, nil
}
