package memory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/example/farmhand/internal/core/normalize"
	"github.com/example/farmhand/internal/ports/secondary"
)

// Matches reports whether rec satisfies every condition. Values compare
// numerically when both sides are numbers and as text otherwise, which
// orders ISO dates chronologically.
func Matches(rec secondary.Record, where []secondary.Condition) bool {
	for _, c := range where {
		if !matchOne(rec[c.Field], c) {
			return false
		}
	}
	return true
}

func matchOne(v any, c secondary.Condition) bool {
	if m, ok := v.(map[string]any); ok {
		if id, err := normalize.ParseID(m); err == nil {
			v = id
		}
	}
	left := strings.TrimSpace(normalize.String(v))
	for _, want := range c.Values {
		if holds(compare(left, strings.TrimSpace(want)), c.Operator) {
			return true
		}
	}
	return false
}

func compare(a, b string) int {
	da, errA := decimal.NewFromString(a)
	db, errB := decimal.NewFromString(b)
	if errA == nil && errB == nil {
		return da.Cmp(db)
	}
	return strings.Compare(a, b)
}

func holds(cmp int, op string) bool {
	switch op {
	case secondary.OpEqualTo:
		return cmp == 0
	case secondary.OpGreaterThan:
		return cmp > 0
	case secondary.OpGreaterThanOrEqualTo:
		return cmp >= 0
	case secondary.OpLessThan:
		return cmp < 0
	case secondary.OpLessThanOrEqualTo:
		return cmp <= 0
	}
	return false
}
