package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// String renders v as text. nil becomes "".
func String(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case map[string]any:
		// lookup objects render as their display name
		if name, ok := lookupFold(x, "Name"); ok {
			return String(name)
		}
	}
	return fmt.Sprint(v)
}

// Int coerces v to an int. Empty values are an error.
func Int(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case float64:
		if x != math.Trunc(x) {
			return 0, fmt.Errorf("%v is not a whole number", x)
		}
		if x >= math.MaxInt || x < math.MinInt {
			return 0, fmt.Errorf("%v is out of range", x)
		}
		return int(x), nil
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			return 0, fmt.Errorf("%q is not a whole number", x.String())
		}
		return int(n), nil
	case string:
		return parseIntString(x)
	case []byte:
		return parseIntString(string(x))
	case decimal.Decimal:
		if !x.IsInteger() {
			return 0, fmt.Errorf("%s is not a whole number", x.String())
		}
		return int(x.IntPart()), nil
	case nil:
		return 0, fmt.Errorf("value is required")
	}
	return 0, fmt.Errorf("%v is not a whole number", v)
}

func parseIntString(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("value is required")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return n, nil
}

// Decimal coerces v to a decimal. Empty values are an error.
func Decimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, fmt.Errorf("%v is not a number", x)
		}
		return decimal.NewFromFloat(x), nil
	case json.Number:
		return parseDecimalString(x.String())
	case string:
		return parseDecimalString(x)
	case []byte:
		return parseDecimalString(string(x))
	case nil:
		return decimal.Zero, fmt.Errorf("value is required")
	}
	return decimal.Zero, fmt.Errorf("%v is not a number", v)
}

func parseDecimalString(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("value is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a number", s)
	}
	return d, nil
}

// Bool coerces v to a bool. Unrecognised values are false.
func Bool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(x))
		return b
	case []byte:
		b, _ := strconv.ParseBool(strings.TrimSpace(string(x)))
		return b
	}
	return false
}
