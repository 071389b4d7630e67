package normalize

import (
	"strings"
	"time"
)

// DateLayout is the layout used when writing calendar dates.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
}

// ParseDate parses a stored date. ok is false for empty or unparseable
// input; callers must treat that as a distinct, non-comparable state.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ValidDate reports whether s parses as a date.
func ValidDate(s string) bool {
	_, ok := ParseDate(s)
	return ok
}

// Timestamp renders an instant the way it is written to the store.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
