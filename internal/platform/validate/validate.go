// Package validate holds the shared request validator and the loose input
// helpers used at the HTTP boundary.
package validate

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var instance = validator.New(validator.WithRequiredStructEnabled())

// Struct runs the shared validator against a tagged request struct.
func Struct(v any) error {
	return instance.Struct(v)
}

// dateLayouts are tried in order when normalizing caller-supplied dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DateOnly normalizes an arbitrary date-like string to a calendar date in UTC.
// It reports false when the input does not parse; callers then fall back to
// the processing date.
func DateOnly(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.UTC().Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
