package helper

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

/* ===============================
   Field parsing (dates, clock times, floats)
=================================*/

// ParseISODate parses a required "YYYY-MM-DD" value.
func ParseISODate(value, field string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be ISO date (YYYY-MM-DD)", field)
	}
	return d, nil
}

// ParseClockTime parses an optional 24h "HH:MM" (or "HH:MM:SS") value and
// truncates it to minute precision. Empty input yields nil.
func ParseClockTime(value, field string) (*time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil, nil
	}
	layout := "15:04"
	if strings.Count(v, ":") == 2 {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, v)
	if err != nil {
		return nil, fmt.Errorf("%s must be HH:MM (24h)", field)
	}
	tt := time.Date(0, 1, 1, t.Hour(), t.Minute(), 0, 0, time.UTC)
	return &tt, nil
}

// ParseOptionalFloat parses an optional numeric value (string or raw JSON
// number already stringified by the caller). Empty input yields nil;
// non-finite or non-numeric input is an error naming the field.
func ParseOptionalFloat(value, field string) (*float64, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%s must be a number", field)
	}
	return &f, nil
}

// CoerceOptionalFloat coerces a loosely-typed JSON value (number or numeric
// string) into a float. nil yields nil.
func CoerceOptionalFloat(value any, field string) (*float64, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s must be a number", field)
		}
		return &v, nil
	case float32:
		f := float64(v)
		return &f, nil
	case int:
		f := float64(v)
		return &f, nil
	case int64:
		f := float64(v)
		return &f, nil
	case string:
		return ParseOptionalFloat(v, field)
	default:
		return nil, fmt.Errorf("%s must be a number", field)
	}
}

// FormatClock renders a time-of-day as "HH:MM"; nil renders as empty string.
func FormatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}
