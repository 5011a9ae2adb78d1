package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Tod is a time-of-day value mapped to a Postgres TIME column.
// Schedule times carry minute precision only; seconds are always zero.
type Tod struct{ time.Time }

// From builds a Tod from a time.Time (keeps HH:mm, drops date, zone, seconds).
func From(t time.Time) Tod {
	return Tod{
		Time: time.Date(0, 1, 1, t.Hour(), t.Minute(), 0, 0, time.UTC),
	}
}

// Parse builds a Tod from "HH:mm[:ss]".
func Parse(s string) (Tod, error) {
	var tt Tod
	return tt, tt.parse(s)
}

// Scan accepts time.Time or string ("HH:MM[:SS]").
func (t *Tod) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*t = From(x)
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("tod: unsupported Scan type %T", v)
	}
}

func (t *Tod) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 5 { // "HH:MM"
		s += ":00"
	}
	tt, err := time.Parse("15:04:05", s)
	if err != nil {
		return err
	}
	*t = From(tt)
	return nil
}

// Value sends "HH:MM:SS" so Postgres TIME understands it.
func (t Tod) Value() (driver.Value, error) {
	if t.Time.IsZero() {
		return "00:00:00", nil
	}
	return t.Format("15:04:05"), nil
}

// Clock renders the wire format used in responses.
func (t Tod) Clock() string {
	return t.Format("15:04")
}

func (t Tod) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Clock())
}

func (t *Tod) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}
