package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format of the society API
const DateLayout = "2006-01-02"

// Date is a calendar date written as YYYY-MM-DD. Full RFC 3339 timestamps are
// also accepted on input and truncated to their date.
type Date struct {
	time.Time
}

// NewDate returns the date of t in UTC
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate reads YYYY-MM-DD or an RFC 3339 timestamp
func ParseDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(DateLayout, value); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON writes the date as "YYYY-MM-DD", or null when zero
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts null, "" and the formats of ParseDate
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	return d.UnmarshalParam(raw)
}

// UnmarshalParam lets gin bind form and query values into a Date
func (d *Date) UnmarshalParam(param string) error {
	if strings.TrimSpace(param) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(param)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
