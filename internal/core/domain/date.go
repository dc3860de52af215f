package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the stored form of a Date.
const DateLayout = "2006-01-02"

// DisplayLayout is the form a Date takes in API responses.
const DisplayLayout = "Mon Jan 02 2006"

// isoLayouts are the ISO-8601 shapes accepted from clients, most specific first.
// Any time-of-day or offset is parsed only to validate the input and then dropped.
var isoLayouts = []string{
	time.RFC3339,                // Fraction optional
	"2006-01-02T15:04:05Z0700",  // Offset without colon
	"2006-01-02T15:04:05",       // Without offset
	"2006-01-02T15:04Z07:00",    // Without seconds
	"2006-01-02T15:04Z0700",     // Without seconds, offset without colon
	"2006-01-02T15:04",          // Without seconds or offset
	"2006-01-02T15",             // Hour only
	"2006-01-02 15:04:05Z07:00", // Space separator
	"2006-01-02 15:04:05Z0700",  // Space separator, offset without colon
	"2006-01-02 15:04:05",       // Space separator without offset
	"2006-01-02 15:04",          // Space separator without seconds
	DateLayout,                  // Date only
	"2006-01",                   // Year and month, first of the month
	"20060102T150405Z0700",      // Basic format
	"20060102T150405",           // Basic format without offset
	"20060102",                  // Basic format date only
	"2006",                      // Year only, first of January
}

// Date is a calendar day in UTC with no time-of-day component.
// The zero value is not a valid date; use IsZero to detect it.
type Date struct {
	t time.Time
}

// NewDate returns the given calendar day. Out-of-range values are normalized
// the way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day t falls on in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Date())
}

// Today returns the UTC calendar day of now.
func Today(now time.Time) Date {
	return DateOf(now.UTC())
}

// ParseDate parses the stored YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected %s", s, DateLayout)
	}
	return DateOf(t), nil
}

// ParseISODate parses a client supplied ISO-8601 date. Only the calendar day
// written in the input survives: an offset such as -04:00 is not applied.
func ParseISODate(raw string) (Date, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Date{}, false
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return DateOf(t), true
		}
	}

	return Date{}, false
}

// NormalizeDate turns a raw client date into a Date. Missing or unparseable
// input falls back to the UTC day of now, in which case parsed is false.
func NormalizeDate(raw string, now time.Time) (d Date, parsed bool) {
	if d, ok := ParseISODate(raw); ok {
		return d, true
	}
	return Today(now), false
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return d.t
}

// String returns the stored YYYY-MM-DD form.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// Display renders the day as "Mon Jan 02 2006".
func (d Date) Display() string {
	return d.t.Format(DisplayLayout)
}

func (d Date) Before(o Date) bool {
	return d.t.Before(o.t)
}

func (d Date) After(o Date) bool {
	return d.t.After(o.t)
}

func (d Date) Equal(o Date) bool {
	return d.t.Equal(o.t)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	return d.t.Compare(o.t)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores the date as YYYY-MM-DD text.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan reads a date column written by Value.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case time.Time:
		*d = DateOf(v.UTC())
		return nil
	case nil:
		return fmt.Errorf("cannot scan NULL into Date")
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
