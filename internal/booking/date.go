// Package booking holds the reservation engine: calendar dates, day ranges,
// availability snapshots, pricing and the two-click range selection. It is
// pure logic with no I/O; persistence and HTTP live in the outer layers.
package booking

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a single calendar day with no time-of-day and no timezone.
// Internally it is a UTC midnight instant, so day arithmetic is plain
// calendar arithmetic (no DST edges).
type Date struct {
	t time.Time
}

// ParseDate parses canonical YYYY-MM-DD text. Invalid calendar days
// (2024-02-30) are rejected, not normalized.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	return Date{t: t}, nil
}

// NewDate builds a Date from components, rejecting invalid days.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	y, m, d := t.Date()
	if y != year || m != month || d != day {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrFormat, year, month, day)
	}
	return Date{t: t}, nil
}

// DateOf truncates an instant to its UTC calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// String returns the canonical zero-padded form; it round-trips with ParseDate.
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) IsZero() bool { return d.t.IsZero() }

// Time exposes the underlying UTC midnight instant for DATE column writes.
func (d Date) Time() time.Time { return d.t }

func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }

// Compare returns -1, 0 or 1 by calendar order.
func (d Date) Compare(o Date) int {
	switch {
	case d.t.Before(o.t):
		return -1
	case d.t.After(o.t):
		return 1
	default:
		return 0
	}
}

// AddDays moves n calendar days; n may be negative.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the signed number of days from d to o.
func (d Date) DaysUntil(o Date) int {
	return int(o.t.Sub(d.t) / (24 * time.Hour))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrFormat, b)
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
