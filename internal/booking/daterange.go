package booking

import (
	"fmt"
	"iter"
)

// DateRange is an inclusive span of calendar days; Start == End is a
// single-day range.
type DateRange struct {
	Start Date `json:"startDate"`
	End   Date `json:"endDate"`
}

func NewDateRange(start, end Date) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}
	return DateRange{Start: start, End: end}, nil
}

// ParseDateRange builds a range from two YYYY-MM-DD strings.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e)
}

// Days yields every day from Start through End inclusive. The sequence is
// finite and can be ranged over more than once.
func (r DateRange) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.Start; !d.After(r.End); d = d.AddDays(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// DayCount is the number of days in the range, counting both endpoints.
func (r DateRange) DayCount() int {
	return r.Start.DaysUntil(r.End) + 1
}

// Overlaps reports whether the two closed intervals share at least one day.
// This is the O(1) predicate behind every collision check; day-by-day
// iteration is reserved for building display maps.
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.Start.After(o.End) && !o.Start.After(r.End)
}

// Contains reports whether d falls inside the range.
func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r DateRange) String() string {
	return r.Start.String() + " - " + r.End.String()
}
