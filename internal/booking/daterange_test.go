package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, start, end string) DateRange {
	t.Helper()
	r, err := ParseDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewDateRangeRejectsReversed(t *testing.T) {
	_, err := ParseDateRange("2024-06-03", "2024-06-01")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestSingleDayRangeIsValid(t *testing.T) {
	r := mustRange(t, "2024-06-01", "2024-06-01")
	assert.Equal(t, 1, r.DayCount())
}

func TestDaysIteratesInclusive(t *testing.T) {
	r := mustRange(t, "2024-06-01", "2024-06-03")

	var days []string
	for d := range r.Days() {
		days = append(days, d.String())
	}
	assert.Equal(t, []string{"2024-06-01", "2024-06-02", "2024-06-03"}, days)
}

func TestDaysIsRestartable(t *testing.T) {
	r := mustRange(t, "2024-06-01", "2024-06-03")
	seq := r.Days()

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	assert.Equal(t, 3, count())
	assert.Equal(t, 3, count())
}

func TestDaysStopsWhenYieldReturnsFalse(t *testing.T) {
	r := mustRange(t, "2024-06-01", "2024-06-30")
	n := 0
	for range r.Days() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestDayCountIsInclusive(t *testing.T) {
	assert.Equal(t, 3, mustRange(t, "2024-06-01", "2024-06-03").DayCount())
	assert.Equal(t, 2, mustRange(t, "2024-12-31", "2025-01-01").DayCount())
	assert.Equal(t, 2, mustRange(t, "2024-02-28", "2024-02-29").DayCount())
}

func TestOverlaps(t *testing.T) {
	base := mustRange(t, "2024-06-05", "2024-06-10")

	cases := []struct {
		name  string
		other DateRange
		want  bool
	}{
		{"identical", mustRange(t, "2024-06-05", "2024-06-10"), true},
		{"contained", mustRange(t, "2024-06-06", "2024-06-08"), true},
		{"containing", mustRange(t, "2024-06-01", "2024-06-30"), true},
		{"shared start endpoint", mustRange(t, "2024-06-01", "2024-06-05"), true},
		{"shared end endpoint", mustRange(t, "2024-06-10", "2024-06-15"), true},
		{"adjacent before", mustRange(t, "2024-06-01", "2024-06-04"), false},
		{"adjacent after", mustRange(t, "2024-06-11", "2024-06-15"), false},
		{"disjoint", mustRange(t, "2024-07-01", "2024-07-05"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			assert.Equal(t, tc.want, tc.other.Overlaps(base), "Overlaps must be symmetric")
		})
	}
}

func TestContains(t *testing.T) {
	r := mustRange(t, "2024-06-05", "2024-06-10")

	inside, _ := ParseDate("2024-06-07")
	start, _ := ParseDate("2024-06-05")
	end, _ := ParseDate("2024-06-10")
	before, _ := ParseDate("2024-06-04")
	after, _ := ParseDate("2024-06-11")

	assert.True(t, r.Contains(inside))
	assert.True(t, r.Contains(start))
	assert.True(t, r.Contains(end))
	assert.False(t, r.Contains(before))
	assert.False(t, r.Contains(after))
}
