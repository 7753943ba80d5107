package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollides(t *testing.T) {
	ix := NewAvailabilityIndex([]DateRange{
		mustRange(t, "2024-06-01", "2024-06-03"),
		mustRange(t, "2024-06-10", "2024-06-12"),
	})

	assert.True(t, ix.Collides(mustRange(t, "2024-06-02", "2024-06-02")))
	assert.True(t, ix.Collides(mustRange(t, "2024-06-03", "2024-06-05")))
	assert.True(t, ix.Collides(mustRange(t, "2024-06-01", "2024-06-30")))
	assert.False(t, ix.Collides(mustRange(t, "2024-06-04", "2024-06-09")))
	assert.False(t, ix.Collides(mustRange(t, "2024-06-13", "2024-06-20")))
}

func TestCollidesOnEmptyIndex(t *testing.T) {
	ix := NewAvailabilityIndex(nil)
	assert.False(t, ix.Collides(mustRange(t, "2024-06-01", "2024-06-03")))
}

func TestOccupied(t *testing.T) {
	ix := NewAvailabilityIndex([]DateRange{mustRange(t, "2024-06-01", "2024-06-03")})

	in, _ := ParseDate("2024-06-02")
	out, _ := ParseDate("2024-06-04")
	assert.True(t, ix.Occupied(in))
	assert.False(t, ix.Occupied(out))
}

func TestAddRecordsCommittedRange(t *testing.T) {
	ix := NewAvailabilityIndex(nil)
	r := mustRange(t, "2024-06-01", "2024-06-03")

	assert.False(t, ix.Collides(r))
	ix.Add(r)
	assert.True(t, ix.Collides(r))
	assert.Len(t, ix.Ranges(), 1)
}

func TestNewAvailabilityIndexCopiesInput(t *testing.T) {
	ranges := []DateRange{mustRange(t, "2024-06-01", "2024-06-03")}
	ix := NewAvailabilityIndex(ranges)

	ranges[0] = mustRange(t, "2024-07-01", "2024-07-03")
	assert.True(t, ix.Collides(mustRange(t, "2024-06-02", "2024-06-02")))
	assert.False(t, ix.Collides(mustRange(t, "2024-07-02", "2024-07-02")))
}

func TestOccupancyMapMarkings(t *testing.T) {
	ix := NewAvailabilityIndex([]DateRange{mustRange(t, "2024-06-01", "2024-06-03")})

	marks, err := ix.OccupancyMap()
	require.NoError(t, err)
	require.Len(t, marks, 3)

	start := marks["2024-06-01"]
	assert.Equal(t, ColorOccupied, start.Color)
	assert.Equal(t, "#fff", start.TextColor)
	assert.True(t, start.StartingDay)
	assert.False(t, start.EndingDay)
	assert.True(t, start.Disabled)

	middle := marks["2024-06-02"]
	assert.False(t, middle.StartingDay)
	assert.False(t, middle.EndingDay)

	end := marks["2024-06-03"]
	assert.False(t, end.StartingDay)
	assert.True(t, end.EndingDay)
}

func TestOccupancyMapSingleDayIsBothCaps(t *testing.T) {
	ix := NewAvailabilityIndex([]DateRange{mustRange(t, "2024-06-01", "2024-06-01")})

	marks, err := ix.OccupancyMap()
	require.NoError(t, err)
	mark := marks["2024-06-01"]
	assert.True(t, mark.StartingDay)
	assert.True(t, mark.EndingDay)
}

func TestOccupancyMapRejectsOverlappingRanges(t *testing.T) {
	// A snapshot holding overlapping ranges means the ledger invariant is
	// already broken; the map refuses to render it.
	ix := NewAvailabilityIndex([]DateRange{
		mustRange(t, "2024-06-01", "2024-06-03"),
		mustRange(t, "2024-06-03", "2024-06-05"),
	})

	_, err := ix.OccupancyMap()
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestSelectionMapMarkings(t *testing.T) {
	marks := SelectionMap(mustRange(t, "2024-06-01", "2024-06-02"))

	require.Len(t, marks, 2)
	start := marks["2024-06-01"]
	assert.Equal(t, ColorSelection, start.Color)
	assert.True(t, start.StartingDay)
	assert.False(t, start.Disabled)
	assert.True(t, marks["2024-06-02"].EndingDay)
}
