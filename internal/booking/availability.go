package booking

import "fmt"

// Calendar widget colors, kept in sync with the mobile app theme. Committed
// days render in the occupied color, the in-progress selection in the
// selection color.
const (
	ColorOccupied  = "#ff6347"
	ColorSelection = "#28a745"
	colorText      = "#fff"
)

// DayMarking is the per-day rendering instruction consumed by the calendar
// widget. StartingDay/EndingDay draw the rounded range caps.
type DayMarking struct {
	Color       string `json:"color"`
	TextColor   string `json:"textColor"`
	StartingDay bool   `json:"startingDay,omitempty"`
	EndingDay   bool   `json:"endingDay,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
}

// AvailabilityIndex is a read-only snapshot of the active reservation ranges
// for one vehicle. It is derived from the ledger and is never itself the
// source of truth: the ledger re-checks collisions at commit time.
type AvailabilityIndex struct {
	ranges []DateRange
}

func NewAvailabilityIndex(ranges []DateRange) *AvailabilityIndex {
	ix := &AvailabilityIndex{ranges: make([]DateRange, len(ranges))}
	copy(ix.ranges, ranges)
	return ix
}

// Collides reports whether the candidate shares a day with any committed
// range. O(k) in the number of ranges.
func (ix *AvailabilityIndex) Collides(candidate DateRange) bool {
	for _, r := range ix.ranges {
		if r.Overlaps(candidate) {
			return true
		}
	}
	return false
}

// Occupied reports whether a single day is committed.
func (ix *AvailabilityIndex) Occupied(d Date) bool {
	for _, r := range ix.ranges {
		if r.Contains(d) {
			return true
		}
	}
	return false
}

// Add records a freshly committed range in the snapshot (the optimistic local
// update after a successful commit).
func (ix *AvailabilityIndex) Add(r DateRange) {
	ix.ranges = append(ix.ranges, r)
}

// Ranges returns a copy of the committed ranges.
func (ix *AvailabilityIndex) Ranges() []DateRange {
	out := make([]DateRange, len(ix.ranges))
	copy(out, ix.ranges)
	return out
}

// OccupancyMap renders every committed day, keyed by canonical date text.
// Active ranges never share a day; finding one shared is a broken ledger
// invariant and returns ErrInvariantViolation instead of picking a winner.
func (ix *AvailabilityIndex) OccupancyMap() (map[string]DayMarking, error) {
	marks := make(map[string]DayMarking)
	for _, r := range ix.ranges {
		for d := range r.Days() {
			key := d.String()
			if _, dup := marks[key]; dup {
				return nil, fmt.Errorf("%w: day %s", ErrInvariantViolation, key)
			}
			marks[key] = DayMarking{
				Color:       ColorOccupied,
				TextColor:   colorText,
				StartingDay: d.Equal(r.Start),
				EndingDay:   d.Equal(r.End),
				Disabled:    true,
			}
		}
	}
	return marks, nil
}

// SelectionMap renders the in-progress selection. The caller merges it with
// the occupancy map, committed markings taking precedence since committed
// days are never selectable.
func SelectionMap(r DateRange) map[string]DayMarking {
	marks := make(map[string]DayMarking, r.DayCount())
	for d := range r.Days() {
		marks[d.String()] = DayMarking{
			Color:       ColorSelection,
			TextColor:   colorText,
			StartingDay: d.Equal(r.Start),
			EndingDay:   d.Equal(r.End),
		}
	}
	return marks
}
