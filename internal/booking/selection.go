package booking

// Selection is the two-click day-range picker. It replaces the pair of
// mutable view-state variables the calendar screen used to hold with an
// explicit value: empty, pending start, or selected range. Press returns the
// next state and never mutates the receiver.
type Selection struct {
	pending  Date
	hasStart bool
	selected DateRange
	complete bool
}

// PendingStart returns the first pressed day while the second press is
// awaited.
func (s Selection) PendingStart() (Date, bool) {
	return s.pending, s.hasStart
}

// Range returns the completed selection.
func (s Selection) Range() (DateRange, bool) {
	return s.selected, s.complete
}

// Press applies one day press against the committed availability snapshot.
//
// A press on a committed day is rejected outright and consumes nothing. The
// first accepted press becomes the pending start; pressing it again collapses
// to a single-day range; pressing an earlier day restarts the selection with
// that day; pressing a later day closes the range, unless it collides with
// the snapshot, in which case the selection resets to empty and ErrOverlap is
// returned for display.
func (s Selection) Press(day Date, ix *AvailabilityIndex) (Selection, error) {
	if ix.Occupied(day) {
		return s, ErrOverlap
	}

	if !s.hasStart {
		return Selection{pending: day, hasStart: true}, nil
	}

	if day.Equal(s.pending) {
		return Selection{
			selected: DateRange{Start: day, End: day},
			complete: true,
		}, nil
	}

	if day.Before(s.pending) {
		// Out-of-order press restarts the selection rather than swapping.
		return Selection{pending: day, hasStart: true}, nil
	}

	candidate := DateRange{Start: s.pending, End: day}
	if ix.Collides(candidate) {
		return Selection{}, ErrOverlap
	}
	return Selection{selected: candidate, complete: true}, nil
}

// Markings renders the current selection for the calendar widget: a
// singleton for a pending start, the full range once complete.
func (s Selection) Markings() map[string]DayMarking {
	switch {
	case s.complete:
		return SelectionMap(s.selected)
	case s.hasStart:
		return SelectionMap(DateRange{Start: s.pending, End: s.pending})
	default:
		return map[string]DayMarking{}
	}
}
