package booking

import "fmt"

// Cost prices a range at the given per-day rate in cents. Pricing is
// inclusive of both endpoints: a Monday-to-Wednesday rental is three days.
func Cost(r DateRange, rateCents int64) (int64, error) {
	if rateCents <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRate, rateCents)
	}
	return int64(r.DayCount()) * rateCents, nil
}
