package entities

import "autorent/internal/booking"

// AvailabilityResponse carries the day-by-day occupancy map the calendar
// widget renders, keyed by YYYY-MM-DD.
type AvailabilityResponse struct {
	VehicleID   int                           `json:"vehicle_id"`
	MarkedDates map[string]booking.DayMarking `json:"marked_dates"`
}
