package entities

import "time"

type ReservationResponse struct {
	ID        int       `json:"id"`
	VehicleID int       `json:"vehicle_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	CostCents int64     `json:"cost_cents"`
	Status    string    `json:"status"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// VehicleReservationView is the sanitized per-vehicle read path: committed
// ranges only, no renter identity.
type VehicleReservationView struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
