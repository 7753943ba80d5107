package entities

// BookingRequest is the payload for cost previews and commits. Dates travel
// as canonical YYYY-MM-DD text.
type BookingRequest struct {
	VehicleID int    `json:"vehicle_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type CostPreviewResponse struct {
	VehicleID int    `json:"vehicle_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
	RateCents int64  `json:"rate_cents_per_day"`
	CostCents int64  `json:"cost_cents"`
}
