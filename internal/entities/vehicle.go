package entities

type VehicleRequest struct {
	Make      string `json:"make"`
	Model     string `json:"model"`
	Year      int    `json:"year"`
	Color     string `json:"color,omitempty"`
	Mileage   int    `json:"mileage,omitempty"`
	Type      string `json:"type"`
	ImageURL  string `json:"image"`
	Location  string `json:"location"`
	RateCents int64  `json:"rate_cents_per_day"`
	Available *bool  `json:"available,omitempty"`
}

type VehicleResponse struct {
	ID        int    `json:"id"`
	OwnerID   int    `json:"owner_id"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Year      int    `json:"year"`
	Color     string `json:"color,omitempty"`
	Mileage   int    `json:"mileage,omitempty"`
	Type      string `json:"type"`
	ImageURL  string `json:"image"`
	Location  string `json:"location"`
	RateCents int64  `json:"rate_cents_per_day"`
	Available bool   `json:"available"`
	Accepted  bool   `json:"accepted"`
}
