package api

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

type RoleUpdateRequest struct {
	Role string `json:"role"`
}

type AcceptVehicleRequest struct {
	Accepted bool `json:"accepted"`
}

type ActivityRequest struct {
	VehicleID int `json:"vehicle_id"`
}
