package service

import (
	"fmt"

	"autorent/internal/booking"
	"autorent/internal/db"
	"autorent/internal/entities"
	"autorent/internal/repository"
)

type VehicleService struct {
	vehicles *repository.VehicleRepository
}

func NewVehicleService(vehicles *repository.VehicleRepository) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

// ListPublic is the renter-facing catalog: accepted and available only.
func (s *VehicleService) ListPublic() ([]entities.VehicleResponse, error) {
	vehicles, err := s.vehicles.ListPublic()
	if err != nil {
		return nil, err
	}
	return toVehicleResponses(vehicles), nil
}

func (s *VehicleService) ListByOwner(ownerID int) ([]entities.VehicleResponse, error) {
	vehicles, err := s.vehicles.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return toVehicleResponses(vehicles), nil
}

func (s *VehicleService) Get(id int) (*entities.VehicleResponse, error) {
	vehicle, err := s.vehicles.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toVehicleResponse(*vehicle)
	return &resp, nil
}

// Create registers a new listing for the owner. New listings wait for
// moderation before they appear in the public catalog.
func (s *VehicleService) Create(ownerID int, req entities.VehicleRequest) (*entities.VehicleResponse, error) {
	if req.Make == "" || req.Model == "" || req.Type == "" {
		return nil, fmt.Errorf("%w: make, model and type are required", booking.ErrFormat)
	}
	if req.RateCents <= 0 {
		return nil, booking.ErrInvalidRate
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	vehicle := &db.Vehicle{
		OwnerID:   ownerID,
		Make:      req.Make,
		Model:     req.Model,
		Year:      req.Year,
		Color:     req.Color,
		Mileage:   req.Mileage,
		Type:      req.Type,
		ImageURL:  req.ImageURL,
		Location:  req.Location,
		RateCents: req.RateCents,
		Available: available,
	}
	if err := s.vehicles.Create(vehicle); err != nil {
		return nil, fmt.Errorf("error creating vehicle: %w", err)
	}
	resp := toVehicleResponse(*vehicle)
	return &resp, nil
}

// Update rewrites a listing. Only the owner or an admin may touch it, and
// rate changes never affect already committed reservations: their cost was
// snapshotted at booking time.
func (s *VehicleService) Update(id, requesterID int, requesterIsAdmin bool, req entities.VehicleRequest) (*entities.VehicleResponse, error) {
	vehicle, err := s.vehicles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !requesterIsAdmin && vehicle.OwnerID != requesterID {
		return nil, booking.ErrForbidden
	}
	if req.RateCents <= 0 {
		return nil, booking.ErrInvalidRate
	}

	vehicle.Make = req.Make
	vehicle.Model = req.Model
	vehicle.Year = req.Year
	vehicle.Color = req.Color
	vehicle.Mileage = req.Mileage
	vehicle.Type = req.Type
	vehicle.ImageURL = req.ImageURL
	vehicle.Location = req.Location
	vehicle.RateCents = req.RateCents
	if req.Available != nil {
		vehicle.Available = *req.Available
	}

	if err := s.vehicles.Update(vehicle); err != nil {
		return nil, err
	}
	resp := toVehicleResponse(*vehicle)
	return &resp, nil
}

// Delete removes a listing and the reservations on it. Owner or admin only.
func (s *VehicleService) Delete(id, requesterID int, requesterIsAdmin bool) error {
	vehicle, err := s.vehicles.GetByID(id)
	if err != nil {
		return err
	}
	if !requesterIsAdmin && vehicle.OwnerID != requesterID {
		return booking.ErrForbidden
	}
	return s.vehicles.Delete(id)
}

func toVehicleResponse(v db.Vehicle) entities.VehicleResponse {
	return entities.VehicleResponse{
		ID:        v.ID,
		OwnerID:   v.OwnerID,
		Make:      v.Make,
		Model:     v.Model,
		Year:      v.Year,
		Color:     v.Color,
		Mileage:   v.Mileage,
		Type:      v.Type,
		ImageURL:  v.ImageURL,
		Location:  v.Location,
		RateCents: v.RateCents,
		Available: v.Available,
		Accepted:  v.Accepted,
	}
}

func toVehicleResponses(vehicles []db.Vehicle) []entities.VehicleResponse {
	responses := make([]entities.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		responses = append(responses, toVehicleResponse(v))
	}
	return responses
}
