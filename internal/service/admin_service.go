package service

import (
	"fmt"

	"autorent/internal/booking"
	"autorent/internal/db"
	"autorent/internal/entities"
	"autorent/internal/repository"
)

type AdminService struct {
	admin    *repository.AdminRepository
	users    *repository.UserRepository
	vehicles *repository.VehicleRepository
}

func NewAdminService(admin *repository.AdminRepository, users *repository.UserRepository, vehicles *repository.VehicleRepository) *AdminService {
	return &AdminService{admin: admin, users: users, vehicles: vehicles}
}

func (s *AdminService) GetStats() (*repository.Stats, error) {
	return s.admin.GetStats()
}

func (s *AdminService) ListUsers() ([]entities.UserResponse, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	responses := make([]entities.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, entities.UserResponse{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			Phone:    u.Phone,
			Role:     u.Role,
		})
	}
	return responses, nil
}

func (s *AdminService) UpdateRole(userID int, role string) error {
	if role != db.RoleUser && role != db.RoleAdmin {
		return fmt.Errorf("%w: unknown role %q", booking.ErrFormat, role)
	}
	return s.users.UpdateRole(userID, role)
}

func (s *AdminService) DeleteUser(userID int) error {
	return s.users.Delete(userID)
}

// AcceptVehicle flips the moderation flag so the listing joins or leaves the
// public catalog.
func (s *AdminService) AcceptVehicle(vehicleID int, accepted bool) error {
	return s.vehicles.SetAccepted(vehicleID, accepted)
}

// ListReservations filters by start date, vehicle and status. Empty filters
// match everything.
func (s *AdminService) ListReservations(date, vehicleID, status string) ([]db.Reservation, error) {
	if date != "" {
		if _, err := booking.ParseDate(date); err != nil {
			return nil, err
		}
	}
	return s.admin.ListReservations(date, vehicleID, status)
}
