package service

import (
	"autorent/internal/db"
	"autorent/internal/repository"
)

// ActivityService records which user viewed which listing, the raw feed
// behind the admin activity log.
type ActivityService struct {
	activities *repository.ActivityRepository
}

func NewActivityService(activities *repository.ActivityRepository) *ActivityService {
	return &ActivityService{activities: activities}
}

func (s *ActivityService) Record(userID, vehicleID int) (*db.Activity, error) {
	activity := &db.Activity{UserID: userID, VehicleID: vehicleID}
	if err := s.activities.Create(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) List() ([]db.Activity, error) {
	return s.activities.List()
}

func (s *ActivityService) ListByUser(userID int) ([]db.Activity, error) {
	return s.activities.ListByUser(userID)
}

func (s *ActivityService) Delete(id int) error {
	return s.activities.Delete(id)
}
