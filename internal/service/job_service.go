package service

import (
	"fmt"
	"log"
	"time"

	"autorent/internal/booking"
	"autorent/internal/repository"
)

type JobService struct {
	repo   *repository.JobRepository
	sender *SenderService
	now    func() time.Time
}

func NewJobService(repo *repository.JobRepository, sender *SenderService) *JobService {
	return &JobService{repo: repo, sender: sender, now: time.Now}
}

// SendPickupReminders emails every renter whose reservation starts tomorrow.
// Read-only over the ledger: completion is always derived from today's date
// at read time, never written back.
func (s *JobService) SendPickupReminders() error {
	tomorrow := booking.DateOf(s.now()).AddDays(1)
	log.Printf("cron job: looking up reservations starting on %s", tomorrow)

	reminders, err := s.repo.GetReservationsStartingOn(tomorrow.Time())
	if err != nil {
		return fmt.Errorf("cron job: failed to get upcoming reservations: %w", err)
	}
	if len(reminders) == 0 {
		log.Println("cron job: no pickups tomorrow")
		return nil
	}

	for _, reminder := range reminders {
		s.sender.SendPickupReminder(reminder.UserEmail, reminder.UserName, reminder.VehicleName, reminder.StartDate)
	}
	log.Printf("cron job: queued %d pickup reminders", len(reminders))
	return nil
}
