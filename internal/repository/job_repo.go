package repository

import (
	"database/sql"
	"fmt"
	"time"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{DB: db}
}

// ReminderInfo is one upcoming pickup, joined with the renter's contact
// details and the vehicle description for the reminder message.
type ReminderInfo struct {
	ReservationID int
	UserName      string
	UserEmail     string
	VehicleName   string
	StartDate     time.Time
	EndDate       time.Time
}

// GetReservationsStartingOn returns the active reservations whose range
// begins on the given calendar day. Read-only: reminder delivery never
// touches reservation state.
func (r *JobRepository) GetReservationsStartingOn(day time.Time) ([]ReminderInfo, error) {
	query := `
		SELECT r.id, u.username, u.email, v.make || ' ' || v.model, r.start_date, r.end_date
		FROM reservations r
		JOIN users u ON u.id = r.renter_id
		JOIN vehicles v ON v.id = r.vehicle_id
		WHERE r.status = 'active' AND r.start_date = $1`

	rows, err := r.DB.Query(query, day)
	if err != nil {
		return nil, fmt.Errorf("error querying upcoming reservations: %w", err)
	}
	defer rows.Close()

	var reminders []ReminderInfo
	for rows.Next() {
		var info ReminderInfo
		err := rows.Scan(&info.ReservationID, &info.UserName, &info.UserEmail, &info.VehicleName, &info.StartDate, &info.EndDate)
		if err != nil {
			return nil, fmt.Errorf("error scanning reminder row: %w", err)
		}
		reminders = append(reminders, info)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating reminder rows: %w", err)
	}
	return reminders, nil
}
