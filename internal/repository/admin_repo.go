package repository

import (
	"database/sql"
	"fmt"
	"strconv"

	"autorent/internal/db"
)

type AdminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(database *sql.DB) *AdminRepository {
	return &AdminRepository{DB: database}
}

type Stats struct {
	Vehicles     int `json:"vehicles"`
	Users        int `json:"users"`
	Reservations int `json:"reservations"`
}

func (r *AdminRepository) GetStats() (*Stats, error) {
	var s Stats
	err := r.DB.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM vehicles),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM reservations)
	`).Scan(&s.Vehicles, &s.Users, &s.Reservations)
	if err != nil {
		return nil, fmt.Errorf("error querying stats: %w", err)
	}
	return &s, nil
}

// ListReservations is the admin read path with optional filters on start
// date, vehicle and status.
func (r *AdminRepository) ListReservations(date, vehicleID, status string) ([]db.Reservation, error) {
	query := `
	SELECT id, vehicle_id, renter_id, start_date, end_date, cost_cents, status, created_at, updated_at
	FROM reservations
	WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if date != "" {
		query += " AND start_date = $" + strconv.Itoa(idx)
		args = append(args, date)
		idx++
	}
	if vehicleID != "" {
		query += " AND vehicle_id = $" + strconv.Itoa(idx)
		args = append(args, vehicleID)
		idx++
	}
	if status != "" {
		query += " AND status = $" + strconv.Itoa(idx)
		args = append(args, status)
		idx++
	}
	query += " ORDER BY start_date DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing reservations: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}
