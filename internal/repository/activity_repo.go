package repository

import (
	"database/sql"
	"fmt"

	"autorent/internal/booking"
	"autorent/internal/db"
)

type ActivityRepository struct {
	DB *sql.DB
}

func NewActivityRepository(database *sql.DB) *ActivityRepository {
	return &ActivityRepository{DB: database}
}

func (r *ActivityRepository) Create(a *db.Activity) error {
	return r.DB.QueryRow(
		`INSERT INTO activities (user_id, vehicle_id, created_at) VALUES ($1, $2, NOW()) RETURNING id, created_at`,
		a.UserID, a.VehicleID,
	).Scan(&a.ID, &a.CreatedAt)
}

func (r *ActivityRepository) List() ([]db.Activity, error) {
	return r.list(`SELECT id, user_id, vehicle_id, created_at FROM activities ORDER BY created_at DESC`)
}

func (r *ActivityRepository) ListByUser(userID int) ([]db.Activity, error) {
	return r.list(`SELECT id, user_id, vehicle_id, created_at FROM activities WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *ActivityRepository) list(query string, args ...interface{}) ([]db.Activity, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing activities: %w", err)
	}
	defer rows.Close()

	var activities []db.Activity
	for rows.Next() {
		var a db.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.VehicleID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (r *ActivityRepository) Delete(id int) error {
	result, err := r.DB.Exec(`DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting activity %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return booking.ErrNotFound
	}
	return nil
}
