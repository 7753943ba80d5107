package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"autorent/internal/booking"
	"autorent/internal/db"
)

type VehicleRepository struct {
	DB *sql.DB
}

func NewVehicleRepository(database *sql.DB) *VehicleRepository {
	return &VehicleRepository{DB: database}
}

const vehicleColumns = `id, owner_id, make, model, year, color, mileage, type, image_url, location, rate_cents, available, accepted, created_at, updated_at`

func scanVehicle(row *sql.Row) (*db.Vehicle, error) {
	var v db.Vehicle
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.Make, &v.Model, &v.Year, &v.Color, &v.Mileage,
		&v.Type, &v.ImageURL, &v.Location, &v.RateCents, &v.Available, &v.Accepted,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrNotFound
		}
		return nil, fmt.Errorf("error scanning vehicle: %w", err)
	}
	return &v, nil
}

func (r *VehicleRepository) GetByID(id int) (*db.Vehicle, error) {
	row := r.DB.QueryRow(`SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id)
	return scanVehicle(row)
}

// ListPublic returns the catalog shown to renters: accepted by moderation and
// flagged available by the owner.
func (r *VehicleRepository) ListPublic() ([]db.Vehicle, error) {
	return r.list(`SELECT ` + vehicleColumns + ` FROM vehicles WHERE accepted = TRUE AND available = TRUE ORDER BY id`)
}

func (r *VehicleRepository) ListByOwner(ownerID int) ([]db.Vehicle, error) {
	return r.list(`SELECT `+vehicleColumns+` FROM vehicles WHERE owner_id = $1 ORDER BY id`, ownerID)
}

func (r *VehicleRepository) list(query string, args ...interface{}) ([]db.Vehicle, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []db.Vehicle
	for rows.Next() {
		var v db.Vehicle
		err := rows.Scan(
			&v.ID, &v.OwnerID, &v.Make, &v.Model, &v.Year, &v.Color, &v.Mileage,
			&v.Type, &v.ImageURL, &v.Location, &v.RateCents, &v.Available, &v.Accepted,
			&v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *VehicleRepository) Create(v *db.Vehicle) error {
	return r.DB.QueryRow(`
		INSERT INTO vehicles (owner_id, make, model, year, color, mileage, type, image_url, location, rate_cents, available, accepted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, FALSE, NOW(), NOW())
		RETURNING id, created_at, updated_at`,
		v.OwnerID, v.Make, v.Model, v.Year, v.Color, v.Mileage, v.Type,
		v.ImageURL, v.Location, v.RateCents, v.Available,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
}

func (r *VehicleRepository) Update(v *db.Vehicle) error {
	result, err := r.DB.Exec(`
		UPDATE vehicles
		SET make = $1, model = $2, year = $3, color = $4, mileage = $5, type = $6,
		    image_url = $7, location = $8, rate_cents = $9, available = $10, updated_at = NOW()
		WHERE id = $11`,
		v.Make, v.Model, v.Year, v.Color, v.Mileage, v.Type,
		v.ImageURL, v.Location, v.RateCents, v.Available, v.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating vehicle %d: %w", v.ID, err)
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

// SetAccepted flips the moderation flag (admin approval of a listing).
func (r *VehicleRepository) SetAccepted(id int, accepted bool) error {
	result, err := r.DB.Exec(`UPDATE vehicles SET accepted = $1, updated_at = NOW() WHERE id = $2`, accepted, id)
	if err != nil {
		return fmt.Errorf("error updating moderation flag for vehicle %d: %w", id, err)
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

// Delete removes a vehicle and all reservations on it in one transaction.
func (r *VehicleRepository) Delete(id int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting vehicle delete transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM reservations WHERE vehicle_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting reservations for vehicle %d: %w", id, err)
	}
	if _, err := tx.Exec(`DELETE FROM activities WHERE vehicle_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting activities for vehicle %d: %w", id, err)
	}

	result, err := tx.Exec(`DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting vehicle %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return booking.ErrNotFound
	}

	return tx.Commit()
}
