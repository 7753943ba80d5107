package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"autorent/internal/booking"
	"autorent/internal/db"
)

// Advisory lock class for reservation commits, so the per-vehicle lock key
// space does not clash with other locks on the same database.
const reservationLockClass = 1

type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

// ActiveRanges returns the committed ranges for one vehicle, the read path
// feeding availability snapshots.
func (r *ReservationRepository) ActiveRanges(vehicleID int) ([]booking.DateRange, error) {
	query := `
		SELECT start_date, end_date
		FROM reservations
		WHERE vehicle_id = $1 AND status = 'active'
		ORDER BY start_date`

	rows, err := r.DB.Query(query, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("error querying active ranges: %w", err)
	}
	defer rows.Close()

	var ranges []booking.DateRange
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, fmt.Errorf("error scanning reservation range: %w", err)
		}
		rg, err := booking.NewDateRange(booking.DateOf(start), booking.DateOf(end))
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, rg)
	}
	return ranges, rows.Err()
}

// Insert commits one reservation. The transaction takes a per-vehicle
// advisory lock so that the overlap check and the insert form a single
// atomic unit across processes; commits for different vehicles do not block
// each other. The exclusion constraint on (vehicle_id, daterange) is the
// backstop and also surfaces as booking.ErrOverlap.
func (r *ReservationRepository) Insert(res *db.Reservation) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting reservation transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`SELECT pg_advisory_xact_lock($1, $2)`, reservationLockClass, res.VehicleID); err != nil {
		return fmt.Errorf("error taking vehicle lock: %w", err)
	}

	var clash bool
	err = tx.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE vehicle_id = $1 AND status = 'active'
			AND start_date <= $3 AND end_date >= $2
		)`, res.VehicleID, res.StartDate, res.EndDate).Scan(&clash)
	if err != nil {
		return fmt.Errorf("error checking overlap: %w", err)
	}
	if clash {
		return booking.ErrOverlap
	}

	err = tx.QueryRow(`
		INSERT INTO reservations (vehicle_id, renter_id, start_date, end_date, cost_cents, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'active', NOW(), NOW())
		RETURNING id, created_at, updated_at`,
		res.VehicleID, res.RenterID, res.StartDate, res.EndDate, res.CostCents,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23P01" { // exclusion_violation
			return booking.ErrOverlap
		}
		return fmt.Errorf("error inserting reservation: %w", err)
	}
	res.Status = db.ReservationStatusActive

	return tx.Commit()
}

// GetWithOwner loads one reservation together with the owning lister of its
// vehicle, which cancellation authorization needs.
func (r *ReservationRepository) GetWithOwner(id int) (*db.Reservation, int, error) {
	var res db.Reservation
	var ownerID int
	query := `
		SELECT r.id, r.vehicle_id, r.renter_id, r.start_date, r.end_date,
		       r.cost_cents, r.status, r.created_at, r.updated_at, v.owner_id
		FROM reservations r
		JOIN vehicles v ON v.id = r.vehicle_id
		WHERE r.id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&res.ID, &res.VehicleID, &res.RenterID, &res.StartDate, &res.EndDate,
		&res.CostCents, &res.Status, &res.CreatedAt, &res.UpdatedAt, &ownerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, booking.ErrNotFound
		}
		return nil, 0, fmt.Errorf("error querying reservation %d: %w", id, err)
	}
	return &res, ownerID, nil
}

// Cancel flips an active reservation to cancelled. A reservation that is
// unknown or no longer active reports booking.ErrNotFound.
func (r *ReservationRepository) Cancel(id int) error {
	result, err := r.DB.Exec(
		`UPDATE reservations SET status = 'cancelled', updated_at = NOW() WHERE id = $1 AND status = 'active'`, id)
	if err != nil {
		return fmt.Errorf("error cancelling reservation %d: %w", id, err)
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

// ListByRenter returns a renter's reservations, newest first.
func (r *ReservationRepository) ListByRenter(renterID int) ([]db.Reservation, error) {
	query := `
		SELECT id, vehicle_id, renter_id, start_date, end_date, cost_cents, status, created_at, updated_at
		FROM reservations
		WHERE renter_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.Query(query, renterID)
	if err != nil {
		return nil, fmt.Errorf("error querying reservations for renter %d: %w", renterID, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func scanReservations(rows *sql.Rows) ([]db.Reservation, error) {
	var reservations []db.Reservation
	for rows.Next() {
		var res db.Reservation
		err := rows.Scan(
			&res.ID, &res.VehicleID, &res.RenterID, &res.StartDate, &res.EndDate,
			&res.CostCents, &res.Status, &res.CreatedAt, &res.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}
