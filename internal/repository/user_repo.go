package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"autorent/internal/booking"
	"autorent/internal/db"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(database *sql.DB) *UserRepository {
	return &UserRepository{DB: database}
}

func (r *UserRepository) GetByEmail(email string) (*db.User, error) {
	var u db.User
	err := r.DB.QueryRow(
		`SELECT id, username, email, phone, password_hash, role, created_at FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) GetByID(id int) (*db.User, error) {
	var u db.User
	err := r.DB.QueryRow(
		`SELECT id, username, email, phone, password_hash, role, created_at FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrNotFound
		}
		return nil, fmt.Errorf("error querying user %d: %w", id, err)
	}
	return &u, nil
}

// Exists reports whether the email or username is already taken.
func (r *UserRepository) Exists(email, username string) (bool, error) {
	var taken bool
	err := r.DB.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 OR username = $2)`, email, username).
		Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("error checking user existence: %w", err)
	}
	return taken, nil
}

func (r *UserRepository) Create(u *db.User) error {
	return r.DB.QueryRow(
		`INSERT INTO users (username, email, phone, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, NOW())
		 RETURNING id, created_at`,
		u.Username, u.Email, u.Phone, u.PasswordHash, u.Role,
	).Scan(&u.ID, &u.CreatedAt)
}

func (r *UserRepository) UpdatePassword(id int, passwordHash string) error {
	result, err := r.DB.Exec(`UPDATE users SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("error updating password for user %d: %w", id, err)
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

func (r *UserRepository) UpdateRole(id int, role string) error {
	result, err := r.DB.Exec(`UPDATE users SET role = $1 WHERE id = $2`, role, id)
	if err != nil {
		return fmt.Errorf("error updating role for user %d: %w", id, err)
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

// Delete removes a user together with their vehicles, the reservations on
// those vehicles and the reservations they made, in one transaction.
func (r *UserRepository) Delete(id int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting user delete transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM reservations
		 WHERE renter_id = $1 OR vehicle_id IN (SELECT id FROM vehicles WHERE owner_id = $1)`, id); err != nil {
		return fmt.Errorf("error deleting reservations for user %d: %w", id, err)
	}
	if _, err := tx.Exec(`DELETE FROM activities WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting activities for user %d: %w", id, err)
	}
	if _, err := tx.Exec(`DELETE FROM vehicles WHERE owner_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting vehicles for user %d: %w", id, err)
	}

	result, err := tx.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user %d: %w", id, err)
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

func (r *UserRepository) List() ([]db.User, error) {
	rows, err := r.DB.Query(`SELECT id, username, email, phone, password_hash, role, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []db.User
	for rows.Next() {
		var u db.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
