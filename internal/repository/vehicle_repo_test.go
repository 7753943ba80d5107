package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autorent/internal/booking"
)

func vehicleRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "owner_id", "make", "model", "year", "color", "mileage",
		"type", "image_url", "location", "rate_cents", "available", "accepted",
		"created_at", "updated_at",
	}).AddRow(1, 20, "Toyota", "Corolla", 2021, "blue", 32000,
		"sedan", "", "Rome", int64(4500), true, true, now, now)
}

func TestGetVehicleByID(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()
	repo := NewVehicleRepository(database)

	mock.ExpectQuery(`SELECT .+ FROM vehicles WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(vehicleRows(time.Now()))

	vehicle, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", vehicle.Make)
	assert.Equal(t, int64(4500), vehicle.RateCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVehicleByIDNotFound(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()
	repo := NewVehicleRepository(database)

	mock.ExpectQuery(`SELECT .+ FROM vehicles WHERE id = \$1`).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(42)
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestListPublicFiltersModerationAndAvailability(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()
	repo := NewVehicleRepository(database)

	mock.ExpectQuery(`WHERE accepted = TRUE AND available = TRUE`).
		WillReturnRows(vehicleRows(time.Now()))

	vehicles, err := repo.ListPublic()
	require.NoError(t, err)
	assert.Len(t, vehicles, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAccepted(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()
	repo := NewVehicleRepository(database)

	mock.ExpectExec(`UPDATE vehicles SET accepted = \$1`).
		WithArgs(true, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SetAccepted(1, true))

	mock.ExpectExec(`UPDATE vehicles SET accepted = \$1`).
		WithArgs(true, 42).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.SetAccepted(42, true), booking.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
