package db

import "time"

type User struct {
	ID           int
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

type Vehicle struct {
	ID        int
	OwnerID   int
	Make      string
	Model     string
	Year      int
	Color     string
	Mileage   int
	Type      string
	ImageURL  string
	Location  string
	RateCents int64
	Available bool
	Accepted  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Reservation struct {
	ID        int
	VehicleID int
	RenterID  int
	StartDate time.Time
	EndDate   time.Time
	CostCents int64
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Activity struct {
	ID        int
	UserID    int
	VehicleID int
	CreatedAt time.Time
}

const (
	ReservationStatusActive    = "active"
	ReservationStatusCancelled = "cancelled"

	RoleUser  = "user"
	RoleAdmin = "admin"
)
