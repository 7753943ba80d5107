package service

import (
	"fmt"
	"log"
	"time"

	"autorent/internal/booking"
	"autorent/internal/db"
	"autorent/internal/entities"
)

// VehicleCatalog is what the booking flow needs from the vehicle side:
// lookups with the rate and the two listing flags.
type VehicleCatalog interface {
	GetByID(id int) (*db.Vehicle, error)
}

// UserDirectory resolves renter contact details for notifications.
type UserDirectory interface {
	GetByID(id int) (*db.User, error)
}

// ReservationNotifier delivers booking confirmations and cancellations.
// Delivery is best-effort and asynchronous; it never fails a booking.
type ReservationNotifier interface {
	SendReservationNotices(user db.User, vehicleName string, res entities.ReservationResponse, status string)
}

// BookingService is the public entry point of the engine: availability
// snapshots for the calendar, cost previews, the atomic commit and
// cancellation.
type BookingService struct {
	ledger   *ReservationLedger
	vehicles VehicleCatalog
	users    UserDirectory
	sender   ReservationNotifier
	now      func() time.Time
}

func NewBookingService(ledger *ReservationLedger, vehicles VehicleCatalog, users UserDirectory, sender ReservationNotifier) *BookingService {
	return &BookingService{
		ledger:   ledger,
		vehicles: vehicles,
		users:    users,
		sender:   sender,
		now:      time.Now,
	}
}

// Availability renders the day-by-day occupancy map for one vehicle's
// calendar.
func (s *BookingService) Availability(vehicleID int) (*entities.AvailabilityResponse, error) {
	if _, err := s.vehicles.GetByID(vehicleID); err != nil {
		return nil, err
	}
	ranges, err := s.ledger.ActiveRanges(vehicleID)
	if err != nil {
		return nil, err
	}
	marks, err := booking.NewAvailabilityIndex(ranges).OccupancyMap()
	if err != nil {
		// Overlapping active ranges mean the ledger is corrupt; make noise.
		log.Printf("availability for vehicle %d: %v", vehicleID, err)
		return nil, err
	}
	return &entities.AvailabilityResponse{VehicleID: vehicleID, MarkedDates: marks}, nil
}

// PreviewCost prices a candidate range at the vehicle's current rate without
// committing anything.
func (s *BookingService) PreviewCost(vehicleID int, startDate, endDate string) (*entities.CostPreviewResponse, error) {
	vehicle, err := s.vehicles.GetByID(vehicleID)
	if err != nil {
		return nil, err
	}
	rg, err := booking.ParseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	cost, err := booking.Cost(rg, vehicle.RateCents)
	if err != nil {
		return nil, err
	}
	return &entities.CostPreviewResponse{
		VehicleID: vehicleID,
		StartDate: rg.Start.String(),
		EndDate:   rg.End.String(),
		Days:      rg.DayCount(),
		RateCents: vehicle.RateCents,
		CostCents: cost,
	}, nil
}

// Commit books the range for the renter. The cost is snapshotted from the
// vehicle's rate at commit time; later rate changes do not touch it. The
// ledger's own overlap check is authoritative regardless of what snapshot
// the caller validated against.
func (s *BookingService) Commit(vehicleID, renterID int, startDate, endDate string) (*entities.ReservationResponse, error) {
	vehicle, err := s.vehicles.GetByID(vehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.Accepted || !vehicle.Available {
		// Not part of the public catalog, so not bookable either.
		return nil, booking.ErrNotFound
	}
	rg, err := booking.ParseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	cost, err := booking.Cost(rg, vehicle.RateCents)
	if err != nil {
		return nil, err
	}

	res, err := s.ledger.TryCommit(vehicleID, renterID, rg, cost)
	if err != nil {
		return nil, err
	}

	view := s.toResponse(*res)
	s.notify(renterID, vehicle, view, "confirmed")
	return &view, nil
}

// Cancel voids a reservation on behalf of the requester; authorization and
// the already-elapsed check live in the ledger.
func (s *BookingService) Cancel(reservationID, requesterID int, requesterIsAdmin bool) error {
	res, err := s.ledger.Cancel(reservationID, requesterID, requesterIsAdmin)
	if err != nil {
		return err
	}
	vehicle, err := s.vehicles.GetByID(res.VehicleID)
	if err != nil {
		log.Printf("cancel notification skipped, vehicle %d: %v", res.VehicleID, err)
		return nil
	}
	s.notify(res.RenterID, vehicle, s.toResponse(*res), "cancelled")
	return nil
}

// ListForRenter returns the renter's reservations, newest first, with the
// completed flag projected from today's date.
func (s *BookingService) ListForRenter(renterID int) ([]entities.ReservationResponse, error) {
	reservations, err := s.ledger.ListByRenter(renterID)
	if err != nil {
		return nil, err
	}
	views := make([]entities.ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		views = append(views, s.toResponse(res))
	}
	return views, nil
}

// ListForVehicle is the sanitized per-vehicle read path: committed ranges
// only, no renter identity.
func (s *BookingService) ListForVehicle(vehicleID int) ([]entities.VehicleReservationView, error) {
	if _, err := s.vehicles.GetByID(vehicleID); err != nil {
		return nil, err
	}
	ranges, err := s.ledger.ActiveRanges(vehicleID)
	if err != nil {
		return nil, err
	}
	views := make([]entities.VehicleReservationView, 0, len(ranges))
	for _, rg := range ranges {
		views = append(views, entities.VehicleReservationView{
			StartDate: rg.Start.String(),
			EndDate:   rg.End.String(),
		})
	}
	return views, nil
}

// toResponse projects one row into its API view. "Completed" is computed
// from today's date, never stored.
func (s *BookingService) toResponse(res db.Reservation) entities.ReservationResponse {
	today := booking.DateOf(s.now())
	return entities.ReservationResponse{
		ID:        res.ID,
		VehicleID: res.VehicleID,
		StartDate: booking.DateOf(res.StartDate).String(),
		EndDate:   booking.DateOf(res.EndDate).String(),
		CostCents: res.CostCents,
		Status:    res.Status,
		Completed: res.Status == db.ReservationStatusActive && booking.DateOf(res.EndDate).Before(today),
		CreatedAt: res.CreatedAt,
	}
}

func (s *BookingService) notify(renterID int, vehicle *db.Vehicle, view entities.ReservationResponse, status string) {
	if s.sender == nil {
		return
	}
	user, err := s.users.GetByID(renterID)
	if err != nil {
		log.Printf("notification skipped, renter %d: %v", renterID, err)
		return
	}
	vehicleName := fmt.Sprintf("%s %s", vehicle.Make, vehicle.Model)
	s.sender.SendReservationNotices(*user, vehicleName, view, status)
}
