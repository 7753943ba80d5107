package service

import (
	"sync"
	"time"

	"autorent/internal/booking"
	"autorent/internal/db"
)

// ReservationStore is the durable storage behind the ledger. The postgres
// implementation lives in internal/repository; tests use an in-memory one.
type ReservationStore interface {
	ActiveRanges(vehicleID int) ([]booking.DateRange, error)
	Insert(res *db.Reservation) error
	GetWithOwner(id int) (*db.Reservation, int, error)
	Cancel(id int) error
	ListByRenter(renterID int) ([]db.Reservation, error)
}

// ReservationLedger is the sole writer of reservations. It owns the
// invariant that no two active reservations for one vehicle overlap, and
// enforces it at the point of write: TryCommit serializes per vehicle and
// re-checks the store inside the critical section, so whatever snapshot the
// caller validated against is advisory only.
type ReservationLedger struct {
	store ReservationStore
	now   func() time.Time

	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewReservationLedger(store ReservationStore) *ReservationLedger {
	return &ReservationLedger{
		store: store,
		now:   time.Now,
		locks: make(map[int]*sync.Mutex),
	}
}

// vehicleLock hands out one mutex per vehicle. Commits against different
// vehicles never contend.
func (l *ReservationLedger) vehicleLock(vehicleID int) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[vehicleID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[vehicleID] = lock
	}
	return lock
}

// TryCommit atomically checks the candidate range against the committed set
// and inserts it. Returns booking.ErrOverlap when the range lost the race or
// was stale to begin with.
func (l *ReservationLedger) TryCommit(vehicleID, renterID int, r booking.DateRange, costCents int64) (*db.Reservation, error) {
	lock := l.vehicleLock(vehicleID)
	lock.Lock()
	defer lock.Unlock()

	ranges, err := l.store.ActiveRanges(vehicleID)
	if err != nil {
		return nil, err
	}
	if booking.NewAvailabilityIndex(ranges).Collides(r) {
		return nil, booking.ErrOverlap
	}

	res := &db.Reservation{
		VehicleID: vehicleID,
		RenterID:  renterID,
		StartDate: r.Start.Time(),
		EndDate:   r.End.Time(),
		CostCents: costCents,
		Status:    db.ReservationStatusActive,
	}
	if err := l.store.Insert(res); err != nil {
		return nil, err
	}
	return res, nil
}

// Cancel voids an active reservation. Only the renter, the vehicle's owning
// lister or an admin may cancel, and a fully elapsed reservation is immutable
// history. Cancelling an already-cancelled reservation reports
// booking.ErrNotFound.
func (l *ReservationLedger) Cancel(reservationID, requesterID int, requesterIsAdmin bool) (*db.Reservation, error) {
	res, ownerID, err := l.store.GetWithOwner(reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != db.ReservationStatusActive {
		return nil, booking.ErrNotFound
	}
	if !requesterIsAdmin && requesterID != res.RenterID && requesterID != ownerID {
		return nil, booking.ErrForbidden
	}
	if booking.DateOf(res.EndDate).Before(booking.DateOf(l.now())) {
		return nil, booking.ErrAlreadyPast
	}
	if err := l.store.Cancel(reservationID); err != nil {
		return nil, err
	}
	res.Status = db.ReservationStatusCancelled
	return res, nil
}

// ActiveRanges is the read path feeding availability snapshots.
func (l *ReservationLedger) ActiveRanges(vehicleID int) ([]booking.DateRange, error) {
	return l.store.ActiveRanges(vehicleID)
}

// ListByRenter returns a renter's reservations, newest first.
func (l *ReservationLedger) ListByRenter(renterID int) ([]db.Reservation, error) {
	return l.store.ListByRenter(renterID)
}
