package service

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autorent/internal/booking"
	"autorent/internal/db"
)

// memReservationStore is an in-memory ReservationStore. Like the real table
// it does no overlap checking of its own; keeping the invariant is the
// ledger's job.
type memReservationStore struct {
	mu           sync.Mutex
	nextID       int
	reservations map[int]db.Reservation
	vehicleOwner map[int]int
}

func newMemStore() *memReservationStore {
	return &memReservationStore{
		reservations: make(map[int]db.Reservation),
		vehicleOwner: make(map[int]int),
	}
}

func (s *memReservationStore) ActiveRanges(vehicleID int) ([]booking.DateRange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ranges []booking.DateRange
	for _, res := range s.reservations {
		if res.VehicleID != vehicleID || res.Status != db.ReservationStatusActive {
			continue
		}
		ranges = append(ranges, booking.DateRange{
			Start: booking.DateOf(res.StartDate),
			End:   booking.DateOf(res.EndDate),
		})
	}
	return ranges, nil
}

func (s *memReservationStore) Insert(res *db.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	res.ID = s.nextID
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt
	s.reservations[res.ID] = *res
	return nil
}

func (s *memReservationStore) GetWithOwner(id int) (*db.Reservation, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.reservations[id]
	if !ok {
		return nil, 0, booking.ErrNotFound
	}
	return &res, s.vehicleOwner[res.VehicleID], nil
}

func (s *memReservationStore) Cancel(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.reservations[id]
	if !ok || res.Status != db.ReservationStatusActive {
		return booking.ErrNotFound
	}
	res.Status = db.ReservationStatusCancelled
	s.reservations[id] = res
	return nil
}

func (s *memReservationStore) ListByRenter(renterID int) ([]db.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []db.Reservation
	for _, res := range s.reservations {
		if res.RenterID == renterID {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func testRange(t *testing.T, start, end string) booking.DateRange {
	t.Helper()
	r, err := booking.ParseDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestTryCommitInsertsActiveReservation(t *testing.T) {
	ledger := NewReservationLedger(newMemStore())

	res, err := ledger.TryCommit(1, 7, testRange(t, "2024-06-01", "2024-06-03"), 300)
	require.NoError(t, err)
	assert.NotZero(t, res.ID)
	assert.Equal(t, db.ReservationStatusActive, res.Status)
	assert.Equal(t, int64(300), res.CostCents)

	ranges, err := ledger.ActiveRanges(1)
	require.NoError(t, err)
	assert.Len(t, ranges, 1)
}

func TestTryCommitRejectsOverlap(t *testing.T) {
	ledger := NewReservationLedger(newMemStore())

	_, err := ledger.TryCommit(1, 7, testRange(t, "2024-06-01", "2024-06-05"), 500)
	require.NoError(t, err)

	_, err = ledger.TryCommit(1, 8, testRange(t, "2024-06-05", "2024-06-08"), 400)
	assert.ErrorIs(t, err, booking.ErrOverlap)

	_, err = ledger.TryCommit(1, 8, testRange(t, "2024-06-06", "2024-06-08"), 300)
	assert.NoError(t, err)
}

func TestTryCommitSameVehicleRaceHasOneWinner(t *testing.T) {
	ledger := NewReservationLedger(newMemStore())
	r := testRange(t, "2024-06-01", "2024-06-03")

	const racers = 32
	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = ledger.TryCommit(1, i+1, r, 300)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, booking.ErrOverlap)
		}
	}
	assert.Equal(t, 1, wins)

	ranges, err := ledger.ActiveRanges(1)
	require.NoError(t, err)
	assert.Len(t, ranges, 1)
}

func TestTryCommitDistinctVehiclesDoNotContend(t *testing.T) {
	ledger := NewReservationLedger(newMemStore())
	r := testRange(t, "2024-06-01", "2024-06-03")

	const vehicles = 16
	var wg sync.WaitGroup
	errs := make([]error, vehicles)
	for i := 0; i < vehicles; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = ledger.TryCommit(i+1, 7, r, 300)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestCancelAuthorization(t *testing.T) {
	const (
		renterID   = 7
		ownerID    = 20
		strangerID = 99
		adminID    = 1
	)

	setup := func(t *testing.T) (*ReservationLedger, int) {
		store := newMemStore()
		store.vehicleOwner[1] = ownerID
		ledger := NewReservationLedger(store)
		res, err := ledger.TryCommit(1, renterID, testRange(t, "2030-06-01", "2030-06-03"), 300)
		require.NoError(t, err)
		return ledger, res.ID
	}

	t.Run("renter may cancel", func(t *testing.T) {
		ledger, id := setup(t)
		res, err := ledger.Cancel(id, renterID, false)
		require.NoError(t, err)
		assert.Equal(t, db.ReservationStatusCancelled, res.Status)
	})

	t.Run("vehicle owner may cancel", func(t *testing.T) {
		ledger, id := setup(t)
		_, err := ledger.Cancel(id, ownerID, false)
		assert.NoError(t, err)
	})

	t.Run("admin may cancel", func(t *testing.T) {
		ledger, id := setup(t)
		_, err := ledger.Cancel(id, adminID, true)
		assert.NoError(t, err)
	})

	t.Run("stranger may not cancel", func(t *testing.T) {
		ledger, id := setup(t)
		_, err := ledger.Cancel(id, strangerID, false)
		assert.ErrorIs(t, err, booking.ErrForbidden)
	})
}

func TestCancelOfMissingOrCancelledReservation(t *testing.T) {
	ledger := NewReservationLedger(newMemStore())

	_, err := ledger.Cancel(42, 7, false)
	assert.ErrorIs(t, err, booking.ErrNotFound)

	res, err := ledger.TryCommit(1, 7, testRange(t, "2030-06-01", "2030-06-03"), 300)
	require.NoError(t, err)
	_, err = ledger.Cancel(res.ID, 7, false)
	require.NoError(t, err)

	// A second cancel sees no active reservation under that id.
	_, err = ledger.Cancel(res.ID, 7, false)
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestCancelOfElapsedReservationIsRejected(t *testing.T) {
	ledger := NewReservationLedger(newMemStore())
	res, err := ledger.TryCommit(1, 7, testRange(t, "2024-06-01", "2024-06-03"), 300)
	require.NoError(t, err)

	ledger.now = func() time.Time {
		return time.Date(2024, time.June, 4, 10, 0, 0, 0, time.UTC)
	}
	_, err = ledger.Cancel(res.ID, 7, false)
	assert.ErrorIs(t, err, booking.ErrAlreadyPast)

	// On the last rented day the reservation is still cancellable.
	ledger.now = func() time.Time {
		return time.Date(2024, time.June, 3, 10, 0, 0, 0, time.UTC)
	}
	_, err = ledger.Cancel(res.ID, 7, false)
	assert.NoError(t, err)
}

func TestCancelFreesTheRange(t *testing.T) {
	ledger := NewReservationLedger(newMemStore())
	r := testRange(t, "2030-06-01", "2030-06-03")

	res, err := ledger.TryCommit(1, 7, r, 300)
	require.NoError(t, err)
	_, err = ledger.TryCommit(1, 8, r, 300)
	require.ErrorIs(t, err, booking.ErrOverlap)

	_, err = ledger.Cancel(res.ID, 7, false)
	require.NoError(t, err)

	_, err = ledger.TryCommit(1, 8, r, 300)
	assert.NoError(t, err)
}
