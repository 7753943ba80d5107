package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"autorent/internal/auth"
	"autorent/internal/entities"
	"autorent/internal/service"
)

type BookingHandler struct {
	Bookings *service.BookingService
}

func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

// PreviewCost prices a candidate range without committing it. The quote is
// advisory; the commit re-prices and re-checks on its own.
func (h *BookingHandler) PreviewCost(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	preview, err := h.Bookings.PreviewCost(req.VehicleID, req.StartDate, req.EndDate)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

// CreateReservation commits the range for the authenticated renter. An
// overlap with a committed reservation comes back as 409.
func (h *BookingHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	reservation, err := h.Bookings.Commit(req.VehicleID, auth.UserID(r), req.StartDate, req.EndDate)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservation)
}

// ListReservations returns the caller's reservations, newest first.
func (h *BookingHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.Bookings.ListForRenter(auth.UserID(r))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

// CancelReservation voids a reservation for the renter, the vehicle's owner
// or an admin.
func (h *BookingHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Bookings.Cancel(id, auth.UserID(r), auth.IsAdmin(r)); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Reservation cancelled"})
}
