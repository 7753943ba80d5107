package api

import (
	"encoding/json"
	"net/http"

	"autorent/internal/auth"
	"autorent/internal/service"
)

type ActivityHandler struct {
	Activities *service.ActivityService
}

func NewActivityHandler(activities *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{Activities: activities}
}

// RecordActivity logs that the caller viewed a listing.
func (h *ActivityHandler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	var req ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	activity, err := h.Activities.Record(auth.UserID(r), req.VehicleID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, activity)
}

// ListActivities returns the caller's own view history.
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.Activities.ListByUser(auth.UserID(r))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}
