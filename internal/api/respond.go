package api

import (
	"encoding/json"
	"net/http"

	apierrors "autorent/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeEngineError maps the engine error taxonomy onto a status code and a
// JSON error body.
func writeEngineError(w http.ResponseWriter, err error) {
	httpErr := apierrors.FromEngine(err)
	writeJSON(w, httpErr.Code, map[string]string{"error": httpErr.Message})
}
