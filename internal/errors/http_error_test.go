package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"autorent/internal/booking"
)

func TestFromEngine(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{booking.ErrFormat, http.StatusBadRequest},
		{booking.ErrInvalidRange, http.StatusBadRequest},
		{booking.ErrInvalidRate, http.StatusBadRequest},
		{booking.ErrOverlap, http.StatusConflict},
		{booking.ErrAlreadyPast, http.StatusConflict},
		{booking.ErrForbidden, http.StatusForbidden},
		{booking.ErrNotFound, http.StatusNotFound},
		{stderrors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, FromEngine(tc.err).Code, "error %v", tc.err)
	}
}

func TestFromEngineUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("commit for vehicle 1: %w", booking.ErrOverlap)
	httpErr := FromEngine(wrapped)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
	assert.Contains(t, httpErr.Message, "vehicle 1")
}
