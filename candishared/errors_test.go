package candishared

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantHTTP int
	}{
		{name: "Testcase #1: Unauthorized", err: ErrUnauthorized, wantCode: "unauthorized", wantHTTP: http.StatusUnauthorized},
		{name: "Testcase #2: Wrapped bad request", err: fmt.Errorf("decode: %w", ErrBadRequest), wantCode: "bad_request", wantHTTP: http.StatusBadRequest},
		{name: "Testcase #3: Validation error", err: NewValidationError(map[string]string{"event": "required"}), wantCode: "bad_request", wantHTTP: http.StatusBadRequest},
		{name: "Testcase #4: Transition error", err: &TransitionError{From: "pending", To: "done"}, wantCode: "invalid_transition", wantHTTP: http.StatusConflict},
		{name: "Testcase #5: Conflict", err: ErrOrderNumberConflict, wantCode: "order_number_conflict", wantHTTP: http.StatusConflict},
		{name: "Testcase #6: Not found", err: ErrOrderNotFound, wantCode: "order_not_found", wantHTTP: http.StatusNotFound},
		{name: "Testcase #7: Unknown", err: errors.New("boom"), wantCode: "internal_error", wantHTTP: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ErrorCode(tt.err))
			assert.Equal(t, tt.wantHTTP, HTTPStatusCode(tt.err))
		})
	}
}

func TestTransitionError(t *testing.T) {
	err := error(&TransitionError{From: "done", To: "ready"})
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	var trErr *TransitionError
	assert.True(t, errors.As(err, &trErr))
	assert.Equal(t, "done", trErr.From)
	assert.Contains(t, err.Error(), `"done" to "ready"`)
}
