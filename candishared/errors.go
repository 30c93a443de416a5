package candishared

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized bad or missing shared secret
	ErrUnauthorized = errors.New("unauthorized")
	// ErrBadRequest malformed request
	ErrBadRequest = errors.New("bad_request")
	// ErrInvalidTransition requested status is not reachable from the current status
	ErrInvalidTransition = errors.New("invalid_transition")
	// ErrOrderNumberConflict order number already used for the shop on that day
	ErrOrderNumberConflict = errors.New("order_number_conflict")
	// ErrOrderNotFound order identifier does not exist
	ErrOrderNotFound = errors.New("order_not_found")
	// ErrDeliveryFailure outbound write to one connection failed
	ErrDeliveryFailure = errors.New("delivery_failure")
	// ErrHubClosed operation on a stopped broker
	ErrHubClosed = errors.New("hub_closed")
)

// TransitionError rejected status change, the order is left untouched
type TransitionError struct {
	From, To string
}

// Error implement error
func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move order from %q to %q", ErrInvalidTransition, e.From, e.To)
}

// Unwrap for errors.Is
func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ValidationError bad request with per field detail
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError constructor
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Error implement error
func (e *ValidationError) Error() string {
	return ErrBadRequest.Error()
}

// Unwrap for errors.Is
func (e *ValidationError) Unwrap() error {
	return ErrBadRequest
}

// ErrorCode wire code of error
func ErrorCode(err error) string {
	for _, known := range []error{
		ErrUnauthorized, ErrBadRequest, ErrInvalidTransition,
		ErrOrderNumberConflict, ErrOrderNotFound,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "internal_error"
}

// HTTPStatusCode map error to http status code
func HTTPStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrOrderNumberConflict):
		return http.StatusConflict
	case errors.Is(err, ErrOrderNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
