package errors

import (
	"fmt"
	"net/http"
)

// Error is the API error returned to callers: a message and the HTTP
// status it maps to. Internal detail never travels through it.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("error: message: %v", e.Message)
}

func New(message string, status int) *Error {
	return &Error{
		Message: message,
		Status:  status,
	}
}

var (
	ErrUnauthorized        = New("Unauthorized", http.StatusUnauthorized)
	ErrForbidden           = New("Forbidden - Admin access required", http.StatusForbidden)
	ErrMovieNotFound       = New("Movie not found", http.StatusNotFound)
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrInternalServerError = New("Internal server error", http.StatusInternalServerError)
)
