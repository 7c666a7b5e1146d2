package ecode

import (
	"errors"
	"net/http"
	"sync"
)

// Common codes
const (
	OK        = 0
	ServerErr = -500
)

// Request codes
const (
	RequestErr = -400
	ParamErr   = -401
	NotFound   = -404
)

// Pagination codes
const (
	InvalidCursor    = -1101
	PositionNotFound = -1102
)

var (
	mu       sync.RWMutex
	messages = map[int]string{
		OK:               "ok",
		ServerErr:        "Internal server error",
		RequestErr:       "Invalid request",
		ParamErr:         "Invalid parameters",
		NotFound:         "Resource not found",
		InvalidCursor:    "Invalid cursor",
		PositionNotFound: "Cursor position not found",
	}
	statuses = map[int]int{
		OK:               http.StatusOK,
		ServerErr:        http.StatusInternalServerError,
		RequestErr:       http.StatusBadRequest,
		ParamErr:         http.StatusBadRequest,
		NotFound:         http.StatusNotFound,
		InvalidCursor:    http.StatusBadRequest,
		PositionNotFound: http.StatusNotFound,
	}
)

// Register registers a custom code with its message.
// Registering an existing code overrides its message.
func Register(code int, message string) {
	mu.Lock()
	defer mu.Unlock()
	messages[code] = message
}

// Text returns the message for a code, or the server error message if unknown.
func Text(code int) string {
	mu.RLock()
	defer mu.RUnlock()
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[ServerErr]
}

// ToHTTPStatus maps a code to an HTTP status.
// Unknown negative codes map to 400, anything else to 500.
func ToHTTPStatus(code int) int {
	if status, ok := statuses[code]; ok {
		return status
	}
	if code < 0 && code > ServerErr {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Error is an error carrying a business code.
type Error struct {
	Code    int
	Message string
}

// New creates a coded error; an empty message falls back to Text(code).
func New(code int, message ...string) *Error {
	msg := Text(code)
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	return &Error{Code: code, Message: msg}
}

// Error implements error
func (e *Error) Error() string {
	return e.Message
}

// CodeOf returns the code of the first *Error in err's chain.
// nil maps to OK, uncoded errors to ServerErr.
func CodeOf(err error) int {
	if err == nil {
		return OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ServerErr
}
