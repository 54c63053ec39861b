// ABOUTME: Error taxonomy for FilmFit API calls
// ABOUTME: Separates missing session, HTTP status, transport and decode failures

package client

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrNoSession is returned before any network I/O when an authenticated
	// endpoint is called without a token
	ErrNoSession = errors.New("not logged in")

	// ErrIncompleteGroup is returned when a group has no name or no members
	ErrIncompleteGroup = errors.New("fill all fields")

	// ErrInvalidID is returned for non-positive user, film or group ids
	ErrInvalidID = errors.New("invalid id")
)

// ErrorResponse represents an API error body
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// StatusError reports a non-2xx response
type StatusError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: server returned status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: server returned status %d", e.Op, e.StatusCode)
}

// TransportError reports a failure to reach the server or read its response
type TransportError struct {
	Op      string
	BaseURL string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: cannot connect to server at %s: %v", e.Op, e.BaseURL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the failure was a timeout
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// DecodeError reports a response body that does not match the endpoint's shape
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: invalid response from server: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsCanceled reports whether err comes from a canceled context
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

// IsStatus reports whether err is a StatusError with the given code
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}

// UserMessage converts an error into the message shown to the user
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		statusErr    *StatusError
		transportErr *TransportError
		decodeErr    *DecodeError
	)

	switch {
	case errors.Is(err, ErrNoSession):
		return "Not logged in. Run `filmfit login` first."
	case errors.Is(err, ErrIncompleteGroup):
		return "Fill all fields."
	case errors.Is(err, ErrInvalidID):
		return "Invalid id."
	case IsCanceled(err):
		return "Request canceled."
	case errors.As(err, &transportErr):
		if transportErr.Timeout() {
			return "The FilmFit server did not respond in time."
		}
		return "Could not connect to the FilmFit server."
	case errors.As(err, &statusErr):
		if statusErr.Message != "" {
			return fmt.Sprintf("Server error (%d): %s", statusErr.StatusCode, statusErr.Message)
		}
		return fmt.Sprintf("Server error (%d).", statusErr.StatusCode)
	case errors.As(err, &decodeErr):
		return "The FilmFit server sent an unexpected response."
	default:
		return err.Error()
	}
}
