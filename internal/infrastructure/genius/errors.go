package genius

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/santiago-morfe/TaskGeniusApi/internal/domain"
)

var (
	ErrInvalidAPIKey  = errors.New("invalid API key")
	ErrInvalidRequest = errors.New("invalid request to the text-generation API, check the request structure")
	ErrRateLimited    = errors.New("API rate limit exceeded")
)

// Error is returned for every failed call. It matches domain.ErrUpstream
// and the underlying cause.
type Error struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("genius: %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("genius: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{domain.ErrUpstream, e.Err}
}

// classifyStatus maps a non-success HTTP status onto an error kind.
func classifyStatus(op string, statusCode int) *Error {
	var err error
	switch statusCode {
	case http.StatusUnauthorized:
		err = ErrInvalidAPIKey
	case http.StatusBadRequest:
		err = ErrInvalidRequest
	case http.StatusTooManyRequests:
		err = ErrRateLimited
	default:
		err = fmt.Errorf("request failed with status code %d", statusCode)
	}
	return &Error{Op: op, StatusCode: statusCode, Err: err}
}

// IsTimeout reports whether err is a timed out call.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
