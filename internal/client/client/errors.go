package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRejected     = errors.New("request rejected")
	// ErrBadResponse is a 2xx reply whose body could not be decoded.
	ErrBadResponse = errors.New("unexpected response")
)

// APIError is a non-2xx reply. Body holds whatever the service managed to
// send; it is zero when the body was not JSON.
type APIError struct {
	Status int
	Body   Response
}

func (e *APIError) Error() string {
	if msg := e.Body.FirstMessage(); msg != "" {
		return fmt.Sprintf("http %d: %s", e.Status, msg)
	}
	return fmt.Sprintf("http %d: %s", e.Status, http.StatusText(e.Status))
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	default:
		return ErrRejected
	}
}
