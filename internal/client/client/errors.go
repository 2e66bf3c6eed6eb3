package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrTimeout      = errors.New("request timed out")
	ErrBadEnvelope  = errors.New("unexpected response envelope")
)

// HTTPError is a non-2xx answer from the backend.
type HTTPError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap exposes the sentinel matching the status code, if any.
func (e *HTTPError) Unwrap() error { return e.kind }

func newHTTPError(status int, message string) *HTTPError {
	e := &HTTPError{StatusCode: status, Message: message}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		e.kind = ErrUnauthorized
	case status == http.StatusNotFound:
		e.kind = ErrNotFound
	case status >= 500:
		e.kind = ErrUnavailable
	}
	return e
}

// MessageOf returns the backend message carried by err, or "".
func MessageOf(err error) string {
	var herr *HTTPError
	if errors.As(err, &herr) {
		return herr.Message
	}
	return ""
}
