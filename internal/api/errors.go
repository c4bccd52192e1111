package api

import (
	"fmt"
	"net/http"
)

// TransportError means the backend could not be reached at all
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("Can't connect to backend at %s", e.URL)
	}
	return "Can't connect to backend"
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError is a non-2xx HTTP response mapped to a user-facing message
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	switch {
	case e.Status == http.StatusNotFound:
		return "Endpoint not found"
	case e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden:
		return "Authentication failed"
	case e.Status >= 500:
		return "Server error"
	case e.Status > 0:
		return fmt.Sprintf("API Error (%d)", e.Status)
	default:
		return "API Error (Unknown)"
	}
}

// MalformedRecordError means a wire record matched neither recognized shape
type MalformedRecordError struct {
	Raw []byte
}

func (e *MalformedRecordError) Error() string {
	return "invalid lead data structure"
}
