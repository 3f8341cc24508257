package domain

import (
	"errors"
	"fmt"
)

// ErrBackendUnreachable indicates the backend could not be reached at
// the transport level (connection refused, DNS failure).
var ErrBackendUnreachable = errors.New("backend unreachable")

// BackendError is an application-level failure: the backend was
// reachable but answered with a non-success status.
type BackendError struct {
	Message    string
	StatusCode int
}

// Error implements the error interface
func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}
