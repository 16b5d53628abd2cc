// Package api implements the sync client for the keyline localization
// service: fetching entries, creating entries, and persisting single-cell
// and batch translation updates over HTTP.
package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for sync client operations.
var (
	// ErrTransport indicates a network failure or non-success HTTP status.
	ErrTransport = errors.New("api: transport error")

	// ErrValidation indicates a request rejected client-side before any
	// network call was made.
	ErrValidation = errors.New("api: validation error")
)

// TransportError carries the failed operation and, when a response was
// received, its HTTP status code. Status is zero for network-level failures.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api: %s: unexpected status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("api: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is / errors.As chains.
func (e *TransportError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrTransport
}

// Is reports whether the target matches the transport sentinel.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// ValidationError describes a client-side precondition failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("api: validation: field %q: %s", e.Field, e.Message)
}

// Is reports whether the target matches the validation sentinel.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
